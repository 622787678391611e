// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixerstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/sethvargo/go-retry"

	"github.com/holomush/datafixer/pkg/fixer"
)

// poolIface abstracts the subset of *pgxpool.Pool the ledger needs,
// letting tests substitute pgxmock without a live database.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerStore records, per document, the DataVersion each TypeReference
// was last recorded as migrated to (a later Record overwrites the entry,
// whether its version is higher or lower). It is not part of the fixer core —
// an application wires it in around DataFixer.Update calls if it wants a
// durable audit trail.
type LedgerStore struct {
	pool poolIface
}

// NewLedgerStore wraps pool as a LedgerStore.
func NewLedgerStore(pool poolIface) *LedgerStore {
	return &LedgerStore{pool: pool}
}

// Record upserts the ledger entry for (documentID, typeRef) to version,
// retrying transient PostgreSQL errors (serialization failures, deadlocks)
// with exponential backoff before surfacing a StoreError.
func (s *LedgerStore) Record(ctx context.Context, documentID string, typeRef fixer.TypeReference, version fixer.DataVersion) error {
	b := retry.NewExponential(20 * time.Millisecond)
	b = retry.WithMaxRetries(5, b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO migration_ledger (id, document_id, type_reference, data_version, migrated_at)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (document_id, type_reference)
			 DO UPDATE SET data_version = $4, migrated_at = $5`,
			ulid.Make().String(), documentID, string(typeRef), int64(version), time.Now().UTC())
		if err != nil {
			if isTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return StoreError("failed to record migration", err,
			"document_id", documentID, "type_reference", string(typeRef), "version", int64(version))
	}
	return nil
}

// Latest returns the most recently recorded DataVersion for (documentID,
// typeRef), or ok=false if no entry exists.
func (s *LedgerStore) Latest(ctx context.Context, documentID string, typeRef fixer.TypeReference) (version fixer.DataVersion, ok bool, err error) {
	var v int64
	row := s.pool.QueryRow(ctx,
		`SELECT data_version FROM migration_ledger WHERE document_id = $1 AND type_reference = $2`,
		documentID, string(typeRef))
	if scanErr := row.Scan(&v); scanErr != nil {
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, StoreError("failed to read ledger entry", scanErr,
			"document_id", documentID, "type_reference", string(typeRef))
	}
	return fixer.DataVersion(v), true, nil
}

// isTransient reports whether err is a PostgreSQL error class known to be
// safe to retry: serialization failures and deadlocks from concurrent
// writers racing on the same document/type pair.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	default:
		return false
	}
}
