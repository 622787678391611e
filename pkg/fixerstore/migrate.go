// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixerstore

import (
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Register the pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateIface abstracts golang-migrate for testing without a live
// database connection.
type migrateIface interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

// Migrator wraps golang-migrate for the ledger schema's own migrations.
//
// Migrator is NOT safe for concurrent use; create one per goroutine.
type Migrator struct {
	m migrateIface
}

// NewMigrator builds a Migrator against databaseURL, a PostgreSQL
// connection string with a postgres:// or postgresql:// scheme (converted
// to pgx5:// for golang-migrate's pgx/v5 driver).
func NewMigrator(databaseURL string) (*Migrator, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, StoreError("failed to create migration source", err)
	}

	migrateURL := databaseURL
	if rest, found := strings.CutPrefix(databaseURL, "postgres://"); found {
		migrateURL = "pgx5://" + rest
	} else if rest, found := strings.CutPrefix(databaseURL, "postgresql://"); found {
		migrateURL = "pgx5://" + rest
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrateURL)
	if err != nil {
		_ = source.Close()
		return nil, StoreError("failed to initialize migrator", err)
	}
	return &Migrator{m: m}, nil
}

// Up applies all pending ledger-schema migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return StoreError("migration up failed", err)
	}
	return nil
}

// Version returns the current ledger-schema migration version.
func (m *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, StoreError("migration version lookup failed", err)
	}
	return version, dirty, nil
}

// Close releases the migrator's source and database resources.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil && dbErr != nil {
		return StoreError("migration close failed for source and database", nil,
			"source_error", srcErr.Error(), "database_error", dbErr.Error())
	}
	if srcErr != nil {
		return StoreError("migration close failed for source", srcErr)
	}
	if dbErr != nil {
		return StoreError("migration close failed for database", dbErr)
	}
	return nil
}
