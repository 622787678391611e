// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixerstore

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/datafixer/pkg/fixer"
)

func TestLedgerStore_Record_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO migration_ledger`).
		WithArgs(pgxmock.AnyArg(), "doc-1", "player", int64(2), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewLedgerStore(mock)
	err = store.Record(context.Background(), "doc-1", fixer.TypeReference("player"), 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerStore_Record_RetriesTransientError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	transient := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	mock.ExpectExec(`INSERT INTO migration_ledger`).
		WillReturnError(transient)
	mock.ExpectExec(`INSERT INTO migration_ledger`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewLedgerStore(mock)
	err = store.Record(context.Background(), "doc-1", fixer.TypeReference("player"), 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerStore_Record_SurfacesPermanentError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO migration_ledger`).
		WillReturnError(errors.New("connection refused"))

	store := NewLedgerStore(mock)
	err = store.Record(context.Background(), "doc-1", fixer.TypeReference("player"), 2)
	require.Error(t, err)
}

func TestLedgerStore_Latest_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"data_version"}).AddRow(int64(3))
	mock.ExpectQuery(`SELECT data_version FROM migration_ledger`).
		WithArgs("doc-1", "player").
		WillReturnRows(rows)

	store := NewLedgerStore(mock)
	v, ok, err := store.Latest(context.Background(), "doc-1", fixer.TypeReference("player"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fixer.DataVersion(3), v)
}

func TestLedgerStore_Latest_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT data_version FROM migration_ledger`).
		WithArgs("doc-1", "player").
		WillReturnError(pgx.ErrNoRows)

	store := NewLedgerStore(mock)
	_, ok, err := store.Latest(context.Background(), "doc-1", fixer.TypeReference("player"))
	require.NoError(t, err)
	assert.False(t, ok)
}
