// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/datafixer/pkg/fixer"
	"github.com/holomush/datafixer/pkg/fixerstore"
)

// migratorIface is the subset of fixerstore.Migrator ledger migrate needs,
// letting tests substitute a mock instead of a live database.
type migratorIface interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() error
}

// ledgerReader is the subset of fixerstore.LedgerStore ledger show needs.
type ledgerReader interface {
	Latest(ctx context.Context, documentID string, typeRef fixer.TypeReference) (version fixer.DataVersion, ok bool, err error)
}

// NewLedgerCmd creates the "ledger" subcommand group.
func NewLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and migrate the migration audit ledger",
	}
	cmd.AddCommand(newLedgerMigrateCmd())
	cmd.AddCommand(newLedgerShowCmd())
	return cmd
}

func newLedgerMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migration_ledger schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return oops.Code("CONFIG_INVALID").New("database_url is required")
			}

			m, err := fixerstore.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()

			return runLedgerMigrateLogic(cmd.OutOrStdout(), m)
		},
	}
}

// runLedgerMigrateLogic applies pending migrations and reports the
// resulting schema version. Split out from RunE so it can be exercised
// against a migratorIface mock without a live database.
func runLedgerMigrateLogic(w io.Writer, m migratorIface) error {
	if err := m.Up(); err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	status := fmt.Sprintf("migration_ledger schema at version %d", version)
	if dirty {
		status += " (dirty)"
	}
	_, err = fmt.Fprintln(w, status)
	return err
}

func newLedgerShowCmd() *cobra.Command {
	var documentID, typeRef string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the recorded migration ledger entry for a document and type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return oops.Code("CONFIG_INVALID").New("database_url is required")
			}
			if documentID == "" || typeRef == "" {
				return oops.Code("CONFIG_INVALID").New("both --document and --type are required")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
			if err != nil {
				return oops.Code("LEDGER_CONNECT_FAILED").Wrap(err)
			}
			defer pool.Close()

			store := fixerstore.NewLedgerStore(pool)
			return runLedgerShowLogic(ctx, cmd.OutOrStdout(), store, documentID, typeRef)
		},
	}
	cmd.Flags().StringVar(&documentID, "document", "", "document ID to look up")
	cmd.Flags().StringVar(&typeRef, "type", "", "type reference to look up")
	return cmd
}

// runLedgerShowLogic prints the ledger entry for documentID/typeRef. Split
// out from RunE so it can be exercised against a ledgerReader mock without
// a live database.
func runLedgerShowLogic(ctx context.Context, w io.Writer, store ledgerReader, documentID, typeRef string) error {
	version, ok, err := store.Latest(ctx, documentID, fixer.TypeReference(typeRef))
	if err != nil {
		return err
	}
	if !ok {
		_, err := fmt.Fprintln(w, "no ledger entry found")
		return err
	}
	_, err = fmt.Fprintf(w, "document=%s type=%s version=%d\n", documentID, typeRef, version)
	return err
}
