// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/datafixer/internal/logging"
)

// Global flags available to all subcommands.
var (
	configFile string
	logFormat  string
)

// NewRootCmd creates the root command for the datafixer CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datafixer",
		Short: "Inspect and validate datafixer bootstrap manifests and migration ledgers",
		Long: `datafixer is the command-line companion to the datafixer Go module:
a versioned data-migration library for semi-structured documents. This CLI
validates bootstrap type-registry manifests, inspects a deployment's
migration ledger, and serves a Prometheus metrics endpoint — applying
fixes themselves is done by the embedding Go program, since a Fix's apply
function is a Go closure this CLI cannot discover from the outside.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.SetDefault("datafixer", version, logFormat)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log output format: json or text")

	cmd.AddCommand(NewManifestCmd())
	cmd.AddCommand(NewLedgerCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}
