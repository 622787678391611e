// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/datafixer/pkg/schemadoc"
)

// NewManifestCmd creates the "manifest" subcommand group.
func NewManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Work with bootstrap type-registry manifests",
	}
	cmd.AddCommand(newManifestSchemaCmd())
	cmd.AddCommand(newManifestValidateCmd())
	return cmd
}

func newManifestSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for bootstrap manifest files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifestSchemaLogic(cmd.OutOrStdout())
		},
	}
}

func runManifestSchemaLogic(w io.Writer) error {
	schema, err := schemadoc.GenerateSchema()
	if err != nil {
		return oops.Code("SCHEMA_GENERATE_FAILED").Wrap(err)
	}
	_, err = fmt.Fprintln(w, string(schema))
	return err
}

func newManifestValidateCmd() *cobra.Command {
	var typePattern string

	cmd := &cobra.Command{
		Use:   "validate <manifest-file>",
		Short: "Validate a bootstrap manifest and list the type references it declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return oops.Code("MANIFEST_READ_FAILED").With("path", args[0]).Wrap(err)
			}

			m, err := schemadoc.ParseManifest(data)
			if err != nil {
				return err
			}
			return runManifestValidateLogic(cmd.OutOrStdout(), m, typePattern)
		},
	}
	cmd.Flags().StringVar(&typePattern, "type", "", "glob pattern filtering which type references to list (e.g. player*)")
	return cmd
}

// runManifestValidateLogic prints each TypeReference a validated manifest
// declares, optionally filtered by a glob pattern. Split out from RunE so
// it can be exercised with a constructed Manifest and a bytes.Buffer.
func runManifestValidateLogic(w io.Writer, m *schemadoc.Manifest, typePattern string) error {
	var g glob.Glob
	if typePattern != "" {
		compiled, err := glob.Compile(typePattern)
		if err != nil {
			return oops.Code("CONFIG_INVALID").With("pattern", typePattern).Wrap(err)
		}
		g = compiled
	}

	for _, entry := range m.Types {
		for _, name := range entry.Names {
			if g != nil && !g.Match(name) {
				continue
			}
			if _, err := fmt.Fprintf(w, "version=%d type=%s\n", entry.Version, name); err != nil {
				return err
			}
		}
	}
	return nil
}
