// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package schemadoc

// Manifest is the bootstrap type-registry declaration an application ships
// alongside its fixer bootstrap: for each DataVersion, the TypeReferences
// that schema introduces or redeclares. A SchemaRegistry built from a
// validated Manifest gives fixer.NewRuntime's RegisterSchemas half a
// declarative, reviewable source of truth instead of hand-written Go.
type Manifest struct {
	// SchemaVersion pins the manifest document's own format, independent of
	// any DataVersion declared inside it.
	SchemaVersion int `json:"schemaVersion" jsonschema:"required,minimum=1" yaml:"schemaVersion"`
	// Types lists every version's type declarations, ascending order not
	// required — the SchemaRegistry keeps registered versions sorted.
	Types []VersionEntry `json:"types" jsonschema:"required,minItems=1" yaml:"types"`
}

// VersionEntry declares the TypeReferences known to exist as of Version.
type VersionEntry struct {
	Version int64    `json:"version" jsonschema:"required,minimum=0" yaml:"version"`
	Names   []string `json:"names" jsonschema:"required,minItems=1" yaml:"names"`
}
