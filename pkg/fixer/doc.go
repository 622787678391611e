// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package fixer provides the registry, ordering, and application of
// versioned data migrations: Schema/SchemaRegistry, DataFix/DataFixRegistry,
// the DataFixer[T] pipeline, DataFixerContext, the structured error
// taxonomy, and the builder/bootstrap wiring that constructs a frozen
// DataFixer (spec.md §4.F-J).
package fixer
