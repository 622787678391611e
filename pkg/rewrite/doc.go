// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package rewrite provides TypeRewriteRule, the Finder optics family, and
// BatchTransform: the typed-transformation layer fixes are built from
// (spec.md §4.E).
package rewrite
