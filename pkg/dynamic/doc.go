// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package dynamic provides a format-agnostic tree algebra for
// semi-structured values, together with the Value wrapper and the Result
// monad used throughout the datafixer library.
//
// An Ops[T] implementation interprets a concrete backing type T (e.g. the
// ordered-map/[]any tree ParseJSON produces, or a *yaml.Node) as
// the same small algebra of null/bool/number/string/list/map. Every
// mutating operation on an Ops[T] returns a fresh T; callers never observe
// their input change.
package dynamic
