// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import "github.com/holomush/datafixer/pkg/rewrite"

// DataVersion is a total-ordered integer version, the primary key across
// every registry in this package. Non-negative by convention, enforced at
// registration boundaries rather than by the type itself.
type DataVersion int64

// TypeReference names a logical entity schemas and fixes are keyed by. It
// is rewrite.TypeReference under the hood so TypeRewriteRules built in
// pkg/rewrite compose directly with fixer registries.
type TypeReference = rewrite.TypeReference
