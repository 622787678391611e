// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"fmt"

	"github.com/samber/oops"
)

// errorKind names the stable error code every newError-constructed error
// carries, so errutil.AssertErrorCode (and any caller) can branch on it.
type errorKind string

const (
	kindDecode errorKind = "DATAFIXER_DECODE_FAILED"
	kindEncode errorKind = "DATAFIXER_ENCODE_FAILED"
	kindFix    errorKind = "DATAFIXER_FIX_FAILED"
	kindSchema errorKind = "DATAFIXER_SCHEMA_ERROR"
	kindArgs   errorKind = "DATAFIXER_ILLEGAL_ARGUMENT"
)

// newError builds an oops.OopsError tagged with kind, carrying the given
// key/value context pairs, wrapping cause if non-nil.
func newError(kind errorKind, msg string, cause error, kv ...any) error {
	b := oops.Code(string(kind))
	if len(kv) > 0 {
		b = b.With(kv...)
	}
	if cause != nil {
		return b.Wrapf(cause, "%s", msg)
	}
	return b.Errorf("%s", msg)
}

// DecodeError reports a codec decode failure, with the type reference and
// dot/bracket field path (e.g. "player.inventory[0].item.name") that
// failed, when known.
func DecodeError(typeRef TypeReference, path string, cause error) error {
	return newError(kindDecode, fmt.Sprintf("decode failed for %s at %s", typeRef, path), cause,
		"type_reference", string(typeRef), "path", path)
}

// EncodeError reports a codec encode failure.
func EncodeError(typeRef TypeReference, cause error) error {
	return newError(kindEncode, fmt.Sprintf("encode failed for %s", typeRef), cause,
		"type_reference", string(typeRef))
}

// FixError reports any error raised inside a DataFix's Apply, with full
// identifying context: fix name and the "version=from->to" span used by
// scenario 5 of spec.md §8.
func FixError(fixName string, from, to DataVersion, typeRef TypeReference, cause error) error {
	return newError(kindFix, fmt.Sprintf("fix %q failed (version=%d->%d)", fixName, from, to), cause,
		"fix_name", fixName, "from_version", int64(from), "to_version", int64(to),
		"type_reference", string(typeRef))
}

// SchemaError reports a missing schema lookup or a mutation attempted
// against a frozen registry.
func SchemaError(msg string, kv ...any) error {
	return newError(kindSchema, msg, nil, kv...)
}

// ArgumentError reports a precondition violation (from > to, to > current).
func ArgumentError(msg string, kv ...any) error {
	return newError(kindArgs, msg, nil, kv...)
}
