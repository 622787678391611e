// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package codec

import "github.com/holomush/datafixer/pkg/dynamic"

// Codec is a pair of stateless encode/decode functions between A and a
// dynamic.Value of backing type T.
//
// Encode merges the encoded representation of value into prefix (typically
// ops.EmptyMap() for record fields), which is what lets RecordCodecBuilder-
// style composition accumulate multiple fields into one map.
//
// Decode returns the decoded value paired with the remainder of value not
// consumed by this codec, used by field-consuming combinators to detect
// leftover/unknown keys.
type Codec[A, T any] struct {
	EncodeFn func(value A, ops dynamic.Ops[T], prefix T) dynamic.Result[T]
	DecodeFn func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[A, T]]
}

// Encode merges value's encoded form into prefix.
func (c Codec[A, T]) Encode(value A, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
	return c.EncodeFn(value, ops, prefix)
}

// Decode extracts A from value, returning the unconsumed remainder.
func (c Codec[A, T]) Decode(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[A, T]] {
	return c.DecodeFn(ops, value)
}

// DecodeValue is a convenience that discards the remainder, for callers
// that only want the decoded value.
func (c Codec[A, T]) DecodeValue(ops dynamic.Ops[T], value T) dynamic.Result[A] {
	return dynamic.Map(c.Decode(ops, value), func(p dynamic.Pair[A, T]) A { return p.First })
}

// EncodeStart encodes value starting from ops.Empty(), for codecs whose
// encoding does not need to be merged into an existing prefix.
func (c Codec[A, T]) EncodeStart(value A, ops dynamic.Ops[T]) dynamic.Result[T] {
	return c.Encode(value, ops, ops.Empty())
}
