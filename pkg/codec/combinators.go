// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package codec

import (
	"fmt"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// Xmap adapts a Codec[A, T] into a Codec[B, T] via a total, never-failing
// isomorphism. Use FlatXmap when the forward direction can fail.
func Xmap[A, B, T any](inner Codec[A, T], to func(A) B, from func(B) A) Codec[B, T] {
	return Codec[B, T]{
		EncodeFn: func(value B, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			return inner.Encode(from(value), ops, prefix)
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[B, T]] {
			return dynamic.Map(inner.Decode(ops, value), func(p dynamic.Pair[A, T]) dynamic.Pair[B, T] {
				return dynamic.NewPair(to(p.First), p.Second)
			})
		},
	}
}

// FlatXmap adapts a Codec[A, T] into a Codec[B, T] where both directions
// may fail, each returning a dynamic.Result.
func FlatXmap[A, B, T any](inner Codec[A, T], to func(A) dynamic.Result[B], from func(B) dynamic.Result[A]) Codec[B, T] {
	return Codec[B, T]{
		EncodeFn: func(value B, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			a := from(value)
			if a.IsError() {
				return dynamic.Error[T](a.ErrorMessage())
			}
			return inner.Encode(a.MustGet(), ops, prefix)
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[B, T]] {
			decoded := inner.Decode(ops, value)
			if decoded.IsError() {
				return dynamic.Error[dynamic.Pair[B, T]](decoded.ErrorMessage())
			}
			p := decoded.MustGet()
			b := to(p.First)
			if b.IsError() {
				return dynamic.Error[dynamic.Pair[B, T]](b.ErrorMessage())
			}
			return dynamic.Success(dynamic.NewPair(b.MustGet(), p.Second))
		},
	}
}

// ListOf lifts a Codec[A, T] to operate over a T-encoded list of A. A
// decode failure on any element is reported with an "[i]: " prefix
// naming the failing index; elements decoded before the failure are
// returned as the Result's partial value (ErrorPartial), matching the
// "best-effort collection decode" contract.
func ListOf[A, T any](elem Codec[A, T]) Codec[[]A, T] {
	return Codec[[]A, T]{
		EncodeFn: func(values []A, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			items := make([]T, 0, len(values))
			for i, v := range values {
				encoded := elem.EncodeStart(v, ops)
				if encoded.IsError() {
					return dynamic.Error[T](fmt.Sprintf("[%d]: %s", i, encoded.ErrorMessage()))
				}
				items = append(items, encoded.MustGet())
			}
			return dynamic.Success(ops.CreateList(items))
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[[]A, T]] {
			list := ops.GetList(value)
			if list.IsError() {
				return dynamic.Error[dynamic.Pair[[]A, T]](list.ErrorMessage())
			}
			items := list.MustGet()
			decoded := make([]A, 0, len(items))
			for i, item := range items {
				result := elem.DecodeValue(ops, item)
				if result.IsError() {
					return dynamic.ErrorPartial[dynamic.Pair[[]A, T]](
						fmt.Sprintf("[%d]: %s", i, result.ErrorMessage()),
						dynamic.NewPair(decoded, ops.Empty()),
					)
				}
				decoded = append(decoded, result.MustGet())
			}
			return dynamic.Success(dynamic.NewPair(decoded, ops.Empty()))
		},
	}
}
