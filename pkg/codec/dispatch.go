// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package codec

import (
	"fmt"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// Dispatched builds a sum-type Codec[A, T] keyed by a discriminator field
// named discriminatorKey. keyOf extracts the discriminator from a value to
// encode; codecFor resolves the discriminator (decoded via keyCodec) to the
// Codec[A, T] responsible for the remaining fields.
func Dispatched[A, K, T any](
	discriminatorKey string,
	keyCodec Codec[K, T],
	keyOf func(A) K,
	codecFor func(K) (Codec[A, T], bool),
) Codec[A, T] {
	keyField := FieldOf(discriminatorKey, keyCodec)
	return Codec[A, T]{
		EncodeFn: func(value A, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			key := keyOf(value)
			variant, ok := codecFor(key)
			if !ok {
				return dynamic.Error[T](fmt.Sprintf("Unknown dispatch key: %v", key))
			}
			withKey := keyField.Encode(key, ops, prefix)
			if withKey.IsError() {
				return withKey
			}
			return variant.Encode(value, ops, withKey.MustGet())
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[A, T]] {
			decodedKey := keyField.Decode(ops, value)
			if decodedKey.IsError() {
				return dynamic.Error[dynamic.Pair[A, T]](decodedKey.ErrorMessage())
			}
			keyPair := decodedKey.MustGet()
			variant, ok := codecFor(keyPair.First)
			if !ok {
				return dynamic.Error[dynamic.Pair[A, T]](fmt.Sprintf("Unknown dispatch key: %v", keyPair.First))
			}
			return variant.Decode(ops, keyPair.Second)
		},
	}
}
