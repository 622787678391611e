// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package codec provides the Codec[A, T] algebra: composable
// encoders/decoders between an application type A and a dynamic.Value of
// backing type T (spec.md §4.D).
//
// Codec is generic over both A and T rather than only A, because Go
// methods cannot introduce additional type parameters the way the
// distilled source's per-call-generic Codec<A>.encode<T>(...) can
// (spec.md §9's "higher-kinded DynamicOps<T> polymorphism" note). A single
// Codec[A, T] value is therefore bound to one concrete backing format for
// its lifetime — in practice an application picks one Ops[T] for its whole
// deployment, so this is not a practical limitation.
package codec
