// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package codec

import (
	"fmt"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// FieldOf wraps inner under a single map key: Encode sets name on prefix,
// Decode reads and consumes name from the input map. Decode fails if the
// field is absent.
func FieldOf[A, T any](name string, inner Codec[A, T]) Codec[A, T] {
	return Codec[A, T]{
		EncodeFn: func(value A, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			encoded := inner.EncodeStart(value, ops)
			if encoded.IsError() {
				return dynamic.Error[T](fmt.Sprintf("%s: %s", name, encoded.ErrorMessage()))
			}
			return dynamic.Success(ops.Set(prefix, name, encoded.MustGet()))
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[A, T]] {
			field, ok := ops.Get(value, name)
			if !ok {
				return dynamic.Error[dynamic.Pair[A, T]](fmt.Sprintf("Missing field: %s", name))
			}
			decoded := inner.DecodeValue(ops, field)
			if decoded.IsError() {
				return dynamic.Error[dynamic.Pair[A, T]](fmt.Sprintf("%s: %s", name, decoded.ErrorMessage()))
			}
			return dynamic.Success(dynamic.NewPair(decoded.MustGet(), ops.Remove(value, name)))
		},
	}
}

// OptionalFieldOf wraps inner under a single map key, falling back to
// defaultValue on either a missing field or a decode failure (the
// "fall back on decode failure to match the optional spirit" resolution
// of the optionalFieldOf Open Question). Neither failure mode surfaces an
// error; the remainder map has the field removed only when it was present
// and decoded successfully, since a swallowed decode failure leaves the
// (unparseable) field for an outer decoder to deal with.
func OptionalFieldOf[A, T any](name string, inner Codec[A, T], defaultValue A) Codec[A, T] {
	field := FieldOf(name, inner)
	return Codec[A, T]{
		EncodeFn: field.EncodeFn,
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[A, T]] {
			decoded := field.Decode(ops, value)
			if decoded.IsSuccess() {
				return decoded
			}
			return dynamic.Success(dynamic.NewPair(defaultValue, value))
		},
	}
}

// Object2 composes two field codecs into a Codec[R, T] via an applicative
// build/get pair. Each field codec consumes its key from the map during
// decode, threading the shrinking remainder from one field to the next;
// the final remainder lets callers detect unconsumed keys. Encoding merges
// each field into prefix in argument order, so a later field overrides an
// earlier one sharing a key.
func Object2[A, B, R, T any](
	fa Codec[A, T], fb Codec[B, T],
	build func(A, B) R,
	getA func(R) A, getB func(R) B,
) Codec[R, T] {
	return Codec[R, T]{
		EncodeFn: func(value R, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			step := fa.Encode(getA(value), ops, prefix)
			if step.IsError() {
				return step
			}
			return fb.Encode(getB(value), ops, step.MustGet())
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[R, T]] {
			da := fa.Decode(ops, value)
			if da.IsError() {
				return dynamic.Error[dynamic.Pair[R, T]](da.ErrorMessage())
			}
			pa := da.MustGet()
			db := fb.Decode(ops, pa.Second)
			if db.IsError() {
				return dynamic.Error[dynamic.Pair[R, T]](db.ErrorMessage())
			}
			pb := db.MustGet()
			return dynamic.Success(dynamic.NewPair(build(pa.First, pb.First), pb.Second))
		},
	}
}

// Object3 composes three field codecs. See Object2 for the consumption and
// override semantics.
func Object3[A, B, C, R, T any](
	fa Codec[A, T], fb Codec[B, T], fc Codec[C, T],
	build func(A, B, C) R,
	getA func(R) A, getB func(R) B, getC func(R) C,
) Codec[R, T] {
	type ab struct {
		a A
		b B
	}
	pair := Object2(fa, fb,
		func(a A, b B) ab { return ab{a, b} },
		func(r ab) A { return r.a }, func(r ab) B { return r.b },
	)
	return Object2(pair, fc,
		func(p ab, c C) R { return build(p.a, p.b, c) },
		func(r R) ab { return ab{getA(r), getB(r)} },
		func(r R) C { return getC(r) },
	)
}

// Object4 composes four field codecs. See Object2 for the consumption and
// override semantics.
func Object4[A, B, C, D, R, T any](
	fa Codec[A, T], fb Codec[B, T], fc Codec[C, T], fd Codec[D, T],
	build func(A, B, C, D) R,
	getA func(R) A, getB func(R) B, getC func(R) C, getD func(R) D,
) Codec[R, T] {
	type abc struct {
		a A
		b B
		c C
	}
	triple := Object3(fa, fb, fc,
		func(a A, b B, c C) abc { return abc{a, b, c} },
		func(r abc) A { return r.a }, func(r abc) B { return r.b }, func(r abc) C { return r.c },
	)
	return Object2(triple, fd,
		func(t abc, d D) R { return build(t.a, t.b, t.c, d) },
		func(r R) abc { return abc{getA(r), getB(r), getC(r)} },
		func(r R) D { return getD(r) },
	)
}

// Object5 composes five field codecs. See Object2 for the consumption and
// override semantics.
func Object5[A, B, C, D, E, R, T any](
	fa Codec[A, T], fb Codec[B, T], fc Codec[C, T], fd Codec[D, T], fe Codec[E, T],
	build func(A, B, C, D, E) R,
	getA func(R) A, getB func(R) B, getC func(R) C, getD func(R) D, getE func(R) E,
) Codec[R, T] {
	type abcd struct {
		a A
		b B
		c C
		d D
	}
	quad := Object4(fa, fb, fc, fd,
		func(a A, b B, c C, d D) abcd { return abcd{a, b, c, d} },
		func(r abcd) A { return r.a }, func(r abcd) B { return r.b },
		func(r abcd) C { return r.c }, func(r abcd) D { return r.d },
	)
	return Object2(quad, fe,
		func(q abcd, e E) R { return build(q.a, q.b, q.c, q.d, e) },
		func(r R) abcd { return abcd{getA(r), getB(r), getC(r), getD(r)} },
		func(r R) E { return getE(r) },
	)
}
