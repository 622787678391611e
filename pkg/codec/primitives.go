// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package codec

import (
	"fmt"
	"math"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// String is a Codec[string, T] backed by the ops' string primitive.
func String[T any]() Codec[string, T] {
	return Codec[string, T]{
		EncodeFn: func(value string, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			return dynamic.Success(ops.CreateString(value))
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[string, T]] {
			return dynamic.Map(ops.GetStringValue(value), func(s string) dynamic.Pair[string, T] {
				return dynamic.NewPair(s, ops.Empty())
			})
		},
	}
}

// Bool is a Codec[bool, T] backed by the ops' boolean primitive.
func Bool[T any]() Codec[bool, T] {
	return Codec[bool, T]{
		EncodeFn: func(value bool, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			return dynamic.Success(ops.CreateBoolean(value))
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[bool, T]] {
			return dynamic.Map(ops.GetBooleanValue(value), func(b bool) dynamic.Pair[bool, T] {
				return dynamic.NewPair(b, ops.Empty())
			})
		},
	}
}

// Unit is a Codec[struct{}, T] that always succeeds and carries no data,
// for fixed discriminator-only variants in Dispatched sum types.
func Unit[T any]() Codec[struct{}, T] {
	return Codec[struct{}, T]{
		EncodeFn: func(value struct{}, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			return dynamic.Success(prefix)
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[struct{}, T]] {
			return dynamic.Success(dynamic.NewPair(struct{}{}, value))
		},
	}
}

func numberCodec[T any](kind string, inRange func(dynamic.Number) bool, encode func(dynamic.Ops[T], dynamic.Number) T) Codec[dynamic.Number, T] {
	return Codec[dynamic.Number, T]{
		EncodeFn: func(value dynamic.Number, ops dynamic.Ops[T], prefix T) dynamic.Result[T] {
			return dynamic.Success(encode(ops, value))
		},
		DecodeFn: func(ops dynamic.Ops[T], value T) dynamic.Result[dynamic.Pair[dynamic.Number, T]] {
			n := ops.GetNumberValue(value)
			if n.IsError() {
				return dynamic.Error[dynamic.Pair[dynamic.Number, T]](n.ErrorMessage())
			}
			num := n.MustGet()
			if !inRange(num) {
				return dynamic.Error[dynamic.Pair[dynamic.Number, T]](fmt.Sprintf("Value out of %s range: %s", kind, reprNumber(num)))
			}
			return dynamic.Success(dynamic.NewPair(num, ops.Empty()))
		},
	}
}

func reprNumber(n dynamic.Number) string {
	if n.IsInteger() {
		return fmt.Sprintf("%d", n.Int64())
	}
	return fmt.Sprintf("%v", n.Float64())
}

// Byte is a Codec[dynamic.Number, T] whose Decode rejects values outside
// int8's range.
func Byte[T any]() Codec[dynamic.Number, T] {
	return numberCodec[T]("byte",
		func(n dynamic.Number) bool {
			return n.Int64() >= math.MinInt8 && n.Int64() <= math.MaxInt8
		},
		func(ops dynamic.Ops[T], n dynamic.Number) T { return ops.CreateByte(int8(n.Int64())) },
	)
}

// Short is a Codec[dynamic.Number, T] whose Decode rejects values outside
// int16's range.
func Short[T any]() Codec[dynamic.Number, T] {
	return numberCodec[T]("short",
		func(n dynamic.Number) bool {
			return n.Int64() >= math.MinInt16 && n.Int64() <= math.MaxInt16
		},
		func(ops dynamic.Ops[T], n dynamic.Number) T { return ops.CreateShort(int16(n.Int64())) },
	)
}

// Int is a Codec[dynamic.Number, T] whose Decode rejects values outside
// int32's range.
func Int[T any]() Codec[dynamic.Number, T] {
	return numberCodec[T]("int",
		func(n dynamic.Number) bool {
			return n.Int64() >= math.MinInt32 && n.Int64() <= math.MaxInt32
		},
		func(ops dynamic.Ops[T], n dynamic.Number) T { return ops.CreateInt(int32(n.Int64())) },
	)
}

// Long is a Codec[dynamic.Number, T] accepting the full int64 range.
func Long[T any]() Codec[dynamic.Number, T] {
	return numberCodec[T]("long",
		func(n dynamic.Number) bool { return true },
		func(ops dynamic.Ops[T], n dynamic.Number) T { return ops.CreateLong(n.Int64()) },
	)
}

// Float is a Codec[dynamic.Number, T] whose Decode rejects magnitudes
// outside float32's finite range.
func Float[T any]() Codec[dynamic.Number, T] {
	return numberCodec[T]("float",
		func(n dynamic.Number) bool {
			f := n.Float64()
			return f >= -math.MaxFloat32 && f <= math.MaxFloat32
		},
		func(ops dynamic.Ops[T], n dynamic.Number) T { return ops.CreateFloat(float32(n.Float64())) },
	)
}

// Double is a Codec[dynamic.Number, T] accepting the full float64 range.
func Double[T any]() Codec[dynamic.Number, T] {
	return numberCodec[T]("double",
		func(n dynamic.Number) bool { return true },
		func(ops dynamic.Ops[T], n dynamic.Number) T { return ops.CreateDouble(n.Float64()) },
	)
}

// Int64 is a convenience Codec[int64, T] layered on Long, for call sites
// that don't need the Number abstraction.
func Int64[T any]() Codec[int64, T] {
	inner := Long[T]()
	return Xmap(inner,
		func(n dynamic.Number) int64 { return n.Int64() },
		func(v int64) dynamic.Number { return dynamic.IntNumber(v) },
	)
}

// Float64 is a convenience Codec[float64, T] layered on Double.
func Float64[T any]() Codec[float64, T] {
	inner := Double[T]()
	return Xmap(inner,
		func(n dynamic.Number) float64 { return n.Float64() },
		func(v float64) dynamic.Number { return dynamic.FloatNumber(v) },
	)
}

// Bool32/Int32 helpers are intentionally omitted: Go call sites needing
// int32 can instantiate Int[T]() directly and convert at the boundary.
