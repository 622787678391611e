// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

// Value pairs a raw tree value with the Ops that interpret it. It is the Go
// shape of the spec's Dynamic<T>: a thin, delegating wrapper that never
// itself holds state beyond the pair.
//
// Equality is on Raw only (via Ops.Equal); the bound Ops is excluded.
type Value[T any] struct {
	Ops Ops[T]
	Raw T
}

// New wraps a raw value with its ops.
func New[T any](ops Ops[T], raw T) Value[T] {
	return Value[T]{Ops: ops, Raw: raw}
}

// EmptyMap returns an empty-map Value bound to ops.
func EmptyMap[T any](ops Ops[T]) Value[T] {
	return Value[T]{Ops: ops, Raw: ops.EmptyMap()}
}

// EmptyList returns an empty-list Value bound to ops.
func EmptyList[T any](ops Ops[T]) Value[T] {
	return Value[T]{Ops: ops, Raw: ops.EmptyList()}
}

// Equal compares two Values structurally via their (shared) Ops.
func (v Value[T]) Equal(other Value[T]) bool {
	return v.Ops.Equal(v.Raw, other.Raw)
}

// Get returns the field named key, wrapped in a Value, or false if absent.
func (v Value[T]) Get(key string) (Value[T], bool) {
	raw, ok := v.Ops.Get(v.Raw, key)
	if !ok {
		return Value[T]{}, false
	}
	return Value[T]{Ops: v.Ops, Raw: raw}, true
}

// Set returns a new Value with key set to val's raw value.
func (v Value[T]) Set(key string, val Value[T]) Value[T] {
	return Value[T]{Ops: v.Ops, Raw: v.Ops.Set(v.Raw, key, val.Raw)}
}

// Remove returns a new Value with key removed.
func (v Value[T]) Remove(key string) Value[T] {
	return Value[T]{Ops: v.Ops, Raw: v.Ops.Remove(v.Raw, key)}
}

// Has reports whether key is present.
func (v Value[T]) Has(key string) bool {
	return v.Ops.Has(v.Raw, key)
}

// AsString reads the value as a string.
func (v Value[T]) AsString() Result[string] {
	return v.Ops.GetStringValue(v.Raw)
}

// AsNumber reads the value as a Number.
func (v Value[T]) AsNumber() Result[Number] {
	return v.Ops.GetNumberValue(v.Raw)
}

// AsBoolean reads the value as a boolean.
func (v Value[T]) AsBoolean() Result[bool] {
	return v.Ops.GetBooleanValue(v.Raw)
}

// AsInt reads the value as a 32-bit integer.
func (v Value[T]) AsInt() Result[int32] {
	return Map(v.Ops.GetNumberValue(v.Raw), func(n Number) int32 { return int32(n.Int64()) })
}

// AsLong reads the value as a 64-bit integer.
func (v Value[T]) AsLong() Result[int64] {
	return Map(v.Ops.GetNumberValue(v.Raw), func(n Number) int64 { return n.Int64() })
}

// AsDouble reads the value as a 64-bit float.
func (v Value[T]) AsDouble() Result[float64] {
	return Map(v.Ops.GetNumberValue(v.Raw), func(n Number) float64 { return n.Float64() })
}

// AsStream returns the elements of a list Value, each wrapped as a Value.
func (v Value[T]) AsStream() Result[[]Value[T]] {
	return Map(v.Ops.GetList(v.Raw), func(items []T) []Value[T] {
		out := make([]Value[T], len(items))
		for i, item := range items {
			out[i] = Value[T]{Ops: v.Ops, Raw: item}
		}
		return out
	})
}

// CreateString creates a string Value bound to the same ops as v.
func (v Value[T]) CreateString(s string) Value[T] {
	return Value[T]{Ops: v.Ops, Raw: v.Ops.CreateString(s)}
}

// CreateBoolean creates a boolean Value bound to the same ops as v.
func (v Value[T]) CreateBoolean(b bool) Value[T] {
	return Value[T]{Ops: v.Ops, Raw: v.Ops.CreateBoolean(b)}
}

// Convert translates v into the target format via ConvertTo.
func Convert[S, D any](v Value[S], dstOps Ops[D]) Value[D] {
	return Value[D]{Ops: dstOps, Raw: ConvertTo(dstOps, v.Ops, v.Raw)}
}
