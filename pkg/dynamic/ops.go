// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

// Ops is the format-agnostic algebra over a tree value of type T. Every
// mutating operation (Set, Remove, MergeToList, MergeToMap) returns a fresh
// T; implementations must not mutate the T passed in (I1).
//
// Ops implementations are expected to be cheap, immutable, process-wide
// singletons (JSON, YAML, ...), safe for concurrent use by any number of
// goroutines once constructed.
type Ops[T any] interface {
	// Sentinels.
	Empty() T
	EmptyList() T
	EmptyMap() T

	// Type predicates.
	IsMap(v T) bool
	IsList(v T) bool
	IsString(v T) bool
	IsNumber(v T) bool
	IsBoolean(v T) bool

	// Equal performs a structural comparison of two values of this
	// format. Substitutes for reflect.DeepEqual, which the design notes
	// rule out as a reflection-based shortcut.
	Equal(a, b T) bool

	// Constructors. Never fail.
	CreateString(s string) T
	CreateBoolean(b bool) T
	CreateByte(v int8) T
	CreateShort(v int16) T
	CreateInt(v int32) T
	CreateLong(v int64) T
	CreateFloat(v float32) T
	CreateDouble(v float64) T
	CreateNumeric(n Number) T

	// Primitive readers.
	GetStringValue(v T) Result[string]
	GetNumberValue(v T) Result[Number]
	GetBooleanValue(v T) Result[bool]

	// List ops.
	CreateList(items []T) T
	GetList(v T) Result[[]T]
	MergeToList(list T, value T) Result[T]

	// Map ops. Entries with a nil key are silently skipped; non-string
	// keys are coerced to their textual representation; nil values become
	// Empty().
	CreateMap(entries []Pair[T, T]) T
	GetMapEntries(v T) Result[[]Pair[T, T]]
	MergeToMap(m T, key T, value T) Result[T]
	MergeMaps(m T, other T) Result[T]

	// Field ops.
	Get(v T, key string) (T, bool)
	Set(v T, key string, value T) T
	Remove(v T, key string) T
	Has(v T, key string) bool
}

// ConvertTo translates value from its source format (srcOps) into the
// destination format dstOps, probing boolean -> number -> string -> list ->
// map in that order and falling back to dstOps.Empty() for anything else
// (P9). Null-keyed map entries are dropped; null values become Empty().
//
// Numeric conversion is best-effort: a wide float narrowed to a smaller
// destination kind is not an error (ConvertTo never fails), matching the
// Open Question resolution documented in SPEC_FULL.md §7.
func ConvertTo[S, D any](dstOps Ops[D], srcOps Ops[S], value S) D {
	if b := srcOps.GetBooleanValue(value); b.IsSuccess() {
		return dstOps.CreateBoolean(b.MustGet())
	}
	if n := srcOps.GetNumberValue(value); n.IsSuccess() {
		return dstOps.CreateNumeric(n.MustGet())
	}
	if s := srcOps.GetStringValue(value); s.IsSuccess() {
		return dstOps.CreateString(s.MustGet())
	}
	if list := srcOps.GetList(value); list.IsSuccess() {
		items := list.MustGet()
		converted := make([]D, 0, len(items))
		for _, item := range items {
			converted = append(converted, ConvertTo(dstOps, srcOps, item))
		}
		return dstOps.CreateList(converted)
	}
	if entries := srcOps.GetMapEntries(value); entries.IsSuccess() {
		pairs := entries.MustGet()
		converted := make([]Pair[D, D], 0, len(pairs))
		for _, p := range pairs {
			converted = append(converted, NewPair(
				ConvertTo(dstOps, srcOps, p.First),
				ConvertTo(dstOps, srcOps, p.Second),
			))
		}
		return dstOps.CreateMap(converted)
	}
	return dstOps.Empty()
}
