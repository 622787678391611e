// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package rewrite

import "github.com/holomush/datafixer/pkg/dynamic"

type batchOpKind int

const (
	opRename batchOpKind = iota
	opRemove
	opSet
	opSetStatic
	opTransform
	opAddIfMissing
)

type batchOp[T any] struct {
	kind      batchOpKind
	field     string
	toField   string
	staticVal T
	fn        func(dynamic.Value[T]) dynamic.Value[T]
}

// BatchTransform accumulates field edits and applies them in a single pass
// over a dynamic.Value[T], avoiding repeated encode/decode cycles a chain
// of individually-applied Finders would incur.
type BatchTransform[T any] struct {
	ts []batchOp[T]
}

// NewBatchTransform starts an empty builder.
func NewBatchTransform[T any]() *BatchTransform[T] {
	return &BatchTransform[T]{}
}

// Rename removes "from" and sets "to" to its value; a no-op if "from" is
// absent.
func (b *BatchTransform[T]) Rename(from, to string) *BatchTransform[T] {
	b.ts = append(b.ts, batchOp[T]{kind: opRename, field: from, toField: to})
	return b
}

// Remove removes field; a no-op if absent.
func (b *BatchTransform[T]) Remove(field string) *BatchTransform[T] {
	b.ts = append(b.ts, batchOp[T]{kind: opRemove, field: field})
	return b
}

// Set always sets field to f(current value), where current is the field's
// existing dynamic.Value[T] (absent represented as the ops' Empty()).
func (b *BatchTransform[T]) Set(field string, f func(dynamic.Value[T]) dynamic.Value[T]) *BatchTransform[T] {
	b.ts = append(b.ts, batchOp[T]{kind: opSet, field: field, fn: f})
	return b
}

// SetStatic always sets field to the fixed value v.
func (b *BatchTransform[T]) SetStatic(field string, v T) *BatchTransform[T] {
	b.ts = append(b.ts, batchOp[T]{kind: opSetStatic, field: field, staticVal: v})
	return b
}

// Transform replaces field's value with f(current); a no-op if absent.
func (b *BatchTransform[T]) Transform(field string, f func(dynamic.Value[T]) dynamic.Value[T]) *BatchTransform[T] {
	b.ts = append(b.ts, batchOp[T]{kind: opTransform, field: field, fn: f})
	return b
}

// AddIfMissing sets field to f(empty) only if field is currently absent.
func (b *BatchTransform[T]) AddIfMissing(field string, f func(dynamic.Value[T]) dynamic.Value[T]) *BatchTransform[T] {
	b.ts = append(b.ts, batchOp[T]{kind: opAddIfMissing, field: field, fn: f})
	return b
}

// Apply runs every accumulated operation, in insertion order, over d.
func (b *BatchTransform[T]) Apply(d dynamic.Value[T]) dynamic.Value[T] {
	for _, op := range b.ts {
		d = applyOne(d, op)
	}
	return d
}

func applyOne[T any](d dynamic.Value[T], op batchOp[T]) dynamic.Value[T] {
	switch op.kind {
	case opRename:
		if !d.Has(op.field) {
			return d
		}
		v, _ := d.Get(op.field)
		return d.Remove(op.field).Set(op.toField, v)
	case opRemove:
		return d.Remove(op.field)
	case opSet:
		current, ok := d.Get(op.field)
		if !ok {
			current = dynamic.New(d.Ops, d.Ops.Empty())
		}
		return d.Set(op.field, op.fn(current))
	case opSetStatic:
		return d.Set(op.field, dynamic.New(d.Ops, op.staticVal))
	case opTransform:
		current, ok := d.Get(op.field)
		if !ok {
			return d
		}
		return d.Set(op.field, op.fn(current))
	case opAddIfMissing:
		if d.Has(op.field) {
			return d
		}
		return d.Set(op.field, op.fn(dynamic.New(d.Ops, d.Ops.Empty())))
	default:
		return d
	}
}
