// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package rewrite

import (
	"fmt"
	"strings"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// Finder is a value-level optic over a dynamic.Value[T]: get/set/update a
// focused sub-value, with composition via Then.
type Finder[T any] interface {
	Get(d dynamic.Value[T]) (dynamic.Value[T], bool)
	Set(d dynamic.Value[T], v dynamic.Value[T]) dynamic.Value[T]
	Update(d dynamic.Value[T], f func(dynamic.Value[T]) dynamic.Value[T]) dynamic.Value[T]
	GetOptional(d dynamic.Value[T]) (dynamic.Value[T], bool)
	Then(other Finder[T]) Finder[T]
	ID() string
}

// base implements Then/GetOptional/Update in terms of an embedding
// finder's Get/Set, so field/index/identity/remainder only need to
// implement Get, Set, and ID.
type base[T any] struct {
	self Finder[T]
}

func (b base[T]) GetOptional(d dynamic.Value[T]) (dynamic.Value[T], bool) {
	return b.self.Get(d)
}

func (b base[T]) Update(d dynamic.Value[T], f func(dynamic.Value[T]) dynamic.Value[T]) dynamic.Value[T] {
	v, ok := b.self.Get(d)
	if !ok {
		return d
	}
	return b.self.Set(d, f(v))
}

func (b base[T]) Then(other Finder[T]) Finder[T] {
	return &thenFinder[T]{first: b.self, second: other}
}

type fieldFinder[T any] struct {
	base[T]
	name string
}

// Field builds a Finder that focuses the value at a map key.
func Field[T any](name string) Finder[T] {
	f := &fieldFinder[T]{name: name}
	f.base = base[T]{self: f}
	return f
}

func (f *fieldFinder[T]) Get(d dynamic.Value[T]) (dynamic.Value[T], bool) {
	raw, ok := d.Ops.Get(d.Raw, f.name)
	if !ok {
		return dynamic.Value[T]{}, false
	}
	return dynamic.New(d.Ops, raw), true
}

func (f *fieldFinder[T]) Set(d dynamic.Value[T], v dynamic.Value[T]) dynamic.Value[T] {
	return dynamic.New(d.Ops, d.Ops.Set(d.Raw, f.name, v.Raw))
}

func (f *fieldFinder[T]) ID() string { return fmt.Sprintf("field[%s]", f.name) }

type indexFinder[T any] struct {
	base[T]
	index int
}

// Index builds a Finder that focuses the value at a list position.
// Out-of-bounds Get returns absent; out-of-bounds Set is a no-op.
func Index[T any](i int) Finder[T] {
	f := &indexFinder[T]{index: i}
	f.base = base[T]{self: f}
	return f
}

func (f *indexFinder[T]) Get(d dynamic.Value[T]) (dynamic.Value[T], bool) {
	items := d.Ops.GetList(d.Raw)
	if items.IsError() {
		return dynamic.Value[T]{}, false
	}
	list := items.MustGet()
	if f.index < 0 || f.index >= len(list) {
		return dynamic.Value[T]{}, false
	}
	return dynamic.New(d.Ops, list[f.index]), true
}

func (f *indexFinder[T]) Set(d dynamic.Value[T], v dynamic.Value[T]) dynamic.Value[T] {
	items := d.Ops.GetList(d.Raw)
	if items.IsError() {
		return d
	}
	list := items.MustGet()
	if f.index < 0 || f.index >= len(list) {
		return d
	}
	updated := make([]T, len(list))
	copy(updated, list)
	updated[f.index] = v.Raw
	return dynamic.New(d.Ops, d.Ops.CreateList(updated))
}

func (f *indexFinder[T]) ID() string { return fmt.Sprintf("index[%d]", f.index) }

type identityFinder[T any] struct {
	base[T]
}

// Identity builds a Finder that focuses the whole value.
func Identity[T any]() Finder[T] {
	f := &identityFinder[T]{}
	f.base = base[T]{self: f}
	return f
}

func (f *identityFinder[T]) Get(d dynamic.Value[T]) (dynamic.Value[T], bool) { return d, true }

func (f *identityFinder[T]) Set(_ dynamic.Value[T], v dynamic.Value[T]) dynamic.Value[T] { return v }

func (f *identityFinder[T]) ID() string { return "identity" }

type remainderFinder[T any] struct {
	base[T]
	exclusions map[string]struct{}
}

// Remainder builds a Finder over "everything except the named fields": Get
// returns a map value with the excluded keys stripped; Set overwrites all
// non-excluded entries with the provided map's entries, preserving the
// excluded entries from the original (a no-op if the original is not a
// map).
func Remainder[T any](exclusions ...string) Finder[T] {
	set := make(map[string]struct{}, len(exclusions))
	for _, name := range exclusions {
		set[name] = struct{}{}
	}
	f := &remainderFinder[T]{exclusions: set}
	f.base = base[T]{self: f}
	return f
}

func (f *remainderFinder[T]) Get(d dynamic.Value[T]) (dynamic.Value[T], bool) {
	entries := d.Ops.GetMapEntries(d.Raw)
	if entries.IsError() {
		return dynamic.Value[T]{}, false
	}
	kept := make([]dynamic.Pair[T, T], 0)
	for _, e := range entries.MustGet() {
		key := d.Ops.GetStringValue(e.First)
		if key.IsSuccess() {
			if _, excluded := f.exclusions[key.MustGet()]; excluded {
				continue
			}
		}
		kept = append(kept, e)
	}
	return dynamic.New(d.Ops, d.Ops.CreateMap(kept)), true
}

func (f *remainderFinder[T]) Set(d dynamic.Value[T], v dynamic.Value[T]) dynamic.Value[T] {
	if !d.Ops.IsMap(d.Raw) {
		return d
	}
	// Start from only the excluded entries of the original, so that
	// anything not excluded and not present in v is dropped, matching
	// "overwrites all non-excluded entries with the provided map".
	result := d.Ops.EmptyMap()
	if origEntries := d.Ops.GetMapEntries(d.Raw); origEntries.IsSuccess() {
		for _, e := range origEntries.MustGet() {
			key := d.Ops.GetStringValue(e.First)
			if key.IsError() {
				continue
			}
			if _, excluded := f.exclusions[key.MustGet()]; excluded {
				result = d.Ops.Set(result, key.MustGet(), e.Second)
			}
		}
	}
	if newEntries := v.Ops.GetMapEntries(v.Raw); newEntries.IsSuccess() {
		for _, e := range newEntries.MustGet() {
			key := v.Ops.GetStringValue(e.First)
			if key.IsError() {
				continue
			}
			if _, excluded := f.exclusions[key.MustGet()]; excluded {
				continue
			}
			result = d.Ops.Set(result, key.MustGet(), e.Second)
		}
	}
	return dynamic.New(d.Ops, result)
}

func (f *remainderFinder[T]) ID() string { return "remainder" }

type thenFinder[T any] struct {
	first, second Finder[T]
}

func (t *thenFinder[T]) Get(d dynamic.Value[T]) (dynamic.Value[T], bool) {
	mid, ok := t.first.Get(d)
	if !ok {
		return dynamic.Value[T]{}, false
	}
	return t.second.Get(mid)
}

func (t *thenFinder[T]) GetOptional(d dynamic.Value[T]) (dynamic.Value[T], bool) { return t.Get(d) }

func (t *thenFinder[T]) Set(d dynamic.Value[T], v dynamic.Value[T]) dynamic.Value[T] {
	mid, ok := t.first.Get(d)
	if !ok {
		return d
	}
	updated := t.second.Set(mid, v)
	return t.first.Set(d, updated)
}

func (t *thenFinder[T]) Update(d dynamic.Value[T], f func(dynamic.Value[T]) dynamic.Value[T]) dynamic.Value[T] {
	mid, ok := t.Get(d)
	if !ok {
		return d
	}
	return t.Set(d, f(mid))
}

func (t *thenFinder[T]) Then(other Finder[T]) Finder[T] {
	return &thenFinder[T]{first: t, second: other}
}

func (t *thenFinder[T]) ID() string {
	return strings.Join([]string{t.first.ID(), t.second.ID()}, ".")
}
