// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"fmt"
	"sort"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// Fix is the non-generic face of a DataFix, letting a DataFixRegistry hold
// fixes for heterogeneous backing-format instantiations (a single
// application only ever uses one concrete T, but the registry's storage
// does not need to know that statically). Build one with NewFix.
type Fix interface {
	Name() string
	From() DataVersion
	To() DataVersion
	applyErased(typeRef TypeReference, value any, ctx Context) (any, error)
}

// ApplyFunc transforms a value of the application's backing format T,
// logically at fromVersion, to the fix's toVersion.
type ApplyFunc[T any] func(typeRef TypeReference, value dynamic.Value[T], ctx Context) (dynamic.Value[T], error)

type dataFix[T any] struct {
	name string
	from DataVersion
	to   DataVersion
	fn   ApplyFunc[T]
}

// NewFix builds a Fix from a from/to version span and a typed Apply
// function. Panics if from > to, matching the DataFixerBuilder.addFix
// precondition in spec.md §4.J (a registration-time programmer error, not
// a runtime data condition).
func NewFix[T any](name string, from, to DataVersion, fn ApplyFunc[T]) Fix {
	if from > to {
		panic(fmt.Sprintf("fixer: fix %q has fromVersion %d > toVersion %d", name, from, to))
	}
	return &dataFix[T]{name: name, from: from, to: to, fn: fn}
}

func (f *dataFix[T]) Name() string      { return f.name }
func (f *dataFix[T]) From() DataVersion { return f.from }
func (f *dataFix[T]) To() DataVersion   { return f.to }

func (f *dataFix[T]) applyErased(typeRef TypeReference, value any, ctx Context) (any, error) {
	typed, ok := value.(dynamic.Value[T])
	if !ok {
		return nil, ArgumentError("fix applied to value of unexpected backing type",
			"fix_name", f.name, "type_reference", string(typeRef))
	}
	result, err := f.fn(typeRef, typed, ctx)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// fixStep is one fromVersion's worth of fixes, in registration order.
type fixStep struct {
	from DataVersion
	list []Fix
}

// DataFixRegistry maps TypeReference -> fromVersion -> ordered list of
// fixes whose fromVersion matches. Registration order within a fromVersion
// is preserved and is the execution order.
type DataFixRegistry struct {
	steps  map[TypeReference]map[DataVersion]*fixStep
	frozen bool
}

// NewDataFixRegistry returns an empty, unfrozen registry.
func NewDataFixRegistry() *DataFixRegistry {
	return &DataFixRegistry{steps: make(map[TypeReference]map[DataVersion]*fixStep)}
}

// Add registers fix under typeRef, appended to any existing fixes sharing
// its From() version.
func (r *DataFixRegistry) Add(typeRef TypeReference, fix Fix) error {
	if r.frozen {
		return SchemaError("cannot register fix: registry is frozen",
			"fix_name", fix.Name(), "type_reference", string(typeRef))
	}
	byVersion, ok := r.steps[typeRef]
	if !ok {
		byVersion = make(map[DataVersion]*fixStep)
		r.steps[typeRef] = byVersion
	}
	step, ok := byVersion[fix.From()]
	if !ok {
		step = &fixStep{from: fix.From()}
		byVersion[fix.From()] = step
	}
	step.list = append(step.list, fix)
	return nil
}

// AddAll registers every fix in fixes under typeRef, preserving order.
func (r *DataFixRegistry) AddAll(typeRef TypeReference, fixes ...Fix) error {
	for _, f := range fixes {
		if err := r.Add(typeRef, f); err != nil {
			return err
		}
	}
	return nil
}

// GetStepFixes returns the fixes registered with fromVersion == from for
// typeRef, in registration order; an empty, non-nil slice if none.
func (r *DataFixRegistry) GetStepFixes(typeRef TypeReference, from DataVersion) []Fix {
	byVersion, ok := r.steps[typeRef]
	if !ok {
		return []Fix{}
	}
	step, ok := byVersion[from]
	if !ok {
		return []Fix{}
	}
	return append([]Fix(nil), step.list...)
}

// stepVersions returns the sorted fromVersions with a non-empty step for
// typeRef.
func (r *DataFixRegistry) stepVersions(typeRef TypeReference) []DataVersion {
	byVersion, ok := r.steps[typeRef]
	if !ok {
		return nil
	}
	out := make([]DataVersion, 0, len(byVersion))
	for v, step := range byVersion {
		if len(step.list) > 0 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetFixes flattens every fix whose fromVersion is in [fromInclusive,
// toInclusive], ascending by version, stable within a version.
func (r *DataFixRegistry) GetFixes(typeRef TypeReference, fromInclusive, toInclusive DataVersion) []Fix {
	var out []Fix
	for _, v := range r.stepVersions(typeRef) {
		if v < fromInclusive || v > toInclusive {
			continue
		}
		out = append(out, r.GetStepFixes(typeRef, v)...)
	}
	return out
}

// HasFixesInRange reports whether any fix exists with fromVersion >
// fromExclusive and fromVersion <= toInclusive.
func (r *DataFixRegistry) HasFixesInRange(typeRef TypeReference, fromExclusive, toInclusive DataVersion) bool {
	for _, v := range r.stepVersions(typeRef) {
		if v > fromExclusive && v <= toInclusive {
			return true
		}
	}
	return false
}

// Freeze forbids further registration.
func (r *DataFixRegistry) Freeze() { r.frozen = true }

// IsFrozen reports whether Freeze has been called.
func (r *DataFixRegistry) IsFrozen() bool { return r.frozen }
