// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"fmt"

	"github.com/holomush/datafixer/pkg/dynamic"
)

// DataFixer is the frozen, read-only pipeline that applies registered
// fixes to move a dynamic.Value[T] from one DataVersion to another. A
// single instance is bound to one concrete Ops[T] family for its lifetime.
// Construct one via DataFixerBuilder.Build or NewRuntime; the zero value is
// not usable.
type DataFixer[T any] struct {
	currentVersion DataVersion
	registry       *DataFixRegistry
	defaultCtx     Context
}

// CurrentVersion returns the latest version this fixer can migrate to.
func (f *DataFixer[T]) CurrentVersion() DataVersion { return f.currentVersion }

// Update migrates input from fromVersion to toVersion under the builder's
// default Context (Silent unless WithDefaultContext was used).
func (f *DataFixer[T]) Update(typeRef TypeReference, input dynamic.Value[T], from, to DataVersion) (dynamic.Value[T], error) {
	return f.UpdateWithContext(typeRef, input, from, to, f.defaultCtx)
}

// UpdateWithContext migrates input from fromVersion to toVersion, invoking
// ctx.Info/Warn for any diagnostics fixes emit along the way. See spec.md
// §4.H for the full precondition/fast-path/algorithm contract.
func (f *DataFixer[T]) UpdateWithContext(typeRef TypeReference, input dynamic.Value[T], from, to DataVersion, ctx Context) (dynamic.Value[T], error) {
	if from > to {
		return dynamic.Value[T]{}, ArgumentError("fromVersion must be <= toVersion",
			"from_version", int64(from), "to_version", int64(to))
	}
	if to > f.currentVersion {
		return dynamic.Value[T]{}, ArgumentError("toVersion must be <= currentVersion",
			"to_version", int64(to), "current_version", int64(f.currentVersion))
	}
	if from == to {
		return input, nil
	}

	versions := f.stepVersionsInRange(typeRef, from, to)
	if len(versions) == 0 {
		return input, nil
	}

	current := any(input)
	for _, v := range versions {
		for _, fx := range f.registry.GetStepFixes(typeRef, v) {
			result, err := fx.applyErased(typeRef, current, ctx)
			if err != nil {
				return dynamic.Value[T]{}, FixError(fx.Name(), fx.From(), fx.To(), typeRef, err)
			}
			typed, ok := result.(dynamic.Value[T])
			if !ok {
				return dynamic.Value[T]{}, FixError(fx.Name(), fx.From(), fx.To(), typeRef,
					fmt.Errorf("fix returned a value of the wrong backing type"))
			}
			current = typed
		}
	}
	return current.(dynamic.Value[T]), nil
}

// stepVersionsInRange collects the sorted distinct fromVersions v with
// from <= v < to and at least one registered fix, per spec.md §4.H step 1.
func (f *DataFixer[T]) stepVersionsInRange(typeRef TypeReference, from, to DataVersion) []DataVersion {
	var out []DataVersion
	for _, v := range f.registry.stepVersions(typeRef) {
		if v >= from && v < to {
			out = append(out, v)
		}
	}
	return out
}
