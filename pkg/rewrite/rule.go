// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package rewrite

import "fmt"

// Rule is a TypeRewriteRule: a function from (TypeReference, Typed) to a
// possibly-absent transformed Typed. The bool return mirrors the source's
// Option<Typed> — false means the rule declined to handle the input.
type Rule func(TypeReference, Typed) (Typed, bool)

// Identity always succeeds, returning the input unchanged.
func Identity() Rule {
	return func(_ TypeReference, t Typed) (Typed, bool) { return t, true }
}

// Fail always declines.
func Fail() Rule {
	return func(TypeReference, Typed) (Typed, bool) { return Typed{}, false }
}

// Simple always succeeds, applying f to the input.
func Simple(f func(Typed) Typed) Rule {
	return func(_ TypeReference, t Typed) (Typed, bool) { return f(t), true }
}

// ForType succeeds only when t.Kind matches kind, applying f; otherwise
// declines.
func ForType(kind Kind, f func(Typed) Typed) Rule {
	return func(_ TypeReference, t Typed) (Typed, bool) {
		if t.Kind != kind {
			return Typed{}, false
		}
		return f(t), true
	}
}

// AndThen composes r and next left-to-right: next only runs if r succeeds,
// against r's output. The composite fails if either fails.
func (r Rule) AndThen(next Rule) Rule {
	return func(ref TypeReference, t Typed) (Typed, bool) {
		mid, ok := r(ref, t)
		if !ok {
			return Typed{}, false
		}
		return next(ref, mid)
	}
}

// OrElse attempts r first; on decline, attempts alt against the original
// input.
func (r Rule) OrElse(alt Rule) Rule {
	return func(ref TypeReference, t Typed) (Typed, bool) {
		if out, ok := r(ref, t); ok {
			return out, true
		}
		return alt(ref, t)
	}
}

// OrKeep lifts r to a total rule: decline becomes "return input unchanged".
func (r Rule) OrKeep() Rule {
	return func(ref TypeReference, t Typed) (Typed, bool) {
		if out, ok := r(ref, t); ok {
			return out, true
		}
		return t, true
	}
}

// IfType filters an arbitrary rule to only run when t.Kind == kind.
func (r Rule) IfType(kind Kind) Rule {
	return func(ref TypeReference, t Typed) (Typed, bool) {
		if t.Kind != kind {
			return Typed{}, false
		}
		return r(ref, t)
	}
}

// Named is an opaque renaming: it wraps r under name without changing
// behavior. The name is not reported anywhere; Apply and ApplyOrThrow
// (including ApplyOrThrow's error message) do not include it.
func (r Rule) Named(name string) Rule {
	named := namedRule{name: name, rule: r}
	return named.run
}

type namedRule struct {
	name string
	rule Rule
}

func (n namedRule) run(ref TypeReference, t Typed) (Typed, bool) {
	return n.rule(ref, t)
}

// Apply returns the transformed Typed on success, or the original input on
// decline.
func (r Rule) Apply(ref TypeReference, t Typed) Typed {
	out, ok := r(ref, t)
	if !ok {
		return t
	}
	return out
}

// ApplyOrThrow is like Apply but returns an error instead of silently
// keeping the input when r declines.
func (r Rule) ApplyOrThrow(ref TypeReference, t Typed) (Typed, error) {
	out, ok := r(ref, t)
	if !ok {
		return Typed{}, fmt.Errorf("rewrite: rule declined for type %q (kind=%s)", ref, t.Kind)
	}
	return out, nil
}
