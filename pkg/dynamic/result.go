// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

// Result is the success/error monad used throughout the dynamic and codec
// packages. Exactly one of "success" or "error" holds (I5 in spec terms):
// IsSuccess() and IsError() report which, and the zero Result is never meaningful on
// its own — always construct one via Success, Error, or ErrorPartial.
type Result[A any] struct {
	value   A
	partial A
	hasPart bool
	err     string
	isErr   bool
}

// Success builds a successful Result.
func Success[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Error builds a failed Result with no partial value.
func Error[A any](msg string) Result[A] {
	return Result[A]{err: msg, isErr: true}
}

// ErrorPartial builds a failed Result carrying a best-effort partial value,
// used by codecs (e.g. ListOf) to recover something usable from a partially
// decoded collection.
func ErrorPartial[A any](msg string, partial A) Result[A] {
	return Result[A]{err: msg, isErr: true, partial: partial, hasPart: true}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[A]) IsSuccess() bool { return !r.isErr }

// IsError reports whether the Result holds an error.
func (r Result[A]) IsError() bool { return r.isErr }

// Get returns the success value and true, or the zero value and false.
func (r Result[A]) Get() (A, bool) {
	if r.isErr {
		var zero A
		return zero, false
	}
	return r.value, true
}

// Partial returns the best-effort partial value carried by an error Result,
// and whether one was set. A successful Result has no partial value.
func (r Result[A]) Partial() (A, bool) {
	if !r.isErr {
		var zero A
		return zero, false
	}
	return r.partial, r.hasPart
}

// ErrorMessage returns the error message, or "" for a successful Result.
func (r Result[A]) ErrorMessage() string { return r.err }

// MustGet returns the success value, panicking with the error message if
// the Result is an error. Intended for call sites that have already proven
// success (e.g. immediately after IsSuccess), matching the
// get_or_throw() contract from the spec.
func (r Result[A]) MustGet() A {
	if r.isErr {
		panic("dynamic: Result.MustGet called on error Result: " + r.err)
	}
	return r.value
}

// Map transforms a successful Result's value, passing errors through
// unchanged.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.isErr {
		return Result[B]{err: r.err, isErr: true}
	}
	return Success(f(r.value))
}

// FlatMap chains a Result-returning function onto a successful Result.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.isErr {
		return Result[B]{err: r.err, isErr: true}
	}
	return f(r.value)
}

// MapError transforms the error message of a failed Result, leaving a
// successful Result untouched.
func (r Result[A]) MapError(f func(string) string) Result[A] {
	if !r.isErr {
		return r
	}
	r.err = f(r.err)
	return r
}

// Or returns r if it is successful, otherwise other.
func (r Result[A]) Or(other Result[A]) Result[A] {
	if r.isErr {
		return other
	}
	return r
}

// Prefix prepends context to an error message without discarding the
// partial value, matching the "chain-combinator" contract in spec.md §3.
func (r Result[A]) Prefix(context string) Result[A] {
	if !r.isErr {
		return r
	}
	r.err = context + ": " + r.err
	return r
}
