// Package result provides Result, a value that is either a success (Ok) carrying
// a T or a failure (Err) carrying an E.
//
// A Result is immutable: every combinator returns a new Result and never
// modifies its input. Failures are ordinary data and are never panicked, except
// by the explicitly unsafe Unwrap and Expect.
//
// Example:
//
//	port := result.AndThen(parsePort(raw), checkRange)
//	fmt.Println(port.UnwrapOr(8080))
package result

import (
	"errors"
	"fmt"
)

// Result is either Ok with a value of type T or Err with an error payload of
// type E. The variant is fixed at construction.
//
// The zero value is an Err carrying the zero E; use Ok and Err to build Results.
type Result[T any, E any] struct {
	value T
	err   E
	ok    bool
}

// Of is the conventional Go shape of a Result, with a Go error as the failure payload.
type Of[T any] = Result[T, error]

// Ok constructs a successful Result carrying value.
func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err constructs a failed Result carrying err.
func Err[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
//	n, err := strconv.Atoi(s)
//	res := result.FromTuple(n, err)
func FromTuple[T any](value T, err error) Of[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// IsOk reports whether the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or the zero T and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	return *new(T), false
}

// Error returns the failure payload and true, or the zero E and false.
func (r Result[T, E]) Error() (E, bool) {
	if r.ok {
		return *new(E), false
	}
	return r.err, true
}

// ToTuple exposes the Result as a (value, error) pair. Non-error payloads are
// wrapped in an UnwrapError.
func (r Result[T, E]) ToTuple() (T, error) {
	if r.ok {
		return r.value, nil
	}
	return *new(T), payloadError(r.err)
}

// UnwrapOr returns the success value, or fallback when the Result is Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value, or computes one from the error payload.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Unwrap returns the success value and panics when the Result is Err.
//
// If the payload is an error it is the panic value as-is; any other payload is
// wrapped in an *UnwrapError. Prefer UnwrapOr, UnwrapOrElse or Match.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(payloadError(r.err))
	}
	return r.value
}

// Expect returns the success value and panics with an error carrying message
// when the Result is Err. The original payload is discarded.
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		panic(errors.New(message))
	}
	return r.value
}

// String implements fmt.Stringer for debugging.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func payloadError[E any](payload E) error {
	if err, ok := any(payload).(error); ok && err != nil {
		return err
	}
	return &UnwrapError{Payload: payload}
}
