// Package option implements Option, a value that is either present (Some) or
// absent (None).
//
// The zero value of Option is None, so every None of a given type is the same
// value and Options can be embedded in structs without initialisation.
package option

import (
	"errors"
	"fmt"

	"github.com/abevier/adt/internal/scan"
)

var (
	// ErrUnwrapNone is the panic value of Unwrap on a None.
	ErrUnwrapNone = errors.New("option: unwrap called on None")
)

// Option represents presence or absence of a value of type T. Values are
// stored inline, which makes Some(nil) valid for nil-capable types; use
// FromNullable to map nil to None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option for T. It is equal to the zero Option[T].
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable returns None when value is nil (a nil interface, pointer, map,
// slice, channel or func) and Some(value) otherwise. Zero values that are not
// nil, such as 0, "" and false, are Some.
func FromNullable[T any](value T) Option[T] {
	if scan.IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk constructs an Option from a value and ok flag, matching Go's
// comma-ok idiom.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// ToPtr returns a pointer to a copy of the value, or nil when None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// OrZero returns the value, or the zero T when None.
func (o Option[T]) OrZero() T {
	return o.value
}

// UnwrapOr returns the value, or fallback when None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the value, or the result of fn when None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Unwrap returns the value and panics with ErrUnwrapNone when None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(ErrUnwrapNone)
	}
	return o.value
}

// Expect returns the value and panics with an error carrying message when None.
func (o Option[T]) Expect(message string) T {
	if !o.ok {
		panic(errors.New(message))
	}
	return o.value
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
