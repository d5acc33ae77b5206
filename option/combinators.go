package option

import (
	"github.com/abevier/adt/internal/scan"
	"github.com/abevier/adt/result"
)

// Map transforms the value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// AndThen chains an Option-returning function. fn is not called on None.
func AndThen[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// OrElse returns o when it is Some, otherwise the Option produced by fn.
func OrElse[T any](o Option[T], fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// Match invokes exactly one of onSome or onNone and returns its result.
func Match[T any, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Filter keeps a Some whose value satisfies predicate; everything else is None.
func Filter[T any](o Option[T], predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Tap calls fn with the value when present and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// Map2 applies fn when both Options are Some.
func Map2[A any, B any, R any](a Option[A], b Option[B], fn func(A, B) R) Option[R] {
	if !a.ok || !b.ok {
		return None[R]()
	}
	return Some(fn(a.value, b.value))
}

// Map3 applies fn when all three Options are Some.
func Map3[A any, B any, C any, R any](a Option[A], b Option[B], c Option[C], fn func(A, B, C) R) Option[R] {
	if !a.ok || !b.ok || !c.ok {
		return None[R]()
	}
	return Some(fn(a.value, b.value, c.value))
}

// Combine returns Some with every value, in input order, when all options are
// Some, and None as soon as a None is found.
func Combine[T any](options []Option[T]) Option[[]T] {
	values, failed := scan.All(options, Option[T].Get)
	if failed >= 0 {
		return None[[]T]()
	}
	return Some(values)
}

// FindSome returns the first Some in options, or None.
func FindSome[T any](options []Option[T]) Option[T] {
	value, ok := scan.First(options, Option[T].Get)
	return FromOk(value, ok)
}

// CollectSome returns the values of every Some in order, skipping None. It
// never fails.
func CollectSome[T any](options []Option[T]) []T {
	return scan.Keep(options, Option[T].Get)
}

// FromResult converts Ok to Some and Err to None.
func FromResult[T any, E any](r result.Result[T, E]) Option[T] {
	value, ok := r.Get()
	return FromOk(value, ok)
}

// OkOr converts Some to Ok and None to Err(err).
func OkOr[T any, E any](o Option[T], err E) result.Result[T, E] {
	if o.ok {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T](err)
}

// OkOrElse converts Some to Ok and None to Err(fn()). fn is only called on None.
func OkOrElse[T any, E any](o Option[T], fn func() E) result.Result[T, E] {
	if o.ok {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T](fn())
}
