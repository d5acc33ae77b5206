package result

import "github.com/abevier/adt/internal/scan"

// Map applies fn to the success value. An Err passes through and fn is not called.
func Map[T any, U any, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies fn to the error payload. An Ok passes through and fn is not called.
func MapErr[T any, E any, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// AndThen chains a Result-returning computation onto a success. On Err it
// short-circuits without calling fn.
func AndThen[T any, U any, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// OrElse chains a recovery computation onto a failure. On Ok it short-circuits
// without calling fn.
func OrElse[T any, E any, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// Match invokes exactly one of onOk or onErr and returns its result.
func Match[T any, E any, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Filter turns an Ok whose value fails predicate into Err(errFn(value)). Err
// inputs and Ok values that pass are returned unchanged.
func Filter[T any, E any](r Result[T, E], predicate func(T) bool, errFn func(T) E) Result[T, E] {
	if !r.ok || predicate(r.value) {
		return r
	}
	return Err[T](errFn(r.value))
}

// Flatten removes one level of nesting.
func Flatten[T any, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

// Tap calls fn with the success value and returns r unchanged.
func Tap[T any, E any](r Result[T, E], fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr calls fn with the error payload and returns r unchanged.
func TapErr[T any, E any](r Result[T, E], fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Combine returns Ok with every success value, in input order, when all
// results are Ok. Otherwise it returns the first Err in input order; results
// after it are not inspected.
func Combine[T any, E any](results []Result[T, E]) Result[[]T, E] {
	values, failed := scan.All(results, Result[T, E].Get)
	if failed >= 0 {
		return Err[[]T](results[failed].err)
	}
	return Ok[[]T, E](values)
}

// Collect returns the success values of results in order, skipping failures.
func Collect[T any, E any](results []Result[T, E]) []T {
	return scan.Keep(results, Result[T, E].Get)
}
