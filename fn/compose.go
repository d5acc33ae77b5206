// Package fn provides small general-purpose helpers that compose with the
// result and option packages: function composition and currying, memoization,
// debouncing and throttling, slice shaping, and safe accessors that return
// Options instead of panicking.
//
// Example:
//
//	label := fn.Pipe("go",
//		strings.ToUpper,
//		func(s string) string { return s + "!" },
//	)
package fn

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Pipe threads value through fns from left to right.
//
//	fn.Pipe(2, double, inc) // inc(double(2))
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, f := range fns {
		result = f(result)
	}
	return result
}

// Compose returns a function that applies fns from right to left.
//
//	fn.Compose(double, inc)(2) // double(inc(2))
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Curry2 converts a binary function into its curried form.
func Curry2[A any, B any, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form.
func Curry3[A any, B any, C any, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Partial binds the first argument of a binary function.
func Partial[A any, B any, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 binds the first argument of a ternary function.
func Partial2[A any, B any, C any, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}
