package result

import (
	"context"
	"errors"

	"github.com/abevier/adt/futures"
)

// TryCatch runs fn and captures its failure as an Err. A returned non-nil
// error and a recovered panic are both failures; the captured value (the
// error, or the panic value) is converted to E by mapper, which must not be nil.
// Use TryCatchError to keep the captured value as a Go error.
func TryCatch[T any, E any](fn func() (T, error), mapper func(any) E) Result[T, E] {
	value, captured, failed := capture(fn)
	if !failed {
		return Ok[T, E](value)
	}
	return Err[T](mapper(captured))
}

// TryCatchError is TryCatch for Of[T]. A captured error is stored as-is; panic
// values that are not errors are wrapped in a *PanicError.
func TryCatchError[T any](fn func() (T, error)) Of[T] {
	return TryCatch(fn, asError)
}

// TryCatchAsync calls fn and awaits the future it returns. A panic while
// calling fn and a failed future are captured as an Err in the same way as
// TryCatch. Cancellation of ctx is not captured: it fails the returned future.
func TryCatchAsync[T any, E any](
	ctx context.Context,
	fn func(context.Context) *futures.Future[T],
	mapper func(any) E,
) *futures.Future[Result[T, E]] {
	return futures.FromFunc(func() (Result[T, E], error) {
		var canceled error
		r := TryCatch(func() (T, error) {
			value, err := fn(ctx).Get(ctx)
			if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				canceled = err
				return value, nil
			}
			return value, err
		}, mapper)
		if canceled != nil {
			return Result[T, E]{}, canceled
		}
		return r, nil
	})
}

// TryCatchErrorAsync is TryCatchAsync for Of[T].
func TryCatchErrorAsync[T any](ctx context.Context, fn func(context.Context) *futures.Future[T]) *futures.Future[Of[T]] {
	return TryCatchAsync(ctx, fn, asError)
}

func capture[T any](fn func() (T, error)) (value T, captured any, failed bool) {
	defer func() {
		if p := recover(); p != nil {
			value, captured, failed = *new(T), p, true
		}
	}()

	value, err := fn()
	if err != nil {
		return *new(T), err, true
	}
	return value, nil, false
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
