package result

import (
	"context"

	"github.com/abevier/adt/futures"
)

// MapAsync awaits in and then behaves like Map. fn may block; it receives ctx
// so it can await its own futures. A failed input future, or an error returned
// by fn, fails the returned future instead of producing an Err.
func MapAsync[T any, U any, E any](
	ctx context.Context,
	in *futures.Future[Result[T, E]],
	fn func(context.Context, T) (U, error),
) *futures.Future[Result[U, E]] {
	return futures.FromFunc(func() (Result[U, E], error) {
		r, err := in.Get(ctx)
		if err != nil {
			return Result[U, E]{}, err
		}
		if !r.ok {
			return Err[U](r.err), nil
		}
		u, err := fn(ctx, r.value)
		if err != nil {
			return Result[U, E]{}, err
		}
		return Ok[U, E](u), nil
	})
}

// AndThenAsync awaits in and then behaves like AndThen. fn is not called when
// in resolves to an Err.
func AndThenAsync[T any, U any, E any](
	ctx context.Context,
	in *futures.Future[Result[T, E]],
	fn func(context.Context, T) (Result[U, E], error),
) *futures.Future[Result[U, E]] {
	return futures.FromFunc(func() (Result[U, E], error) {
		r, err := in.Get(ctx)
		if err != nil {
			return Result[U, E]{}, err
		}
		if !r.ok {
			return Err[U](r.err), nil
		}
		return fn(ctx, r.value)
	})
}

// CombineAsync waits for every future and then applies Combine to the resolved
// Results in input order, whatever order the futures completed in. If any
// future itself fails, the returned future fails with the first such error in
// input order.
func CombineAsync[T any, E any](ctx context.Context, fs []*futures.Future[Result[T, E]]) *futures.Future[Result[[]T, E]] {
	return futures.FromFunc(func() (Result[[]T, E], error) {
		settled, err := futures.ResolveAll(ctx, fs)
		if err != nil {
			return Result[[]T, E]{}, err
		}
		if err := futures.FirstErr(settled); err != nil {
			return Result[[]T, E]{}, err
		}
		results := make([]Result[T, E], len(settled))
		for i, s := range settled {
			results[i] = s.Val
		}
		return Combine(results), nil
	})
}
