package option

import (
	"context"

	"github.com/abevier/adt/futures"
)

// MapAsync awaits in and then behaves like Map. A failed input future, or an
// error returned by fn, fails the returned future.
func MapAsync[T any, U any](
	ctx context.Context,
	in *futures.Future[Option[T]],
	fn func(context.Context, T) (U, error),
) *futures.Future[Option[U]] {
	return futures.FromFunc(func() (Option[U], error) {
		o, err := in.Get(ctx)
		if err != nil {
			return None[U](), err
		}
		if !o.ok {
			return None[U](), nil
		}
		u, err := fn(ctx, o.value)
		if err != nil {
			return None[U](), err
		}
		return Some(u), nil
	})
}

// AndThenAsync awaits in and then behaves like AndThen.
func AndThenAsync[T any, U any](
	ctx context.Context,
	in *futures.Future[Option[T]],
	fn func(context.Context, T) (Option[U], error),
) *futures.Future[Option[U]] {
	return futures.FromFunc(func() (Option[U], error) {
		o, err := in.Get(ctx)
		if err != nil {
			return None[U](), err
		}
		if !o.ok {
			return None[U](), nil
		}
		return fn(ctx, o.value)
	})
}

// CombineAsync waits for every future and applies Combine to the resolved
// Options in input order. A failed future fails the returned future with the
// first such error in input order.
func CombineAsync[T any](ctx context.Context, fs []*futures.Future[Option[T]]) *futures.Future[Option[[]T]] {
	return futures.FromFunc(func() (Option[[]T], error) {
		settled, err := futures.ResolveAll(ctx, fs)
		if err != nil {
			return None[[]T](), err
		}
		if err := futures.FirstErr(settled); err != nil {
			return None[[]T](), err
		}
		options := make([]Option[T], len(settled))
		for i, s := range settled {
			options[i] = s.Val
		}
		return Combine(options), nil
	})
}
