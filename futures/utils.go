package futures

import (
	"context"
)

// Settled is the outcome of a single Future: either Val with a nil Err, or a non-nil Err.
type Settled[T any] struct {
	Val T
	Err error
}

// ResolveAll waits for all of the provided Futures to complete and returns a Settled for each
// future at the index corresponding to the provided slice. The futures are already running, so the
// order in which they complete has no effect on the order of the returned slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]Settled[T], error) {
	res := make([]Settled[T], 0, len(fs))

	for _, f := range fs {
		r, err := f.Get(ctx)
		// check for error at the end of the loop to avoid the race of cancelling while Getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res = append(res, Settled[T]{Val: r, Err: err})
	}

	return res, nil
}

// FirstErr returns the error of the first Settled in slice order that failed, or nil.
func FirstErr[T any](settled []Settled[T]) error {
	for _, s := range settled {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}
