package futures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveAll(t *testing.T) {
	req := require.New(t)

	f1 := FromFunc(func() (int, error) {
		time.Sleep(6 * time.Millisecond)
		return 1, nil
	})

	f2 := FromFunc(func() (int, error) {
		time.Sleep(4 * time.Millisecond)
		return 0, ErrTest
	})

	f3 := FromFunc(func() (int, error) {
		time.Sleep(2 * time.Millisecond)
		return 3, nil
	})

	rs, err := ResolveAll(context.Background(), []*Future[int]{f1, f2, f3})
	req.NoError(err)

	expected := []Settled[int]{
		{Val: 1},
		{Err: ErrTest},
		{Val: 3},
	}

	req.Equal(expected, rs)
	req.ErrorIs(FirstErr(rs), ErrTest)
}

func TestResolveAllEmpty(t *testing.T) {
	req := require.New(t)

	rs, err := ResolveAll(context.Background(), []*Future[int]{})
	req.NoError(err)
	req.Empty(rs)
	req.NoError(FirstErr(rs))
}

func TestResolveAllCancellation(t *testing.T) {
	req := require.New(t)

	f1 := New[int]()
	f2 := New[int]()
	f3 := New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := ResolveAll(ctx, []*Future[int]{f1, f2, f3})
	req.ErrorIs(err, context.Canceled)
}
