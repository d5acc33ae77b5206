package fn

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoize(t *testing.T) {
	req := require.New(t)

	calls := 0
	square := Memoize(func(v int) int {
		calls++
		return v * v
	})

	req.Equal(9, square(3))
	req.Equal(9, square(3))
	req.Equal(16, square(4))
	req.Equal(2, calls)
}

func TestMemoizeConcurrent(t *testing.T) {
	req := require.New(t)

	label := Memoize(strconv.Itoa)

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req.Equal(strconv.Itoa(n%10), label(n%10))
		}(i)
	}
	wg.Wait()
}

type point struct {
	X, Y int
}

func TestMemoizeByStructuralKey(t *testing.T) {
	req := require.New(t)

	calls := 0
	norm := MemoizeBy(func(p point) int {
		calls++
		return p.X*p.X + p.Y*p.Y
	}, MemoizeOpts[point]{})

	req.Equal(25, norm(point{3, 4}))
	req.Equal(25, norm(point{3, 4}))
	req.Equal(25, norm(point{4, 3}))
	req.Equal(2, calls)
}

func TestMemoizeByUnencodableFallsBack(t *testing.T) {
	req := require.New(t)

	calls := 0
	call := MemoizeBy(func(c chan int) int {
		calls++
		return cap(c)
	}, MemoizeOpts[chan int]{})

	ch := make(chan int, 2)
	req.Equal(2, call(ch))
	req.Equal(2, call(ch))
	req.Equal(1, calls)
}

func TestMemoizeByBounded(t *testing.T) {
	req := require.New(t)

	calls := map[string]int{}
	upper := MemoizeBy(func(s string) string {
		calls[s]++
		return s + s
	}, MemoizeOpts[string]{
		Key:        func(s string) string { return s },
		MaxEntries: 2,
	})

	upper("a")
	upper("b")
	upper("a")
	req.Equal(1, calls["a"])

	// "a" is the oldest entry and is evicted.
	upper("c")
	upper("a")
	req.Equal(2, calls["a"])
	req.Equal(1, calls["c"])
}

func TestMemoizeOptsValidate(t *testing.T) {
	req := require.New(t)

	req.Panics(func() {
		MemoizeBy(func(s string) string { return s }, MemoizeOpts[string]{MaxEntries: -1})
	})
}
