package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	v  int
	ok bool
}

func split(p pair) (int, bool) { return p.v, p.ok }

func TestAll(t *testing.T) {
	req := require.New(t)

	values, failed := All([]pair{{1, true}, {2, true}, {3, true}}, split)
	req.Equal(-1, failed)
	req.Equal([]int{1, 2, 3}, values)

	seen := 0
	values, failed = All([]pair{{1, true}, {2, false}, {3, true}}, func(p pair) (int, bool) {
		seen++
		return split(p)
	})
	req.Equal(1, failed)
	req.Nil(values)
	req.Equal(2, seen)

	values, failed = All([]pair{}, split)
	req.Equal(-1, failed)
	req.NotNil(values)
	req.Empty(values)
}

func TestKeepAndFirst(t *testing.T) {
	req := require.New(t)

	items := []pair{{1, false}, {2, true}, {3, false}, {4, true}}
	req.Equal([]int{2, 4}, Keep(items, split))

	v, ok := First(items, split)
	req.True(ok)
	req.Equal(2, v)

	_, ok = First([]pair{{1, false}}, split)
	req.False(ok)
}

func TestIsNil(t *testing.T) {
	req := require.New(t)

	var ptr *int
	var m map[string]int
	var s []int
	var fn func()
	var ch chan int
	var iface error

	req.True(IsNil(nil))
	req.True(IsNil(ptr))
	req.True(IsNil(m))
	req.True(IsNil(s))
	req.True(IsNil(fn))
	req.True(IsNil(ch))
	req.True(IsNil(iface))

	req.False(IsNil(0))
	req.False(IsNil(""))
	req.False(IsNil(false))
	req.False(IsNil([]int{}))
	req.False(IsNil(struct{}{}))
}
