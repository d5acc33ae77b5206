package fn

import "github.com/samber/lo"

// Pair is a pair of values produced by Zip.
type Pair[A any, B any] = lo.Tuple2[A, B]

// GroupBy groups items by the key returned from key. Items keep their input
// order inside each group.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	return lo.GroupBy(items, key)
}

// Chunk splits items into slices of size elements. The last chunk may be
// shorter. It panics when size is not positive.
func Chunk[T any](items []T, size int) [][]T {
	return lo.Chunk(items, size)
}

// Zip pairs up the elements of a and b by index, stopping at the end of the
// shorter slice.
func Zip[A any, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	return lo.Zip2(a[:n], b[:n])
}
