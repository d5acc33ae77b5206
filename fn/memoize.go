package fn

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/eapache/queue"
)

// MemoizeOpts configures MemoizeBy.
type MemoizeOpts[A any] struct {
	// Key derives the cache key of an argument. By default the argument is
	// encoded as JSON, falling back to its %#v rendering when it cannot be encoded.
	Key func(A) string
	// MaxEntries bounds the cache. When it is exceeded the oldest entry is
	// evicted. Zero means unbounded.
	MaxEntries int
}

func (o MemoizeOpts[A]) validate() {
	if o.MaxEntries < 0 {
		log.Panicf("memoize max entries must be 0 or greater, got %d", o.MaxEntries)
	}
}

// Memoize caches the results of f by argument in an unbounded cache. It is
// safe for concurrent use; f may run more than once for the same argument when
// first calls race.
func Memoize[K comparable, R any](f func(K) R) func(K) R {
	c := newCache[K, R](0)
	return func(k K) R {
		return c.getOrCompute(k, func() R { return f(k) })
	}
}

// MemoizeBy caches the results of f under the key derived by opts.Key.
func MemoizeBy[A any, R any](f func(A) R, opts MemoizeOpts[A]) func(A) R {
	opts.validate()

	key := opts.Key
	if key == nil {
		key = structuralKey[A]
	}

	c := newCache[string, R](opts.MaxEntries)
	return func(a A) R {
		return c.getOrCompute(key(a), func() R { return f(a) })
	}
}

func structuralKey[A any](a A) string {
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Sprintf("%#v", a)
	}
	return string(b)
}

type cache[K comparable, R any] struct {
	m          sync.Mutex
	entries    map[K]R
	order      *queue.Queue
	maxEntries int
}

func newCache[K comparable, R any](maxEntries int) *cache[K, R] {
	return &cache[K, R]{
		entries:    make(map[K]R),
		order:      queue.New(),
		maxEntries: maxEntries,
	}
}

func (c *cache[K, R]) getOrCompute(k K, compute func() R) R {
	c.m.Lock()
	if r, ok := c.entries[k]; ok {
		c.m.Unlock()
		return r
	}
	c.m.Unlock()

	r := compute()

	c.m.Lock()
	defer c.m.Unlock()
	if existing, ok := c.entries[k]; ok {
		return existing
	}
	c.entries[k] = r
	if c.maxEntries > 0 {
		c.order.Add(k)
		for c.order.Length() > c.maxEntries {
			delete(c.entries, c.order.Remove().(K))
		}
	}
	return r
}
