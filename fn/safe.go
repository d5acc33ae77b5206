package fn

import (
	"encoding/json"

	"github.com/abevier/adt/option"
)

// SafeGet returns the element at index i, or None when i is out of range.
func SafeGet[T any](items []T, i int) option.Option[T] {
	if i < 0 || i >= len(items) {
		return option.None[T]()
	}
	return option.Some(items[i])
}

// SafeProp returns the value stored under key, or None when the key is absent.
func SafeProp[K comparable, V any](m map[K]V, key K) option.Option[V] {
	v, ok := m[key]
	return option.FromOk(v, ok)
}

// SafeJSONParse decodes data into a T, or returns None when data is not valid
// JSON for T.
func SafeJSONParse[T any](data []byte) option.Option[T] {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return option.None[T]()
	}
	return option.Some(v)
}
