// Package scan holds the iteration skeleton shared by the Result and Option
// combinators. Both types are two-variant unions, so combining a sequence of
// them reduces to walking (payload, ok) pairs.
package scan

import "reflect"

// All walks items left to right and collects every payload for which split
// reports ok. It stops at the first item that is not ok and returns its index;
// items after it are never passed to split. failed is -1 when every item was ok.
func All[In any, Out any](items []In, split func(In) (Out, bool)) (values []Out, failed int) {
	values = make([]Out, 0, len(items))
	for i, item := range items {
		v, ok := split(item)
		if !ok {
			return nil, i
		}
		values = append(values, v)
	}
	return values, -1
}

// Keep collects the payloads of every ok item and skips the rest. It never fails.
func Keep[In any, Out any](items []In, split func(In) (Out, bool)) []Out {
	values := make([]Out, 0, len(items))
	for _, item := range items {
		if v, ok := split(item); ok {
			values = append(values, v)
		}
	}
	return values
}

// First returns the payload of the first ok item.
func First[In any, Out any](items []In, split func(In) (Out, bool)) (Out, bool) {
	for _, item := range items {
		if v, ok := split(item); ok {
			return v, true
		}
	}
	return *new(Out), false
}

// IsNil reports whether v is nil or a nil value of a nillable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
