// Package slicekit offers utility functions for common slice related scenarios.
package slicekit

import "iter"

// Must takes the result of a function that can fail,
// and panics on failure instead of returning the error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any](s []I, fn func(I) O) []O {
	if s == nil {
		return nil
	}
	out := make([]O, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Clone returns a shallow copy of the input slice.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Contains reports whether the slice contains the given element.
func Contains[T comparable](vs []T, v T) bool {
	for _, e := range vs {
		if e == v {
			return true
		}
	}
	return false
}

// IterReverse iterates the slice backwards, from the last index to the first.
func IterReverse[T any](vs []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(i, vs[i]) {
				return
			}
		}
	}
}

// ResolveIndex maps an index to the [0, length) range.
// Negative indexes address the slice from its end, python style,
// so -1 refers to the last element.
// The second return value reports whether the resolved index is within bounds.
func ResolveIndex(length, index int) (int, bool) {
	if index < 0 {
		index += length
	}
	return index, 0 <= index && index < length
}
