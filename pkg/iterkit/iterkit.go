// Package iterkit contains helpers for the iter.Seq based iteration idiom.
package iterkit

import "iter"

// KV is a key-value pair, to express iter.Seq2 results as a single value.
type KV[K, V any] struct {
	K K
	V V
}

// Collect gathers every value of the sequence into a slice.
func Collect[T any](i iter.Seq[T]) []T {
	var vs []T
	if i == nil {
		return vs
	}
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectKV gathers every pair of the sequence into a KV slice, keeping the iteration order.
func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	var kvs []KV[K, V]
	if i == nil {
		return kvs
	}
	for k, v := range i {
		kvs = append(kvs, KV[K, V]{K: k, V: v})
	}
	return kvs
}

// Collect2Map gathers every pair of the sequence into a map.
func Collect2Map[K comparable, V any](i iter.Seq2[K, V]) map[K]V {
	var m map[K]V
	if i == nil {
		return m
	}
	m = make(map[K]V)
	for k, v := range i {
		m[k] = v
	}
	return m
}

// FromKV turns a KV slice back into an iter.Seq2 sequence.
func FromKV[K, V any](kvs []KV[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range kvs {
			if !yield(kv.K, kv.V) {
				return
			}
		}
	}
}

// Count consumes the sequence and returns the number of values it yielded.
func Count[T any](i iter.Seq[T]) int {
	var n int
	if i == nil {
		return n
	}
	for range i {
		n++
	}
	return n
}

// First returns the first value of the sequence, if there is one.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 returns a pair sequence that yields nothing.
func Empty2[K, V any]() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {}
}
