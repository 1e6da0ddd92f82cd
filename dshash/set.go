package dshash

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/hashkit"
)

// Set is a hashed collection of unique values, built on the Map table.
//
// Use NewSet for comparable value types and NewSetFunc for injected hashing.
// Set is not safe for concurrent use.
type Set[K any] struct {
	m *Map[K, struct{}]
}

var _ datastruct.Containable[int] = (*Set[int])(nil)

// NewSet creates a Set for a comparable value type,
// hashing with a per-instance seeded hash function and comparing values with ==.
func NewSet[K comparable](opts ...Option) *Set[K] {
	return NewSetFunc[K](hashkit.New[K](), func(a, b K) bool { return a == b }, opts...)
}

// NewSetFunc creates a Set with an injected hash function and equality,
// allowing value types that are not comparable.
func NewSetFunc[K any](hash func(K) uint64, eq func(K, K) bool, opts ...Option) *Set[K] {
	return &Set[K]{m: NewMapFunc[K, struct{}](hash, eq, opts...)}
}

// Len returns the number of values in the set.
func (s *Set[K]) Len() int { return s.m.Len() }

// Add puts the values into the set; adding an already present value is a no-op.
func (s *Set[K]) Add(vs ...K) {
	for _, v := range vs {
		s.m.Set(v, struct{}{})
	}
}

// Contains reports whether the value is in the set.
func (s *Set[K]) Contains(v K) bool {
	_, ok := s.m.Lookup(v)
	return ok
}

// Delete removes the value from the set,
// and reports whether it was present.
func (s *Set[K]) Delete(v K) bool { return s.m.Delete(v) }

// Iter yields the values in unspecified order. The sequence is restartable.
func (s *Set[K]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

// ToSlice returns the values of the set, in unspecified order.
func (s *Set[K]) ToSlice() []K { return s.m.Keys() }
