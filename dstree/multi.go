package dstree

import (
	"iter"

	"go.llib.dev/datastruct/pkg/compare"
	"golang.org/x/exp/constraints"
)

// MultiMap is an ordered key-value container where a key can hold multiple values.
// Values of equal keys keep their insertion order.
//
// The zero value is an empty MultiMap ready to use.
// MultiMap is not safe for concurrent use.
type MultiMap[K constraints.Ordered, V any] struct {
	om   omap[K, []V]
	size int
}

// Len returns the total number of values in the container, counting duplicates.
func (m *MultiMap[K, V]) Len() int { return m.size }

// KeyLen returns the number of distinct keys.
func (m *MultiMap[K, V]) KeyLen() int { return m.om.size }

// Add appends the value under the given key, after the values added earlier.
func (m *MultiMap[K, V]) Add(key K, val V) {
	if n, ok := m.om.lookup(compare.Ordered[K], key); ok {
		n.val = append(n.val, val)
	} else {
		m.om.set(compare.Ordered[K], key, []V{val})
	}
	m.size++
}

// Lookup returns the values stored under the given key, in insertion order.
func (m *MultiMap[K, V]) Lookup(key K) ([]V, bool) {
	n, ok := m.om.lookup(compare.Ordered[K], key)
	if !ok {
		return nil, false
	}
	vs := make([]V, len(n.val))
	copy(vs, n.val)
	return vs, true
}

// Delete removes every value stored under the given key,
// and reports whether there was any.
func (m *MultiMap[K, V]) Delete(key K) bool {
	n, ok := m.om.lookup(compare.Ordered[K], key)
	if !ok {
		return false
	}
	m.size -= len(n.val)
	return m.om.delete(compare.Ordered[K], key)
}

// Keys returns the distinct keys in increasing order.
func (m *MultiMap[K, V]) Keys() []K {
	ks := make([]K, 0, m.om.size)
	m.om.each(func(k K, _ []V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Iter yields every key-value pair in increasing key order,
// values of equal keys in their insertion order.
// The sequence is restartable.
func (m *MultiMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.om.each(func(k K, vs []V) bool {
			for _, v := range vs {
				if !yield(k, v) {
					return false
				}
			}
			return true
		})
	}
}

// IterFrom yields every key-value pair in increasing key order,
// starting at the lower bound of the given key.
func (m *MultiMap[K, V]) IterFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.om.eachFrom(compare.Ordered[K], key, func(k K, vs []V) bool {
			for _, v := range vs {
				if !yield(k, v) {
					return false
				}
			}
			return true
		})
	}
}

// MultiSet is an ordered collection where a value can occur more than once.
//
// The zero value is an empty MultiSet ready to use.
// MultiSet is not safe for concurrent use.
type MultiSet[K constraints.Ordered] struct {
	om   omap[K, int]
	size int
}

// Len returns the total number of values in the container, counting duplicates.
func (s *MultiSet[K]) Len() int { return s.size }

// Add puts the values into the set, increasing their occurrence count.
func (s *MultiSet[K]) Add(vs ...K) {
	for _, v := range vs {
		if n, ok := s.om.lookup(compare.Ordered[K], v); ok {
			n.val++
		} else {
			s.om.set(compare.Ordered[K], v, 1)
		}
		s.size++
	}
}

// Count returns how many times the value occurs in the set.
func (s *MultiSet[K]) Count(v K) int {
	n, ok := s.om.lookup(compare.Ordered[K], v)
	if !ok {
		return 0
	}
	return n.val
}

// Contains reports whether the value occurs in the set at least once.
func (s *MultiSet[K]) Contains(v K) bool {
	return 0 < s.Count(v)
}

// Remove removes a single occurrence of the value,
// and reports whether there was one.
func (s *MultiSet[K]) Remove(v K) bool {
	n, ok := s.om.lookup(compare.Ordered[K], v)
	if !ok {
		return false
	}
	s.size--
	if n.val == 1 {
		return s.om.delete(compare.Ordered[K], v)
	}
	n.val--
	return true
}

// Delete removes every occurrence of the value,
// and reports whether there was any.
func (s *MultiSet[K]) Delete(v K) bool {
	n, ok := s.om.lookup(compare.Ordered[K], v)
	if !ok {
		return false
	}
	s.size -= n.val
	return s.om.delete(compare.Ordered[K], v)
}

// Min returns the smallest value of the set.
func (s *MultiSet[K]) Min() (K, bool) { return keyOf(s.om.min()) }

// Max returns the largest value of the set.
func (s *MultiSet[K]) Max() (K, bool) { return keyOf(s.om.max()) }

// Iter yields the values in increasing order,
// repeating each value as many times as it occurs.
// The sequence is restartable.
func (s *MultiSet[K]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.om.each(func(k K, count int) bool {
			for i := 0; i < count; i++ {
				if !yield(k) {
					return false
				}
			}
			return true
		})
	}
}

// ToSlice returns the values in increasing order, duplicates included.
func (s *MultiSet[K]) ToSlice() []K {
	ks := make([]K, 0, s.size)
	for k := range s.Iter() {
		ks = append(ks, k)
	}
	return ks
}
