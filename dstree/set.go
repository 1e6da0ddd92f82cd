package dstree

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/compare"
	"golang.org/x/exp/constraints"
)

// Set is an ordered collection of unique values,
// sorted by the natural ordering of the value type.
//
// The zero value is an empty Set ready to use.
// Set is not safe for concurrent use.
type Set[K constraints.Ordered] struct {
	om omap[K, struct{}]
}

var _ datastruct.Containable[int] = (*Set[int])(nil)

// NewSetFromSorted builds a Set in O(n) time from values
// already in strictly increasing order.
// It fails with ErrUnsorted when the input is out of order or contains duplicates.
func NewSetFromSorted[K constraints.Ordered](ks []K) (*Set[K], error) {
	root, err := fromSorted(compare.Ordered[K], ks, make([]struct{}, len(ks)))
	if err != nil {
		return nil, err
	}
	return &Set[K]{om: omap[K, struct{}]{root: root, size: len(ks)}}, nil
}

// Len returns the number of values in the set.
func (s *Set[K]) Len() int { return s.om.size }

// Add puts the value into the set; adding an already present value is a no-op.
func (s *Set[K]) Add(vs ...K) {
	for _, v := range vs {
		s.om.set(compare.Ordered[K], v, struct{}{})
	}
}

// Contains reports whether the value is in the set.
func (s *Set[K]) Contains(v K) bool {
	_, ok := s.om.lookup(compare.Ordered[K], v)
	return ok
}

// Delete removes the value from the set,
// and reports whether it was present.
func (s *Set[K]) Delete(v K) bool { return s.om.delete(compare.Ordered[K], v) }

// Min returns the smallest value of the set.
func (s *Set[K]) Min() (K, bool) { return keyOf(s.om.min()) }

// Max returns the largest value of the set.
func (s *Set[K]) Max() (K, bool) { return keyOf(s.om.max()) }

// LowerBound returns the smallest value that is not below the given value,
// in O(log n) time.
func (s *Set[K]) LowerBound(v K) (K, bool) {
	return keyOf(s.om.lowerBound(compare.Ordered[K], v))
}

// UpperBound returns the smallest value above the given value,
// in O(log n) time.
func (s *Set[K]) UpperBound(v K) (K, bool) {
	return keyOf(s.om.upperBound(compare.Ordered[K], v))
}

// Iter yields the values in increasing order. The sequence is restartable.
func (s *Set[K]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.om.each(func(k K, _ struct{}) bool { return yield(k) })
	}
}

// IterFrom yields the values in increasing order,
// starting at the lower bound of the given value.
func (s *Set[K]) IterFrom(v K) iter.Seq[K] {
	return func(yield func(K) bool) {
		s.om.eachFrom(compare.Ordered[K], v, func(k K, _ struct{}) bool { return yield(k) })
	}
}

// ToSlice returns the values in increasing order.
func (s *Set[K]) ToSlice() []K {
	ks := make([]K, 0, s.om.size)
	for k := range s.Iter() {
		ks = append(ks, k)
	}
	return ks
}

func keyOf[K, V any](n *node[K, V]) (K, bool) {
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

// SetFunc is an ordered collection of unique values,
// sorted by an injected comparison function.
type SetFunc[K any] struct {
	om  omap[K, struct{}]
	cmp compare.Func[K]
}

// NewSetFunc creates a SetFunc ordered by the given comparison function.
func NewSetFunc[K any](cmp compare.Func[K]) *SetFunc[K] {
	return &SetFunc[K]{cmp: cmp}
}

// Len returns the number of values in the set.
func (s *SetFunc[K]) Len() int { return s.om.size }

// Add puts the value into the set; adding an already present value is a no-op.
func (s *SetFunc[K]) Add(vs ...K) {
	for _, v := range vs {
		s.om.set(s.cmp, v, struct{}{})
	}
}

// Contains reports whether the value is in the set.
func (s *SetFunc[K]) Contains(v K) bool {
	_, ok := s.om.lookup(s.cmp, v)
	return ok
}

// Delete removes the value from the set,
// and reports whether it was present.
func (s *SetFunc[K]) Delete(v K) bool { return s.om.delete(s.cmp, v) }

// Min returns the smallest value of the set.
func (s *SetFunc[K]) Min() (K, bool) { return keyOf(s.om.min()) }

// Max returns the largest value of the set.
func (s *SetFunc[K]) Max() (K, bool) { return keyOf(s.om.max()) }

// LowerBound returns the smallest value that is not below the given value.
func (s *SetFunc[K]) LowerBound(v K) (K, bool) {
	return keyOf(s.om.lowerBound(s.cmp, v))
}

// UpperBound returns the smallest value above the given value.
func (s *SetFunc[K]) UpperBound(v K) (K, bool) {
	return keyOf(s.om.upperBound(s.cmp, v))
}

// Iter yields the values in increasing order. The sequence is restartable.
func (s *SetFunc[K]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.om.each(func(k K, _ struct{}) bool { return yield(k) })
	}
}

// IterFrom yields the values in increasing order,
// starting at the lower bound of the given value.
func (s *SetFunc[K]) IterFrom(v K) iter.Seq[K] {
	return func(yield func(K) bool) {
		s.om.eachFrom(s.cmp, v, func(k K, _ struct{}) bool { return yield(k) })
	}
}

// ToSlice returns the values in increasing order.
func (s *SetFunc[K]) ToSlice() []K {
	ks := make([]K, 0, s.om.size)
	for k := range s.Iter() {
		ks = append(ks, k)
	}
	return ks
}
