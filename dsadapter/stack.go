// Package dsadapter contains container adapters:
// Stack, Queue and PriorityQueue restrict an owned underlying container
// to a narrow access discipline.
package dsadapter

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/dslist"
)

// Stack is a last-in-first-out adapter over a contiguous buffer.
//
// The zero value is an empty Stack ready to use.
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	vals dslist.Slice[T]
}

var _ datastruct.Sizer = (*Stack[any])(nil)

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.vals.Len() }

// Push places values on top of the stack, the last given value topmost.
func (s *Stack[T]) Push(vs ...T) { s.vals.Append(vs...) }

// Pop removes and returns the top of the stack.
// It fails with datastruct.ErrEmpty when the stack has no elements.
func (s *Stack[T]) Pop() (T, error) { return s.vals.Pop() }

// Top returns the top of the stack without removing it.
// It fails with datastruct.ErrEmpty when the stack has no elements.
func (s *Stack[T]) Top() (T, error) {
	if s.vals.Len() == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	return s.vals.At(-1)
}

// Iter yields the elements in pop order, from the top of the stack downwards.
// The sequence is restartable.
func (s *Stack[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.vals.Len() - 1; 0 <= i; i-- {
			v, ok := s.vals.Lookup(i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the elements in pop order, from the top of the stack downwards.
func (s *Stack[T]) ToSlice() []T {
	var vs []T
	for v := range s.Iter() {
		vs = append(vs, v)
	}
	return vs
}
