package dsadapter

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/dsdeque"
)

// Queue is a first-in-first-out adapter over a double-ended buffer.
//
// The zero value is an empty Queue ready to use.
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	vals dsdeque.Deque[T]
}

var _ datastruct.Sizer = (*Queue[any])(nil)

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.vals.Len() }

// Push places values at the back of the queue.
func (q *Queue[T]) Push(vs ...T) { q.vals.Append(vs...) }

// Pop removes and returns the front of the queue.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (q *Queue[T]) Pop() (T, error) { return q.vals.Shift() }

// First returns the front of the queue without removing it.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (q *Queue[T]) First() (T, error) { return q.vals.First() }

// Last returns the back of the queue without removing it.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (q *Queue[T]) Last() (T, error) { return q.vals.Last() }

// Iter yields the elements in pop order, from the front of the queue to the back.
// The sequence is restartable.
func (q *Queue[T]) Iter() iter.Seq[T] { return q.vals.Iter() }

// ToSlice returns the elements in pop order, from the front of the queue to the back.
func (q *Queue[T]) ToSlice() []T { return q.vals.ToSlice() }
