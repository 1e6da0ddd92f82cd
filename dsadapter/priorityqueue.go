package dsadapter

import (
	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/compare"
	"golang.org/x/exp/constraints"
)

// PriorityQueue is a binary heap adapter over a contiguous buffer,
// yielding the largest value first by the natural ordering of the value type.
// The pop order among equal values is unspecified.
//
// Push runs in O(log n), Pop in O(log n) and Peek in O(1) time.
//
// The zero value is an empty PriorityQueue ready to use.
// PriorityQueue is not safe for concurrent use.
type PriorityQueue[T constraints.Ordered] struct {
	h heap[T]
}

var _ datastruct.Sizer = (*PriorityQueue[int])(nil)

// Len returns the number of elements in the queue.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h.vals) }

// Push places values into the queue.
func (pq *PriorityQueue[T]) Push(vs ...T) {
	for _, v := range vs {
		pq.h.push(compare.Reverse(compare.Ordered[T]), v)
	}
}

// Pop removes and returns the largest value of the queue.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (pq *PriorityQueue[T]) Pop() (T, error) {
	return pq.h.pop(compare.Reverse(compare.Ordered[T]))
}

// Peek returns the largest value of the queue without removing it.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (pq *PriorityQueue[T]) Peek() (T, error) { return pq.h.peek() }

// PriorityQueueFunc is a binary heap adapter ordered by an injected comparison function,
// yielding the value that sorts first.
// Use compare.Reverse to turn a natural ordering into a min-first queue.
type PriorityQueueFunc[T any] struct {
	h   heap[T]
	cmp compare.Func[T]
}

// NewPriorityQueueFunc creates a PriorityQueueFunc
// that pops the value sorting first by the given comparison.
func NewPriorityQueueFunc[T any](cmp compare.Func[T]) *PriorityQueueFunc[T] {
	return &PriorityQueueFunc[T]{cmp: cmp}
}

// Len returns the number of elements in the queue.
func (pq *PriorityQueueFunc[T]) Len() int { return len(pq.h.vals) }

// Push places values into the queue.
func (pq *PriorityQueueFunc[T]) Push(vs ...T) {
	for _, v := range vs {
		pq.h.push(pq.cmp, v)
	}
}

// Pop removes and returns the value sorting first.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (pq *PriorityQueueFunc[T]) Pop() (T, error) { return pq.h.pop(pq.cmp) }

// Peek returns the value sorting first without removing it.
// It fails with datastruct.ErrEmpty when the queue has no elements.
func (pq *PriorityQueueFunc[T]) Peek() (T, error) { return pq.h.peek() }

// heap is a binary min-heap by the given comparison,
// rooted at index zero over a contiguous slice.
type heap[T any] struct {
	vals []T
}

func (h *heap[T]) push(cmp compare.Func[T], v T) {
	h.vals = append(h.vals, v)
	h.siftUp(cmp, len(h.vals)-1)
}

func (h *heap[T]) pop(cmp compare.Func[T]) (T, error) {
	if len(h.vals) == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	top := h.vals[0]
	last := len(h.vals) - 1
	h.vals[0] = h.vals[last]
	var zero T
	h.vals[last] = zero
	h.vals = h.vals[:last]
	if 0 < len(h.vals) {
		h.siftDown(cmp, 0)
	}
	return top, nil
}

func (h *heap[T]) peek() (T, error) {
	if len(h.vals) == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	return h.vals[0], nil
}

func (h *heap[T]) siftUp(cmp compare.Func[T], i int) {
	for 0 < i {
		parent := (i - 1) / 2
		if !compare.IsLess(cmp(h.vals[i], h.vals[parent])) {
			return
		}
		h.vals[i], h.vals[parent] = h.vals[parent], h.vals[i]
		i = parent
	}
}

func (h *heap[T]) siftDown(cmp compare.Func[T], i int) {
	for {
		first := i
		if left := 2*i + 1; left < len(h.vals) && compare.IsLess(cmp(h.vals[left], h.vals[first])) {
			first = left
		}
		if right := 2*i + 2; right < len(h.vals) && compare.IsLess(cmp(h.vals[right], h.vals[first])) {
			first = right
		}
		if first == i {
			return
		}
		h.vals[i], h.vals[first] = h.vals[first], h.vals[i]
		i = first
	}
}
