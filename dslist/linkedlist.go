package dslist

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/slicekit"
)

// LinkedList is a doubly linked node chain.
//
// Both ends support O(1) insertion and removal,
// and a held *Elem handle supports O(1) InsertBefore, InsertAfter and Erase.
// There is no positional At operation on purpose:
// index based access on a linked list is a linear scan,
// which Lookup provides and documents as O(n).
//
// The zero value is an empty list ready to use.
// LinkedList is not safe for concurrent use.
type LinkedList[T any] struct {
	head   *Elem[T]
	tail   *Elem[T]
	length int
}

var _ datastruct.List[any] = (*LinkedList[any])(nil)

// Elem is an element handle of a LinkedList.
// It stays valid until the element it refers to is erased;
// list operations taking an Elem verify that the handle
// belongs to the receiver list and is still live,
// and fail with datastruct.ErrInvalidCursor otherwise.
type Elem[T any] struct {
	list *LinkedList[T]
	data T
	prev *Elem[T]
	next *Elem[T]
}

// Value returns the value stored in the element.
func (e *Elem[T]) Value() T { return e.data }

// Next returns the next element of the list, or nil at the back.
// It fails with datastruct.ErrInvalidCursor on an erased handle.
func (e *Elem[T]) Next() (*Elem[T], error) {
	if e.list == nil {
		return nil, datastruct.ErrInvalidCursor
	}
	return e.next, nil
}

// Prev returns the previous element of the list, or nil at the front.
// It fails with datastruct.ErrInvalidCursor on an erased handle.
func (e *Elem[T]) Prev() (*Elem[T], error) {
	if e.list == nil {
		return nil, datastruct.ErrInvalidCursor
	}
	return e.prev, nil
}

// Len returns the number of elements in the list.
func (ll *LinkedList[T]) Len() int {
	return ll.length
}

// Append adds elements to the end of the list.
func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) *Elem[T] {
	newNode := &Elem[T]{list: ll, data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		newNode.prev = prevTail
		ll.tail = newNode
	}
	ll.length++
	return newNode
}

// Prepend adds elements to the beginning of the list.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) *Elem[T] {
	var (
		prevHead = ll.head
		newHead  = &Elem[T]{
			list: ll,
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
	return newHead
}

// Shift removes and returns the first element of the list.
// It fails with datastruct.ErrEmpty on an empty list.
func (ll *LinkedList[T]) Shift() (T, error) {
	if ll.head == nil {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	first := ll.head
	ll.unlink(first)
	return first.data, nil
}

// Pop removes and returns the last element of the list.
// It fails with datastruct.ErrEmpty on an empty list.
func (ll *LinkedList[T]) Pop() (T, error) {
	if ll.tail == nil {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	last := ll.tail
	ll.unlink(last)
	return last.data, nil
}

// Front returns the handle of the first element, or nil on an empty list.
func (ll *LinkedList[T]) Front() *Elem[T] { return ll.head }

// Back returns the handle of the last element, or nil on an empty list.
func (ll *LinkedList[T]) Back() *Elem[T] { return ll.tail }

// InsertBefore injects a new element before the given handle, in O(1) time.
func (ll *LinkedList[T]) InsertBefore(e *Elem[T], v T) (*Elem[T], error) {
	if err := ll.check(e); err != nil {
		return nil, err
	}
	if e.prev == nil {
		return ll.prepend(v), nil
	}
	newNode := &Elem[T]{list: ll, data: v, prev: e.prev, next: e}
	e.prev.next = newNode
	e.prev = newNode
	ll.length++
	return newNode, nil
}

// InsertAfter injects a new element after the given handle, in O(1) time.
func (ll *LinkedList[T]) InsertAfter(e *Elem[T], v T) (*Elem[T], error) {
	if err := ll.check(e); err != nil {
		return nil, err
	}
	if e.next == nil {
		return ll.append(v), nil
	}
	newNode := &Elem[T]{list: ll, data: v, prev: e, next: e.next}
	e.next.prev = newNode
	e.next = newNode
	ll.length++
	return newNode, nil
}

// Erase removes the element of the given handle from the list, in O(1) time.
// The handle becomes invalid; handles of other elements stay valid.
func (ll *LinkedList[T]) Erase(e *Elem[T]) error {
	if err := ll.check(e); err != nil {
		return err
	}
	ll.unlink(e)
	return nil
}

func (ll *LinkedList[T]) check(e *Elem[T]) error {
	if e == nil || e.list != ll {
		return datastruct.ErrInvalidCursor
	}
	return nil
}

func (ll *LinkedList[T]) unlink(e *Elem[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		ll.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		ll.tail = e.prev
	}
	e.list = nil
	e.prev = nil
	e.next = nil
	ll.length--
}

// Find returns a lazy sequence of the element handles matching the predicate.
// The sequence is single-pass and finite;
// restarting the scan requires calling Find again.
func (ll *LinkedList[T]) Find(pred func(T) bool) iter.Seq[*Elem[T]] {
	return func(yield func(*Elem[T]) bool) {
		for current := ll.head; current != nil; current = current.next {
			if !pred(current.data) {
				continue
			}
			if !yield(current) {
				return
			}
		}
	}
}

// Lookup returns the value at the given index by walking the chain.
// This is an O(n) operation; prefer holding Elem handles for repeated access.
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	index, ok := slicekit.ResolveIndex(ll.length, index)
	if !ok {
		var zero T
		return zero, false
	}
	current := ll.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current.data, true
}

// Iter iterates the list from the front to the back.
func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

// ToSlice returns the content of the list as a slice.
func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}
