// Package datastruct contains the common role interfaces of generic in-memory containers,
// and the error values shared by their implementations.
//
// The concrete containers live in the sub-packages:
//   - dslist: dynamic array (Slice) and doubly linked list (LinkedList)
//   - dsdeque: block-based double-ended buffer (Deque)
//   - dstree: ordered map/set variants backed by a balanced search tree
//   - dshash: hashed map/set variants backed by an open hashing table
//   - dsadapter: Stack, Queue and PriorityQueue adapters
//
// Every container is single-threaded by contract.
// None of the operations block, and none of them perform I/O.
// Concurrent mutation of a shared container instance is a caller-side
// synchronisation responsibility.
package datastruct

import "iter"

// List is the most basic container role: an appendable, iterable collection.
type List[T any] interface {
	Appendable[T]
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

// Sequence is a List whose elements are addressable by position.
type Sequence[T any] interface {
	List[T]
	// Lookup returns the value at the given index.
	Lookup(index int) (T, bool)
	// At is the checked variant of Lookup,
	// it fails with ErrIndexOutOfBounds when the index points outside of the sequence.
	At(index int) (T, error)
	// Set replaces the value at the given index.
	Set(index int, val T) bool
	// Insert injects values at the given index, shifting the rest of the sequence.
	Insert(index int, vs ...T) bool
	// Delete removes the value at the given index, shifting the rest of the sequence.
	Delete(index int) bool
}

// Deque is a List that supports constant time access at both of its ends.
type Deque[T any] interface {
	List[T]
	Prepend(vs ...T)
	// Shift removes and returns the first value.
	// It fails with ErrEmpty when the deque has no values.
	Shift() (T, error)
	// Pop removes and returns the last value.
	// It fails with ErrEmpty when the deque has no values.
	Pop() (T, error)
	First() (T, error)
	Last() (T, error)
}

// KVS stands for Key Value Store, and a common interface for map[K]V like types.
type KVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V)
	Delete(key K) bool
	Keys() []K
	ToMap() map[K]V
	Iter() iter.Seq2[K, V]
	Sizer
}

type Sizer interface {
	Len() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Containable[T any] interface {
	Contains(element T) bool
}
