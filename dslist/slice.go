// Package dslist contains the sequence containers:
// Slice, a contiguous growable buffer,
// and LinkedList, a doubly linked node chain.
package dslist

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/slicekit"
	"go.llib.dev/datastruct/pkg/zerokit"
	"go.llib.dev/datastruct/port/option"
)

// Slice is a dynamic array: a contiguous growable buffer with amortised O(1) Append.
//
// When an Append would exceed the current capacity,
// the buffer is reallocated with its capacity multiplied by the configured growth factor,
// and every element is relocated.
// Any reallocation, Insert, Delete or Pop bumps the generation of the container,
// which invalidates every outstanding cursor (see Cursor).
// A non-growing Append leaves existing cursors intact.
//
// The zero value is an empty Slice ready to use.
// Slice is not safe for concurrent use.
type Slice[T any] struct {
	vals    []T
	conf    SliceConfig
	version uint64
}

var _ datastruct.Sequence[any] = (*Slice[any])(nil)

// NewSlice creates a Slice configured by the given options.
func NewSlice[T any](opts ...SliceOption) *Slice[T] {
	s := &Slice[T]{conf: option.ToConfig(opts)}
	if 0 < s.conf.InitialCapacity {
		s.vals = make([]T, 0, s.conf.InitialCapacity)
	}
	return s
}

type SliceOption = option.Option[SliceConfig]

type SliceConfig struct {
	// InitialCapacity pre-sizes the storage without changing the length.
	InitialCapacity int
	// GrowthFactor is the multiplier applied to the capacity on reallocation.
	// Values below the minimum of 1.5 are clamped to it.
	GrowthFactor float64
}

func (c SliceConfig) Configure(o *SliceConfig) {
	o.InitialCapacity = zerokit.Coalesce(c.InitialCapacity, o.InitialCapacity)
	o.GrowthFactor = zerokit.Coalesce(c.GrowthFactor, o.GrowthFactor)
}

const (
	defaultGrowthFactor = 2.0
	minGrowthFactor     = 1.5
)

func (c SliceConfig) growthFactor() float64 {
	f := zerokit.Coalesce(c.GrowthFactor, defaultGrowthFactor)
	if f < minGrowthFactor {
		f = minGrowthFactor
	}
	return f
}

// InitialCapacity pre-sizes the storage of the container.
func InitialCapacity(n int) SliceOption {
	return option.Func[SliceConfig](func(c *SliceConfig) {
		c.InitialCapacity = n
	})
}

// GrowthFactor sets the capacity multiplier used on reallocation.
func GrowthFactor(f float64) SliceOption {
	return option.Func[SliceConfig](func(c *SliceConfig) {
		c.GrowthFactor = f
	})
}

// Len returns the number of elements in the slice.
func (s *Slice[T]) Len() int {
	return len(s.vals)
}

// Cap returns the number of allocated element slots.
// Capacity only grows, an Append or Pop never shrinks it.
func (s *Slice[T]) Cap() int {
	return cap(s.vals)
}

// Append adds values to the end of the slice, growing the storage when needed.
func (s *Slice[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	s.ensure(len(s.vals) + len(vs))
	s.vals = append(s.vals, vs...)
}

// Pop removes and returns the last element.
// It fails with datastruct.ErrEmpty when the slice has no elements.
func (s *Slice[T]) Pop() (T, error) {
	if len(s.vals) == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	n := len(s.vals) - 1
	v := s.vals[n]
	var zero T
	s.vals[n] = zero // release the value for the GC
	s.vals = s.vals[:n]
	s.version++
	return v, nil
}

// Lookup returns the element at the given index.
// Negative indexes address the slice from its end.
func (s *Slice[T]) Lookup(index int) (T, bool) {
	index, ok := slicekit.ResolveIndex(len(s.vals), index)
	if !ok {
		var zero T
		return zero, false
	}
	return s.vals[index], true
}

// At is the checked variant of Lookup,
// failing with datastruct.ErrIndexOutOfBounds on an out of range index.
func (s *Slice[T]) At(index int) (T, error) {
	v, ok := s.Lookup(index)
	if !ok {
		var zero T
		return zero, datastruct.ErrIndexOutOfBounds.F("index: %d, length: %d", index, len(s.vals))
	}
	return v, nil
}

// Set replaces the element at the given index.
// Replacing a value does not invalidate cursors.
func (s *Slice[T]) Set(index int, val T) bool {
	index, ok := slicekit.ResolveIndex(len(s.vals), index)
	if !ok {
		return false
	}
	s.vals[index] = val
	return true
}

// Insert injects values at the given index, shifting the tail of the slice to the right.
// Inserting at Len() is equivalent to Append.
// A successful Insert invalidates every outstanding cursor.
func (s *Slice[T]) Insert(index int, vs ...T) bool {
	if len(vs) == 0 {
		return true
	}
	if index != len(s.vals) {
		var ok bool
		index, ok = slicekit.ResolveIndex(len(s.vals), index)
		if !ok {
			return false
		}
	}
	s.ensure(len(s.vals) + len(vs))
	var zero T
	for range vs {
		s.vals = append(s.vals, zero)
	}
	copy(s.vals[index+len(vs):], s.vals[index:])
	copy(s.vals[index:], vs)
	s.version++
	return true
}

// Delete removes the element at the given index, shifting the tail of the slice to the left.
// A successful Delete invalidates every outstanding cursor.
func (s *Slice[T]) Delete(index int) bool {
	index, ok := slicekit.ResolveIndex(len(s.vals), index)
	if !ok {
		return false
	}
	copy(s.vals[index:], s.vals[index+1:])
	n := len(s.vals) - 1
	var zero T
	s.vals[n] = zero
	s.vals = s.vals[:n]
	s.version++
	return true
}

// Reserve grows the capacity to hold at least n elements without changing the length.
// When it has to reallocate, outstanding cursors are invalidated.
func (s *Slice[T]) Reserve(n int) {
	s.ensure(n)
}

// ToSlice returns the content as a built-in slice, detached from the container.
func (s *Slice[T]) ToSlice() []T {
	return slicekit.Clone(s.vals)
}

// Iter iterates the slice from the first element to the last.
// The sequence is restartable; mutating the slice during iteration is a contract violation,
// use Cursor for checked iteration.
func (s *Slice[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.vals {
			if !yield(v) {
				return
			}
		}
	}
}

// ensure guarantees capacity for at least n elements,
// reallocating with the configured growth factor when needed.
func (s *Slice[T]) ensure(n int) {
	if n <= cap(s.vals) {
		return
	}
	newCap := cap(s.vals)
	if newCap == 0 {
		newCap = zerokit.Coalesce(s.conf.InitialCapacity, 4)
	}
	factor := s.conf.growthFactor()
	for newCap < n {
		grown := int(float64(newCap) * factor)
		if grown <= newCap {
			grown = newCap + 1
		}
		newCap = grown
	}
	next := make([]T, len(s.vals), newCap)
	copy(next, s.vals)
	s.vals = next
	s.version++ // relocation invalidates every element reference
}

// Cursor returns a cursor positioned before the first element.
//
//	for c := s.Cursor(); c.Next(); {
//	    v, err := c.Value()
//	    ...
//	}
//	if err := c.Err(); err != nil { ... }
//
// The cursor observes the generation of the container:
// after an invalidating mutation, Next reports false
// and both Err and Value fail with datastruct.ErrInvalidCursor,
// instead of silently yielding stale values.
func (s *Slice[T]) Cursor() *SliceCursor[T] {
	return &SliceCursor[T]{src: s, version: s.version, index: -1}
}

// SliceCursor is a generation-checked cursor over a Slice.
type SliceCursor[T any] struct {
	src     *Slice[T]
	version uint64
	index   int
	err     error
}

// Next advances the cursor to the next element.
func (c *SliceCursor[T]) Next() bool {
	if !c.valid() {
		return false
	}
	if len(c.src.vals) <= c.index+1 {
		return false
	}
	c.index++
	return true
}

// Value returns the element under the cursor.
func (c *SliceCursor[T]) Value() (T, error) {
	var zero T
	if !c.valid() {
		return zero, c.err
	}
	if c.index < 0 || len(c.src.vals) <= c.index {
		return zero, datastruct.ErrIndexOutOfBounds.F("cursor index: %d, length: %d", c.index, len(c.src.vals))
	}
	return c.src.vals[c.index], nil
}

// Index returns the current position of the cursor.
func (c *SliceCursor[T]) Index() int { return c.index }

// Err returns the cursor failure, if there is one.
func (c *SliceCursor[T]) Err() error { return c.err }

func (c *SliceCursor[T]) valid() bool {
	if c.err != nil {
		return false
	}
	if c.version != c.src.version {
		c.err = datastruct.ErrInvalidCursor
		return false
	}
	return true
}
