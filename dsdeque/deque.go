// Package dsdeque contains Deque, a block-based double-ended buffer.
package dsdeque

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/slicekit"
	"go.llib.dev/datastruct/pkg/zerokit"
	"go.llib.dev/datastruct/port/option"
)

const (
	blockBits = 5
	blockLen  = 1 << blockBits
	blockMask = blockLen - 1
)

type block[T any] [blockLen]T

// Deque is a double-ended buffer with amortised O(1) Prepend, Append, Shift and Pop,
// and O(1) positional Lookup.
//
// The storage is a map of fixed size blocks:
// growing at either end only reallocates the block map, never the blocks themselves,
// so an insertion at one end never moves elements at the other end.
//
// Cursor invalidation is asymmetric, mirroring the storage layout:
// front and middle mutations bump the generation of the container
// and invalidate every outstanding cursor,
// while back mutations leave the generation alone.
// A cursor is positional and re-reads its element on dereference,
// so after a Pop only cursors standing at the removed positions fail,
// and cursors to the remaining elements keep working.
//
// The zero value is an empty Deque ready to use.
// Deque is not safe for concurrent use.
type Deque[T any] struct {
	blocks  []*block[T]
	front   int // offset of the first element, 0 <= front < blockLen
	length  int
	version uint64
}

var (
	_ datastruct.Deque[any]    = (*Deque[any])(nil)
	_ datastruct.Sequence[any] = (*Deque[any])(nil)
)

// NewDeque creates a Deque configured by the given options.
func NewDeque[T any](opts ...DequeOption) *Deque[T] {
	d := &Deque[T]{}
	c := option.ToConfig(opts)
	if 0 < c.InitialCapacity {
		d.blocks = make([]*block[T], 0, (c.InitialCapacity+blockLen-1)/blockLen)
	}
	return d
}

type DequeOption = option.Option[DequeConfig]

type DequeConfig struct {
	// InitialCapacity pre-sizes the block map of the container.
	InitialCapacity int
}

func (c DequeConfig) Configure(o *DequeConfig) {
	o.InitialCapacity = zerokit.Coalesce(c.InitialCapacity, o.InitialCapacity)
}

// InitialCapacity pre-sizes the block map of the container.
func InitialCapacity(n int) DequeOption {
	return option.Func[DequeConfig](func(c *DequeConfig) {
		c.InitialCapacity = n
	})
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.length
}

// Append adds values to the back of the deque.
// It never invalidates cursors to existing elements.
func (d *Deque[T]) Append(vs ...T) {
	for _, v := range vs {
		d.pushBack(v)
	}
}

// Prepend adds values to the front of the deque,
// keeping their order, so the first given value becomes the first element.
// Prepend shifts every logical position and invalidates every outstanding cursor.
func (d *Deque[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		d.pushFront(v)
	}
	d.version++
}

// Pop removes and returns the last element.
// It fails with datastruct.ErrEmpty when the deque has no elements.
// Only cursors standing at the removed position are invalidated,
// cursors to the remaining elements stay usable.
func (d *Deque[T]) Pop() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	global := d.front + d.length - 1
	b := d.blocks[global>>blockBits]
	v := b[global&blockMask]
	var zero T
	b[global&blockMask] = zero
	d.length--
	d.trimBack()
	return v, nil
}

// Shift removes and returns the first element.
// It fails with datastruct.ErrEmpty when the deque has no elements.
// A successful Shift invalidates outstanding cursors.
func (d *Deque[T]) Shift() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	b := d.blocks[d.front>>blockBits]
	v := b[d.front&blockMask]
	var zero T
	b[d.front&blockMask] = zero
	d.front++
	d.length--
	d.version++
	if d.front == blockLen {
		// the first block ran empty, release it
		d.blocks[0] = nil
		d.blocks = d.blocks[1:]
		d.front = 0
	}
	return v, nil
}

// First returns the first element without removing it.
// It fails with datastruct.ErrEmpty when the deque has no elements.
func (d *Deque[T]) First() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	return d.At(0)
}

// Last returns the last element without removing it.
// It fails with datastruct.ErrEmpty when the deque has no elements.
func (d *Deque[T]) Last() (T, error) {
	if d.length == 0 {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	return d.At(d.length - 1)
}

// Lookup returns the element at the given index with block-index arithmetic, in O(1) time.
// Negative indexes address the deque from its end.
func (d *Deque[T]) Lookup(index int) (T, bool) {
	index, ok := slicekit.ResolveIndex(d.length, index)
	if !ok {
		var zero T
		return zero, false
	}
	return d.get(index), true
}

// At is the checked variant of Lookup.
// It fails with datastruct.ErrIndexOutOfBounds on an out of range index.
func (d *Deque[T]) At(index int) (T, error) {
	v, ok := d.Lookup(index)
	if !ok {
		var zero T
		return zero, datastruct.ErrIndexOutOfBounds.F("index: %d, length: %d", index, d.length)
	}
	return v, nil
}

// Set replaces the element at the given index.
// Replacing a value does not invalidate cursors.
func (d *Deque[T]) Set(index int, val T) bool {
	index, ok := slicekit.ResolveIndex(d.length, index)
	if !ok {
		return false
	}
	d.set(index, val)
	return true
}

// Insert injects values at the given index, shifting the tail of the deque backwards.
// Inserting at Len() is equivalent to Append.
// Insertion in the middle is an O(n) operation and invalidates every outstanding cursor.
func (d *Deque[T]) Insert(index int, vs ...T) bool {
	if len(vs) == 0 {
		return true
	}
	if index != d.length {
		var ok bool
		index, ok = slicekit.ResolveIndex(d.length, index)
		if !ok {
			return false
		}
	}
	// make room at the back, then move the tail out of the way
	var zero T
	for range vs {
		d.pushBack(zero)
	}
	for i := d.length - 1; index+len(vs) <= i; i-- {
		d.set(i, d.get(i-len(vs)))
	}
	for i, v := range vs {
		d.set(index+i, v)
	}
	d.version++
	return true
}

// Delete removes the element at the given index, shifting the tail of the deque forward.
// Deletion in the middle is an O(n) operation and invalidates every outstanding cursor.
func (d *Deque[T]) Delete(index int) bool {
	index, ok := slicekit.ResolveIndex(d.length, index)
	if !ok {
		return false
	}
	for i := index; i < d.length-1; i++ {
		d.set(i, d.get(i+1))
	}
	_, _ = d.Pop() // length is non-zero here
	d.version++
	return true
}

// ToSlice returns the content as a built-in slice, from the first element to the last.
func (d *Deque[T]) ToSlice() []T {
	vs := make([]T, 0, d.length)
	for i := 0; i < d.length; i++ {
		vs = append(vs, d.get(i))
	}
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// Iter iterates the deque from the first element to the last.
// The sequence is restartable; mutating the deque during iteration is a contract violation,
// use Cursor for checked iteration.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.length; i++ {
			if !yield(d.get(i)) {
				return
			}
		}
	}
}

func (d *Deque[T]) get(index int) T {
	global := d.front + index
	return d.blocks[global>>blockBits][global&blockMask]
}

func (d *Deque[T]) set(index int, v T) {
	global := d.front + index
	d.blocks[global>>blockBits][global&blockMask] = v
}

func (d *Deque[T]) pushBack(v T) {
	global := d.front + d.length
	for len(d.blocks) <= global>>blockBits {
		d.blocks = append(d.blocks, nil)
	}
	if d.blocks[global>>blockBits] == nil {
		d.blocks[global>>blockBits] = &block[T]{}
	}
	d.blocks[global>>blockBits][global&blockMask] = v
	d.length++
}

func (d *Deque[T]) pushFront(v T) {
	if d.front == 0 {
		// no room in the first block, grow the block map at the front;
		// the spare blocks amortise successive front insertions
		spare := len(d.blocks)
		if spare == 0 {
			spare = 1
		}
		next := make([]*block[T], spare, spare+len(d.blocks))
		next = append(next, d.blocks...)
		d.blocks = next
		d.front = spare * blockLen
	}
	d.front--
	if d.blocks[d.front>>blockBits] == nil {
		d.blocks[d.front>>blockBits] = &block[T]{}
	}
	d.blocks[d.front>>blockBits][d.front&blockMask] = v
	d.length++
}

// trimBack releases trailing blocks that no longer hold elements.
func (d *Deque[T]) trimBack() {
	end := d.front + d.length
	used := (end + blockLen - 1) >> blockBits
	for i := used; i < len(d.blocks); i++ {
		d.blocks[i] = nil
	}
	d.blocks = d.blocks[:used]
}

// Cursor returns a generation-checked cursor positioned before the first element.
// After an invalidating mutation, Next reports false
// and both Err and Value fail with datastruct.ErrInvalidCursor.
func (d *Deque[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{src: d, version: d.version, index: -1}
}

// Cursor is a generation-checked cursor over a Deque.
// The cursor is positional: Value re-reads the element at the current index,
// so back mutations leave it usable as long as its position still exists.
type Cursor[T any] struct {
	src     *Deque[T]
	version uint64
	index   int
	err     error
}

// Next advances the cursor to the next element.
func (c *Cursor[T]) Next() bool {
	if !c.valid() {
		return false
	}
	if c.src.length <= c.index+1 {
		return false
	}
	c.index++
	return true
}

// Value returns the element under the cursor.
// It fails with datastruct.ErrInvalidCursor when the position was removed from the back.
func (c *Cursor[T]) Value() (T, error) {
	var zero T
	if !c.valid() {
		return zero, c.err
	}
	if c.index < 0 {
		return zero, datastruct.ErrIndexOutOfBounds.F("cursor index: %d", c.index)
	}
	if c.src.length <= c.index {
		// the element under the cursor was popped from the back
		c.err = datastruct.ErrInvalidCursor
		return zero, c.err
	}
	return c.src.get(c.index), nil
}

// Index returns the current position of the cursor.
func (c *Cursor[T]) Index() int { return c.index }

// Err returns the cursor failure, if there is one.
func (c *Cursor[T]) Err() error { return c.err }

func (c *Cursor[T]) valid() bool {
	if c.err != nil {
		return false
	}
	if c.version != c.src.version {
		c.err = datastruct.ErrInvalidCursor
		return false
	}
	return true
}
