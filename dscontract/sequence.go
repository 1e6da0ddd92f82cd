package dscontract

import (
	"fmt"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/port/contract"
	"go.llib.dev/datastruct/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Sequence is the contract of the Sequence role interface:
// an ordered List with positional access, replacement, insertion and deletion.
func Sequence[T any, Subject datastruct.Sequence[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	OrderedList(mk, c).Spec(s)

	s.Describe("#Lookup", func(s *testcase.Spec) {
		s.Test("every element is addressable by its index", func(t *testcase.T) {
			var (
				subject      = mk(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
			)
			subject.Append(expected...)
			for i, exp := range expected {
				got, ok := subject.Lookup(i)
				assert.True(t, ok)
				assert.Equal(t, exp, got)
			}
		})

		s.Test("an out of range index reports not found", func(t *testcase.T) {
			subject := mk(t)
			_, ok := subject.Lookup(subject.Len())
			assert.False(t, ok)
		})
	})

	s.Describe("#At", func(s *testcase.Spec) {
		s.Test("reports ErrIndexOutOfBounds on an out of range index", func(t *testcase.T) {
			subject := mk(t)
			_, err := subject.At(subject.Len() + t.Random.IntB(0, 3))
			assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
		})

		s.Test("returns the addressed element on a valid index", func(t *testcase.T) {
			subject := mk(t)
			exp := c.makeElem(t)
			subject.Append(exp)
			got, err := subject.At(subject.Len() - 1)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		s.Test("replaces the addressed element, leaving the length unchanged", func(t *testcase.T) {
			var (
				subject      = mk(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
			)
			subject.Append(expected...)
			var (
				index = t.Random.IntB(0, len(expected)-1)
				elem  = c.makeElem(t)
			)
			assert.True(t, subject.Set(index, elem))
			assert.Equal(t, len(expected), subject.Len())
			got, ok := subject.Lookup(index)
			assert.True(t, ok)
			assert.Equal(t, elem, got)
		})

		s.Test("reports false out of range", func(t *testcase.T) {
			subject := mk(t)
			assert.False(t, subject.Set(subject.Len(), c.makeElem(t)))
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		s.Test("the inserted values take the given position, the tail shifts", func(t *testcase.T) {
			var (
				subject      = mk(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
			)
			subject.Append(expected...)
			var (
				index = t.Random.IntB(0, len(expected)-1)
				elem  = c.makeElem(t)
			)
			assert.True(t, subject.Insert(index, elem))
			assert.Equal(t, len(expected)+1, subject.Len())

			got, ok := subject.Lookup(index)
			assert.True(t, ok)
			assert.Equal(t, elem, got)

			shifted, ok := subject.Lookup(index + 1)
			assert.True(t, ok)
			assert.Equal(t, expected[index], shifted)
		})

		s.Test("inserting at the length of the container appends", func(t *testcase.T) {
			subject := mk(t)
			elem := c.makeElem(t)
			assert.True(t, subject.Insert(subject.Len(), elem))
			got, ok := subject.Lookup(subject.Len() - 1)
			assert.True(t, ok)
			assert.Equal(t, elem, got)
		})
	})

	s.Describe("#Delete", func(s *testcase.Spec) {
		s.Test("the tail shifts onto the removed position", func(t *testcase.T) {
			var (
				subject      = mk(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
			)
			subject.Append(expected...)
			index := t.Random.IntB(0, len(expected)-2)
			assert.True(t, subject.Delete(index))
			assert.Equal(t, len(expected)-1, subject.Len())
			got, ok := subject.Lookup(index)
			assert.True(t, ok)
			assert.Equal(t, expected[index+1], got)
		})

		s.Test("reports false out of range", func(t *testcase.T) {
			subject := mk(t)
			assert.False(t, subject.Delete(subject.Len()))
		})
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", typeNameOf[T]()))
}
