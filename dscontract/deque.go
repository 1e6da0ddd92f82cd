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

// Deque is the contract of the Deque role interface:
// an ordered List that supports insertion, removal and peeking at both ends.
func Deque[T any, Subject datastruct.Deque[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	OrderedList(mk, c).Spec(s)

	s.Describe("#Prepend", func(s *testcase.Spec) {
		s.Test("prepended values become the front, keeping their given order", func(t *testcase.T) {
			var (
				subject      = mk(t)
				appended []T = random.Slice(t.Random.IntBetween(1, 3), func() T { return c.makeElem(t) })
				prepended    = random.Slice(t.Random.IntBetween(1, 3), func() T { return c.makeElem(t) })
			)
			subject.Append(appended...)
			subject.Prepend(prepended...)
			assert.Equal(t, append(append([]T{}, prepended...), appended...), subject.ToSlice())
		})
	})

	s.Describe("#Shift + #Pop", func(s *testcase.Spec) {
		s.Test("shift drains from the front, pop from the back", func(t *testcase.T) {
			var (
				subject      = mk(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
			)
			subject.Append(expected...)

			front, err := subject.Shift()
			assert.NoError(t, err)
			assert.Equal(t, expected[0], front)

			back, err := subject.Pop()
			assert.NoError(t, err)
			assert.Equal(t, expected[len(expected)-1], back)

			assert.Equal(t, expected[1:len(expected)-1], subject.ToSlice())
		})

		s.Test("both report ErrEmpty on an empty container", func(t *testcase.T) {
			subject := mk(t)
			_, err := subject.Shift()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			_, err = subject.Pop()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
		})
	})

	s.Describe("#First + #Last", func(s *testcase.Spec) {
		s.Test("peeks both ends without removal", func(t *testcase.T) {
			var (
				subject      = mk(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
			)
			subject.Append(expected...)

			first, err := subject.First()
			assert.NoError(t, err)
			assert.Equal(t, expected[0], first)

			last, err := subject.Last()
			assert.NoError(t, err)
			assert.Equal(t, expected[len(expected)-1], last)

			assert.Equal(t, len(expected), subject.Len())
		})

		s.Test("both report ErrEmpty on an empty container", func(t *testcase.T) {
			subject := mk(t)
			_, err := subject.First()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
			_, err = subject.Last()
			assert.ErrorIs(t, err, datastruct.ErrEmpty)
		})
	})

	return s.AsSuite(fmt.Sprintf("Deque[%s]", typeNameOf[T]()))
}
