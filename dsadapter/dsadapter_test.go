package dsadapter_test

import (
	"sort"
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/dsadapter"
	"go.llib.dev/datastruct/pkg/compare"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestStack(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *dsadapter.Stack[int] {
		return &dsadapter.Stack[int]{}
	})

	s.Test("pop order is last-in-first-out", func(t *testcase.T) {
		subject.Get(t).Push(10, 20, 30, 40, 50)
		for _, exp := range []int{50, 40, 30, 20, 10} {
			top, err := subject.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, exp, top)

			got, err := subject.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("pop and top report ErrEmpty on an empty stack", func(t *testcase.T) {
		_, err := subject.Get(t).Pop()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
		_, err = subject.Get(t).Top()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
	})

	s.Test("top does not remove", func(t *testcase.T) {
		subject.Get(t).Push(42)
		_, err := subject.Get(t).Top()
		assert.NoError(t, err)
		assert.Equal(t, 1, subject.Get(t).Len())
	})

	s.Test("iteration and ToSlice are in pop order", func(t *testcase.T) {
		subject.Get(t).Push(1, 2, 3)
		assert.Equal(t, []int{3, 2, 1}, subject.Get(t).ToSlice())
	})
}

func TestQueue(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *dsadapter.Queue[int] {
		return &dsadapter.Queue[int]{}
	})

	s.Test("pop order is first-in-first-out", func(t *testcase.T) {
		subject.Get(t).Push(10, 20, 30, 40, 50)
		for _, exp := range []int{10, 20, 30, 40, 50} {
			got, err := subject.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("first and last peek both ends without removal", func(t *testcase.T) {
		subject.Get(t).Push(1, 2, 3)

		first, err := subject.Get(t).First()
		assert.NoError(t, err)
		assert.Equal(t, 1, first)

		last, err := subject.Get(t).Last()
		assert.NoError(t, err)
		assert.Equal(t, 3, last)

		assert.Equal(t, 3, subject.Get(t).Len())
	})

	s.Test("pop, first and last report ErrEmpty on an empty queue", func(t *testcase.T) {
		_, err := subject.Get(t).Pop()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
		_, err = subject.Get(t).First()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
		_, err = subject.Get(t).Last()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
	})

	s.Test("iteration and ToSlice are in pop order", func(t *testcase.T) {
		subject.Get(t).Push(1, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, subject.Get(t).ToSlice())
	})
}

func TestPriorityQueue(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *dsadapter.PriorityQueue[int] {
		return &dsadapter.PriorityQueue[int]{}
	})

	s.Test("pop order is largest first regardless of the push order", func(t *testcase.T) {
		subject.Get(t).Push(30, 10, 50, 20, 40)
		for _, exp := range []int{50, 40, 30, 20, 10} {
			peek, err := subject.Get(t).Peek()
			assert.NoError(t, err)
			assert.Equal(t, exp, peek)

			got, err := subject.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("pop and peek report ErrEmpty on an empty queue", func(t *testcase.T) {
		_, err := subject.Get(t).Pop()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
		_, err = subject.Get(t).Peek()
		assert.ErrorIs(t, err, datastruct.ErrEmpty)
	})

	s.Test("a random workload drains in decreasing order", func(t *testcase.T) {
		exp := random.Slice(t.Random.IntBetween(10, 50), t.Random.Int)
		subject.Get(t).Push(exp...)
		sort.Sort(sort.Reverse(sort.IntSlice(exp)))
		var got []int
		for 0 < subject.Get(t).Len() {
			v, err := subject.Get(t).Pop()
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, exp, got)
	})
}

func TestNewPriorityQueueFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the natural ordering yields a min-first queue", func(t *testcase.T) {
		pq := dsadapter.NewPriorityQueueFunc[int](compare.Numbers[int])
		pq.Push(30, 10, 50, 20, 40)
		for _, exp := range []int{10, 20, 30, 40, 50} {
			got, err := pq.Pop()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("orders compound values by the injected comparison", func(t *testcase.T) {
		type job struct {
			Name     string
			Priority int
		}
		pq := dsadapter.NewPriorityQueueFunc[job](func(a, b job) int {
			return compare.Reverse(compare.Numbers[int])(a.Priority, b.Priority)
		})
		pq.Push(
			job{Name: "low", Priority: 1},
			job{Name: "high", Priority: 9},
			job{Name: "mid", Priority: 5},
		)
		got, err := pq.Pop()
		assert.NoError(t, err)
		assert.Equal(t, "high", got.Name)
		got, err = pq.Pop()
		assert.NoError(t, err)
		assert.Equal(t, "mid", got.Name)
	})
}
