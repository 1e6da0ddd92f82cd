// Package dscontract contains the behavioural contracts of the container role interfaces.
//
// Every container implementation proves its conformance by running
// the contract of each role interface it implements.
package dscontract

import (
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/spechelper"
	"go.llib.dev/datastruct/pkg/iterkit"
	"go.llib.dev/datastruct/pkg/zerokit"
	"go.llib.dev/datastruct/port/contract"
	"go.llib.dev/datastruct/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

type SubjectLenAppendable[T any] interface {
	datastruct.Appendable[T]
	datastruct.Sizer
}

// LenAppendable is the contract of containers that can report their length and accept appended values.
func LenAppendable[T any, Subject SubjectLenAppendable[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("append affects length", func(t *testcase.T) {
		subject := mk(t)

		exp := 0
		assert.Equal(t, exp, subject.Len())

		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
			exp++
			assert.Equal(t, exp, subject.Len())
		})
	})

	s.Test("append many at once increase the length by the number of appended values", func(t *testcase.T) {
		var (
			subject      = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		baseLen := subject.Len()
		subject.Append(expected...)
		assert.Equal(t, len(expected)+baseLen, subject.Len())
	})

	return s.AsSuite(fmt.Sprintf("Sizer[%s] (appendable)", typeNameOf[T]()))
}

// List is the contract of the List role interface:
// appended values are retained and observable through iteration.
func List[T any, Subject datastruct.List[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			subject      = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)

		subject.Append()
		assert.Equal(t, 0, subject.Len())

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, subject.Len())
			subject.Append(v)
			expLen++
		}

		assert.ContainsExactly(t, expected, iterkit.Collect(subject.Iter()))
		assert.ContainsExactly(t, expected, subject.ToSlice())
	})

	s.Test("iteration is restartable", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
		})
		first := iterkit.Collect(subject.Iter())
		second := iterkit.Collect(subject.Iter())
		assert.Equal(t, first, second)
	})

	s.Test("iteration can be abandoned early", func(t *testcase.T) {
		subject := mk(t)
		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
		})
		var visited int
		for range subject.Iter() {
			visited++
			break
		}
		assert.Equal(t, 1, visited)
	})

	s.Context("implements LenAppendable",
		LenAppendable[T](func(tb testing.TB) SubjectLenAppendable[T] { return mk(tb) }, c).Spec)

	return s.AsSuite(fmt.Sprintf("List[%s]", typeNameOf[T]()))
}

// OrderedList is the contract of List implementations
// that retain the insertion order of their values.
func OrderedList[T any, Subject datastruct.List[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	List(mk, c).Spec(s)

	s.Test("ordered", func(t *testcase.T) {
		var (
			subject      = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) }, random.UniqueValues)
		)
		subject.Append(expected...)
		assert.Equal(t, expected, subject.ToSlice())
		assert.Equal(t, expected, iterkit.Collect(subject.Iter()))
	})

	return s.AsSuite(fmt.Sprintf("ordered List[%s]", typeNameOf[T]()))
}

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, spechelper.MakeValue[T])(tb)
}

func typeNameOf[T any]() string {
	var ptr *T
	return reflect.TypeOf(ptr).Elem().String()
}
