package slicekit_test

import (
	"strconv"
	"testing"

	"go.llib.dev/datastruct/pkg/slicekit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestMap(t *testing.T) {
	got := slicekit.Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
	assert.Nil(t, slicekit.Map[string, int](nil, strconv.Itoa))
}

func TestClone(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("clone is detached from the original", func(t *testcase.T) {
		og := []int{1, 2, 3}
		got := slicekit.Clone(og)
		assert.Equal(t, og, got)
		got[0] = 42
		assert.Equal(t, 1, og[0])
	})

	s.Test("nil input yields nil", func(t *testcase.T) {
		assert.Nil(t, slicekit.Clone[int](nil))
	})
}

func TestContains(t *testing.T) {
	assert.True(t, slicekit.Contains([]int{1, 2, 3}, 2))
	assert.False(t, slicekit.Contains([]int{1, 2, 3}, 42))
}

func TestIterReverse(t *testing.T) {
	var got []int
	for i, v := range slicekit.IterReverse([]string{"a", "b", "c"}) {
		_ = v
		got = append(got, i)
	}
	assert.Equal(t, []int{2, 1, 0}, got)
}

func TestResolveIndex(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("index within range is returned as is", func(t *testcase.T) {
		index, ok := slicekit.ResolveIndex(10, 3)
		assert.True(t, ok)
		assert.Equal(t, 3, index)
	})

	s.Test("negative index addresses from the end", func(t *testcase.T) {
		index, ok := slicekit.ResolveIndex(10, -1)
		assert.True(t, ok)
		assert.Equal(t, 9, index)
	})

	s.Test("out of bound index is reported", func(t *testcase.T) {
		_, ok := slicekit.ResolveIndex(10, 10)
		assert.False(t, ok)
		_, ok = slicekit.ResolveIndex(10, -11)
		assert.False(t, ok)
	})
}
