package iterkit_test

import (
	"slices"
	"testing"

	"go.llib.dev/datastruct/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestCollect(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("collects in order", func(t *testcase.T) {
		exp := []int{1, 2, 3}
		assert.Equal(t, exp, iterkit.Collect(slices.Values(exp)))
	})

	s.Test("nil sequence yields nil slice", func(t *testcase.T) {
		assert.Nil(t, iterkit.Collect[int](nil))
	})

	s.Test("empty sequence yields nil slice", func(t *testcase.T) {
		assert.Nil(t, iterkit.Collect(iterkit.Empty[int]()))
	})
}

func TestCollectKV_andFromKV(t *testing.T) {
	kvs := []iterkit.KV[string, int]{{K: "a", V: 1}, {K: "b", V: 2}}
	got := iterkit.CollectKV(iterkit.FromKV(kvs))
	assert.Equal(t, kvs, got)
}

func TestCollect2Map(t *testing.T) {
	kvs := []iterkit.KV[string, int]{{K: "a", V: 1}, {K: "b", V: 2}}
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, iterkit.Collect2Map(iterkit.FromKV(kvs)))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, iterkit.Count(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, 0, iterkit.Count(iterkit.Empty[int]()))
}

func TestFirst(t *testing.T) {
	v, ok := iterkit.First(slices.Values([]int{42, 7}))
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = iterkit.First(iterkit.Empty[int]())
	assert.False(t, ok)
}
