package mapkit_test

import (
	"slices"
	"testing"

	"go.llib.dev/datastruct/pkg/mapkit"
	"go.llib.dev/testcase/assert"
)

func TestKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assert.ContainsExactly(t, []string{"a", "b", "c"}, mapkit.Keys(m))
	assert.Equal(t, []string{"a", "b", "c"}, mapkit.Keys(m, slices.Sort[[]string]))
}

func TestValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	assert.ContainsExactly(t, []int{1, 2}, mapkit.Values(m))
}

func TestClone(t *testing.T) {
	og := map[string]int{"a": 1}
	got := mapkit.Clone(og)
	assert.Equal(t, og, got)
	got["a"] = 42
	assert.Equal(t, 1, og["a"])
	assert.Nil(t, mapkit.Clone[string, int](nil))
}
