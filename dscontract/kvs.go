package dscontract

import (
	"fmt"
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/spechelper"
	"go.llib.dev/datastruct/pkg/mapkit"
	"go.llib.dev/datastruct/pkg/zerokit"
	"go.llib.dev/datastruct/port/contract"
	"go.llib.dev/datastruct/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// KVS is the contract of the KVS role interface:
// a key-value store where a key maps to at most one value.
func KVS[K comparable, V any, Subject datastruct.KVS[K, V]](mk contract.Make[Subject], opts ...KVSOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			subject = mk(t)
			ref     = map[K]V{}
		)
		assert.Equal(t, 0, subject.Len())

		t.Random.Repeat(3, 7, func() {
			k, v := c.makeKey(t), c.makeValue(t)
			subject.Set(k, v)
			ref[k] = v
		})

		assert.Equal(t, len(ref), subject.Len())
		assert.Equal(t, ref, subject.ToMap())

		for k, exp := range ref {
			got, ok := subject.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
			assert.Equal(t, exp, subject.Get(k))
		}
	})

	s.Test("setting an existing key replaces its value without growing", func(t *testcase.T) {
		var (
			subject = mk(t)
			key     = c.makeKey(t)
		)
		subject.Set(key, c.makeValue(t))
		exp := c.makeValue(t)
		subject.Set(key, exp)
		assert.Equal(t, 1, subject.Len())
		assert.Equal(t, exp, subject.Get(key))
	})

	s.Test("a missing key reports not found and yields the zero value", func(t *testcase.T) {
		var (
			subject = mk(t)
			zero    V
		)
		_, ok := subject.Lookup(c.makeKey(t))
		assert.False(t, ok)
		assert.Equal(t, zero, subject.Get(c.makeKey(t)))
	})

	s.Test("delete removes the entry of the key", func(t *testcase.T) {
		var (
			subject = mk(t)
			key     = c.makeKey(t)
		)
		subject.Set(key, c.makeValue(t))
		assert.True(t, subject.Delete(key))
		assert.False(t, subject.Delete(key))
		_, ok := subject.Lookup(key)
		assert.False(t, ok)
		assert.Equal(t, 0, subject.Len())
	})

	s.Test("iteration visits every entry exactly once", func(t *testcase.T) {
		var (
			subject = mk(t)
			ref     = map[K]V{}
		)
		t.Random.Repeat(3, 7, func() {
			k, v := c.makeKey(t), c.makeValue(t)
			subject.Set(k, v)
			ref[k] = v
		})

		got := map[K]V{}
		for k, v := range subject.Iter() {
			_, seen := got[k]
			assert.False(t, seen)
			got[k] = v
		}
		assert.Equal(t, ref, got)
		assert.ContainsExactly(t, mapkit.Keys(ref), subject.Keys())
	})

	s.Test("the map returned by ToMap is detached from the store", func(t *testcase.T) {
		var (
			subject = mk(t)
			key     = c.makeKey(t)
		)
		subject.Set(key, c.makeValue(t))
		exp := mapkit.Clone(subject.ToMap())
		out := subject.ToMap()
		delete(out, key)
		assert.Equal(t, exp, subject.ToMap())
	})

	return s.AsSuite(fmt.Sprintf("KVS[%s, %s]", typeNameOf[K](), typeNameOf[V]()))
}

type KVSOption[K comparable, V any] interface {
	option.Option[KVSConfig[K, V]]
}

type KVSConfig[K comparable, V any] struct {
	MakeKey   func(testing.TB) K
	MakeValue func(testing.TB) V
}

var _ KVSOption[string, any] = KVSConfig[string, any]{}

func (c KVSConfig[K, V]) Configure(o *KVSConfig[K, V]) {
	o.MakeKey = zerokit.Coalesce(c.MakeKey, o.MakeKey)
	o.MakeValue = zerokit.Coalesce(c.MakeValue, o.MakeValue)
}

func (c KVSConfig[K, V]) makeKey(tb testing.TB) K {
	return zerokit.Coalesce(c.MakeKey, spechelper.MakeValue[K])(tb)
}

func (c KVSConfig[K, V]) makeValue(tb testing.TB) V {
	return zerokit.Coalesce(c.MakeValue, spechelper.MakeValue[V])(tb)
}
