package dshash_test

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/dshash"
	"go.llib.dev/datastruct/pkg/hashkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *dshash.Map[string, int] {
		return dshash.NewMap[string, int]()
	})

	s.Describe("#Set + #Lookup", func(s *testcase.Spec) {
		s.Test("a stored value is found under its key", func(t *testcase.T) {
			key := t.Random.String()
			exp := t.Random.Int()
			subject.Get(t).Set(key, exp)
			got, ok := subject.Get(t).Lookup(key)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		})

		s.Test("setting an existing key replaces its value without growing", func(t *testcase.T) {
			key := t.Random.String()
			subject.Get(t).Set(key, 1)
			subject.Get(t).Set(key, 2)
			assert.Equal(t, 1, subject.Get(t).Len())
			assert.Equal(t, 2, subject.Get(t).Get(key))
		})

		s.Test("a missing key reports not found", func(t *testcase.T) {
			_, ok := subject.Get(t).Lookup(t.Random.String())
			assert.False(t, ok)
		})
	})

	s.Describe("#Fetch", func(s *testcase.Spec) {
		s.Test("reports ErrNotFound on a lookup miss", func(t *testcase.T) {
			_, err := subject.Get(t).Fetch(t.Random.String())
			assert.ErrorIs(t, err, datastruct.ErrNotFound)
		})
	})

	s.Describe("#Delete", func(s *testcase.Spec) {
		s.Test("removes the entry of the key", func(t *testcase.T) {
			key := t.Random.String()
			subject.Get(t).Set(key, t.Random.Int())
			assert.True(t, subject.Get(t).Delete(key))
			assert.False(t, subject.Get(t).Delete(key))
			_, ok := subject.Get(t).Lookup(key)
			assert.False(t, ok)
		})
	})

	s.Describe("rehash", func(s *testcase.Spec) {
		s.Test("every key stays findable after the bucket array doubled", func(t *testcase.T) {
			m := dshash.NewMap[int, int]()
			before := m.BucketCount()
			ref := map[int]int{}
			for i := 0; i < before*4; i++ { // exceeds the default load factor of 1.0
				m.Set(i, i*10)
				ref[i] = i * 10
			}
			assert.True(t, before < m.BucketCount())
			for k, v := range ref {
				got, ok := m.Lookup(k)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
			assert.Equal(t, ref, dshash.ToMap(m))
		})

		s.Test("a higher max load factor defers the doubling", func(t *testcase.T) {
			m := dshash.NewMap[int, int](dshash.MaxLoadFactor(4))
			before := m.BucketCount()
			for i := 0; i < before*2; i++ {
				m.Set(i, i)
			}
			assert.Equal(t, before, m.BucketCount())
		})

		s.Test("InitialCapacity pre-sizes the bucket array", func(t *testcase.T) {
			m := dshash.NewMap[int, int](dshash.InitialCapacity(100))
			assert.True(t, 100 <= m.BucketCount())
		})
	})

	s.Describe("diagnostics", func(s *testcase.Spec) {
		s.Test("an entry is found in the bucket its key hashes into", func(t *testcase.T) {
			key := t.Random.String()
			subject.Get(t).Set(key, 42)
			bi := subject.Get(t).BucketOf(key)
			assert.True(t, 0 <= bi && bi < subject.Get(t).BucketCount())
			assert.True(t, 1 <= subject.Get(t).BucketLen(bi))
		})
	})

	s.Describe("#Iter + #Keys", func(s *testcase.Spec) {
		s.Test("every entry is visited exactly once", func(t *testcase.T) {
			ref := map[string]int{}
			t.Random.Repeat(10, 30, func() {
				k, v := t.Random.String(), t.Random.Int()
				subject.Get(t).Set(k, v)
				ref[k] = v
			})
			got := map[string]int{}
			for k, v := range subject.Get(t).Iter() {
				_, seen := got[k]
				assert.False(t, seen)
				got[k] = v
			}
			assert.Equal(t, ref, got)
			assert.Equal(t, len(ref), len(subject.Get(t).Keys()))
		})
	})

	s.Test("a random workload matches a built-in map reference", func(t *testcase.T) {
		ref := map[int]int{}
		m := dshash.NewMap[int, int]()
		t.Random.Repeat(200, 500, func() {
			k := t.Random.IntB(0, 100)
			switch t.Random.IntB(0, 2) {
			case 0:
				v := t.Random.Int()
				m.Set(k, v)
				ref[k] = v
			case 1:
				_, expOK := ref[k]
				assert.Equal(t, expOK, m.Delete(k))
				delete(ref, k)
			case 2:
				exp, expOK := ref[k]
				got, ok := m.Lookup(k)
				assert.Equal(t, expOK, ok)
				assert.Equal(t, exp, got)
			}
		})
		assert.Equal(t, len(ref), m.Len())
		assert.Equal(t, ref, dshash.ToMap(m))
	})
}

func TestNewMapFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("supports key types that are not comparable", func(t *testcase.T) {
		m := dshash.NewMapFunc[[]byte, int](
			func(k []byte) uint64 { return hashkit.String(string(k)) },
			func(a, b []byte) bool { return string(a) == string(b) },
		)
		m.Set([]byte("foo"), 1)
		m.Set([]byte("bar"), 2)
		m.Set([]byte("foo"), 3)

		assert.Equal(t, 2, m.Len())
		got, ok := m.Lookup([]byte("foo"))
		assert.True(t, ok)
		assert.Equal(t, 3, got)
		assert.True(t, m.Delete([]byte("bar")))
	})

	s.Test("a colliding hash still resolves keys by equality", func(t *testcase.T) {
		m := dshash.NewMapFunc[string, int](
			func(string) uint64 { return 42 }, // everything collides
			func(a, b string) bool { return a == b },
		)
		m.Set("foo", 1)
		m.Set("bar", 2)
		assert.Equal(t, 1, m.Get("foo"))
		assert.Equal(t, 2, m.Get("bar"))
		assert.True(t, m.Delete("foo"))
		assert.Equal(t, 2, m.Get("bar"))
	})
}

func TestMap_Cursor(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *dshash.Map[string, int] {
		m := dshash.NewMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		return m
	})

	s.Test("visits every entry exactly once", func(t *testcase.T) {
		got := map[string]int{}
		c := subject.Get(t).Cursor()
		for c.Next() {
			k, v, err := c.KV()
			assert.NoError(t, err)
			got[k] = v
		}
		assert.NoError(t, c.Err())
		assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
	})

	s.Test("a rehash invalidates the cursor", func(t *testcase.T) {
		c := subject.Get(t).Cursor()
		assert.True(t, c.Next())
		for i := 0; i < subject.Get(t).BucketCount()*2; i++ {
			subject.Get(t).Set(t.Random.String(), i)
		}
		assert.False(t, c.Next())
		_, _, err := c.KV()
		assert.ErrorIs(t, err, datastruct.ErrInvalidCursor)
		assert.ErrorIs(t, c.Err(), datastruct.ErrInvalidCursor)
	})

	s.Test("a removal invalidates the cursor", func(t *testcase.T) {
		c := subject.Get(t).Cursor()
		assert.True(t, c.Next())
		assert.True(t, subject.Get(t).Delete("a"))
		assert.False(t, c.Next())
		assert.ErrorIs(t, c.Err(), datastruct.ErrInvalidCursor)
	})

	s.Test("a replacement keeps the cursor valid", func(t *testcase.T) {
		c := subject.Get(t).Cursor()
		assert.True(t, c.Next())
		subject.Get(t).Set("a", 42)
		_, _, err := c.KV()
		assert.NoError(t, err)
	})
}

func TestSet(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *dshash.Set[string] {
		return dshash.NewSet[string]()
	})

	s.Test("added values are contained, duplicates are collapsed", func(t *testcase.T) {
		subject.Get(t).Add("foo", "bar", "foo")
		assert.Equal(t, 2, subject.Get(t).Len())
		assert.True(t, subject.Get(t).Contains("foo"))
		assert.True(t, subject.Get(t).Contains("bar"))
		assert.False(t, subject.Get(t).Contains("baz"))
	})

	s.Test("delete removes the value", func(t *testcase.T) {
		subject.Get(t).Add("foo")
		assert.True(t, subject.Get(t).Delete("foo"))
		assert.False(t, subject.Get(t).Delete("foo"))
		assert.False(t, subject.Get(t).Contains("foo"))
	})

	s.Test("iteration visits every value exactly once", func(t *testcase.T) {
		exp := map[string]struct{}{}
		t.Random.Repeat(10, 30, func() {
			v := t.Random.String()
			subject.Get(t).Add(v)
			exp[v] = struct{}{}
		})
		got := map[string]struct{}{}
		for v := range subject.Get(t).Iter() {
			_, seen := got[v]
			assert.False(t, seen)
			got[v] = struct{}{}
		}
		assert.Equal(t, exp, got)
		assert.Equal(t, len(exp), len(subject.Get(t).ToSlice()))
	})

	s.Test("NewSetFunc supports values that are not comparable", func(t *testcase.T) {
		set := dshash.NewSetFunc[[]int](
			func(vs []int) uint64 {
				h := hashkit.DJBInit
				for _, v := range vs {
					h = hashkit.DJBCombine(h, hashkit.Uint64(uint64(v)))
				}
				return h
			},
			func(a, b []int) bool {
				if len(a) != len(b) {
					return false
				}
				for i := range a {
					if a[i] != b[i] {
						return false
					}
				}
				return true
			},
		)
		set.Add([]int{1, 2}, []int{3}, []int{1, 2})
		assert.Equal(t, 2, set.Len())
		assert.True(t, set.Contains([]int{1, 2}))
		assert.False(t, set.Contains([]int{2, 1}))
	})
}
