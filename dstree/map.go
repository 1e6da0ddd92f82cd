package dstree

import (
	"iter"
	"slices"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/compare"
	"go.llib.dev/datastruct/pkg/iterkit"
	"go.llib.dev/datastruct/pkg/mapkit"
	"go.llib.dev/datastruct/pkg/slicekit"
	"golang.org/x/exp/constraints"
)

// Map is an ordered key-value container sorted by the natural ordering of the key type.
//
// Set, Lookup and Delete run in O(log n) time,
// and Iter yields the entries in increasing key order.
// Mutating the map during an Iter range is a contract violation;
// re-looking up by key after a mutation is the supported pattern.
//
// The zero value is an empty Map ready to use.
// Map is not safe for concurrent use.
type Map[K constraints.Ordered, V any] struct {
	om omap[K, V]
}

var _ datastruct.KVS[string, int] = (*Map[string, int])(nil)

// NewMapFromSorted builds a Map in O(n) time from entries
// already in strictly increasing key order.
// It fails with ErrUnsorted when the input is out of order or contains duplicate keys.
func NewMapFromSorted[K constraints.Ordered, V any](kvs []iterkit.KV[K, V]) (*Map[K, V], error) {
	keys := make([]K, 0, len(kvs))
	vals := make([]V, 0, len(kvs))
	for _, kv := range kvs {
		keys = append(keys, kv.K)
		vals = append(vals, kv.V)
	}
	root, err := fromSorted(compare.Ordered[K], keys, vals)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{om: omap[K, V]{root: root, size: len(kvs)}}, nil
}

// NewMapFromMap builds a Map from the content of a built-in map, in O(n log n) time.
func NewMapFromMap[K constraints.Ordered, V any](src map[K]V) *Map[K, V] {
	keys := mapkit.Keys(src, slices.Sort[[]K])
	kvs := make([]iterkit.KV[K, V], 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, iterkit.KV[K, V]{K: k, V: src[k]})
	}
	// the keys are sorted and unique, the sortedness check cannot fail
	return slicekit.Must(NewMapFromSorted(kvs))
}

func fromSorted[K, V any](cmp compare.Func[K], keys []K, vals []V) (*node[K, V], error) {
	for i := 1; i < len(keys); i++ {
		if !compare.IsLess(cmp(keys[i-1], keys[i])) {
			return nil, ErrUnsorted.F("position: %d", i)
		}
	}
	return buildBalanced(keys, vals), nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.om.size }

// Set stores the value under the given key, replacing any previous value.
func (m *Map[K, V]) Set(key K, val V) { m.om.set(compare.Ordered[K], key, val) }

// Lookup returns the value stored under the given key.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	n, ok := m.om.lookup(compare.Ordered[K], key)
	if !ok {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Get returns the value stored under the given key,
// or the zero value of V on a lookup miss.
func (m *Map[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

// Fetch is the checked variant of Lookup,
// failing with datastruct.ErrNotFound on a lookup miss.
func (m *Map[K, V]) Fetch(key K) (V, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return v, datastruct.ErrNotFound.F("key: %v", key)
	}
	return v, nil
}

// Delete removes the entry of the given key,
// and reports whether there was one.
func (m *Map[K, V]) Delete(key K) bool { return m.om.delete(compare.Ordered[K], key) }

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) { return entryOf(m.om.min()) }

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) { return entryOf(m.om.max()) }

// LowerBound returns the entry with the smallest key that is not below the given key,
// in O(log n) time.
func (m *Map[K, V]) LowerBound(key K) (K, V, bool) {
	return entryOf(m.om.lowerBound(compare.Ordered[K], key))
}

// UpperBound returns the entry with the smallest key above the given key,
// in O(log n) time.
func (m *Map[K, V]) UpperBound(key K) (K, V, bool) {
	return entryOf(m.om.upperBound(compare.Ordered[K], key))
}

// Iter yields the entries in increasing key order. The sequence is restartable.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.om.each(yield) }
}

// IterFrom yields the entries in increasing key order,
// starting at the lower bound of the given key.
func (m *Map[K, V]) IterFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.om.eachFrom(compare.Ordered[K], key, yield) }
}

// Keys returns every key in increasing order.
func (m *Map[K, V]) Keys() []K {
	ks := make([]K, 0, m.om.size)
	for k := range m.Iter() {
		ks = append(ks, k)
	}
	return ks
}

// ToMap returns the content as a built-in map, detached from the container.
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.om.size)
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

func entryOf[K, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	return n.key, n.val, true
}

// MapFunc is an ordered key-value container sorted by an injected comparison function,
// for key types without a natural ordering.
// Beyond construction it behaves like Map,
// except that ToMap is unavailable since the key type is not required to be comparable.
type MapFunc[K, V any] struct {
	om  omap[K, V]
	cmp compare.Func[K]
}

// NewMapFunc creates a MapFunc ordered by the given comparison function.
func NewMapFunc[K, V any](cmp compare.Func[K]) *MapFunc[K, V] {
	return &MapFunc[K, V]{cmp: cmp}
}

// NewMapFuncFromSorted builds a MapFunc in O(n) time from entries
// already in strictly increasing order according to the given comparison function.
// It fails with ErrUnsorted when the input is out of order or contains duplicate keys.
func NewMapFuncFromSorted[K, V any](cmp compare.Func[K], kvs []iterkit.KV[K, V]) (*MapFunc[K, V], error) {
	keys := make([]K, 0, len(kvs))
	vals := make([]V, 0, len(kvs))
	for _, kv := range kvs {
		keys = append(keys, kv.K)
		vals = append(vals, kv.V)
	}
	root, err := fromSorted(cmp, keys, vals)
	if err != nil {
		return nil, err
	}
	return &MapFunc[K, V]{om: omap[K, V]{root: root, size: len(kvs)}, cmp: cmp}, nil
}

// Len returns the number of entries in the map.
func (m *MapFunc[K, V]) Len() int { return m.om.size }

// Set stores the value under the given key, replacing any previous value.
func (m *MapFunc[K, V]) Set(key K, val V) { m.om.set(m.cmp, key, val) }

// Lookup returns the value stored under the given key.
func (m *MapFunc[K, V]) Lookup(key K) (V, bool) {
	n, ok := m.om.lookup(m.cmp, key)
	if !ok {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Get returns the value stored under the given key,
// or the zero value of V on a lookup miss.
func (m *MapFunc[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

// Fetch is the checked variant of Lookup,
// failing with datastruct.ErrNotFound on a lookup miss.
func (m *MapFunc[K, V]) Fetch(key K) (V, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return v, datastruct.ErrNotFound.F("key: %v", key)
	}
	return v, nil
}

// Delete removes the entry of the given key,
// and reports whether there was one.
func (m *MapFunc[K, V]) Delete(key K) bool { return m.om.delete(m.cmp, key) }

// Min returns the entry with the smallest key.
func (m *MapFunc[K, V]) Min() (K, V, bool) { return entryOf(m.om.min()) }

// Max returns the entry with the largest key.
func (m *MapFunc[K, V]) Max() (K, V, bool) { return entryOf(m.om.max()) }

// LowerBound returns the entry with the smallest key that is not below the given key.
func (m *MapFunc[K, V]) LowerBound(key K) (K, V, bool) {
	return entryOf(m.om.lowerBound(m.cmp, key))
}

// UpperBound returns the entry with the smallest key above the given key.
func (m *MapFunc[K, V]) UpperBound(key K) (K, V, bool) {
	return entryOf(m.om.upperBound(m.cmp, key))
}

// Iter yields the entries in increasing key order. The sequence is restartable.
func (m *MapFunc[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.om.each(yield) }
}

// IterFrom yields the entries in increasing key order,
// starting at the lower bound of the given key.
func (m *MapFunc[K, V]) IterFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.om.eachFrom(m.cmp, key, yield) }
}

// Keys returns every key in increasing order.
func (m *MapFunc[K, V]) Keys() []K {
	ks := make([]K, 0, m.om.size)
	for k := range m.Iter() {
		ks = append(ks, k)
	}
	return ks
}
