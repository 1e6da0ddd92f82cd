// Package dshash contains the hashed key-value containers:
// Map and Set are open hashing tables with an injectable hash function and equality,
// giving amortised O(1) mutation and lookup at the price of an unspecified iteration order.
package dshash

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/pkg/hashkit"
	"go.llib.dev/datastruct/pkg/zerokit"
	"go.llib.dev/datastruct/port/option"
)

// Map is a hashed key-value container.
//
// Entries are kept in a bucket array indexed by the hash of the key;
// when the load factor of the table exceeds the configured maximum,
// the bucket array is doubled and every entry is redistributed,
// which bumps the generation of the container and invalidates every outstanding cursor.
//
// Use NewMap for comparable key types and NewMapFunc for injected hashing.
// Map is not safe for concurrent use.
type Map[K, V any] struct {
	buckets [][]entry[K, V]
	length  int
	version uint64
	hash    func(K) uint64
	eq      func(K, K) bool
	conf    Config
}

type entry[K, V any] struct {
	hash uint64
	key  K
	val  V
}

const defaultBucketCount = 8

// NewMap creates a Map for a comparable key type,
// hashing with a per-instance seeded hash function and comparing keys with ==.
// The per-instance seed makes the bucket distribution unpredictable between instances.
func NewMap[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewMapFunc[K, V](hashkit.New[K](), func(a, b K) bool { return a == b }, opts...)
}

// NewMapFunc creates a Map with an injected hash function and equality,
// allowing key types that are not comparable.
// The hash and the equality must agree: equal keys must hash to the same value.
func NewMapFunc[K, V any](hash func(K) uint64, eq func(K, K) bool, opts ...Option) *Map[K, V] {
	m := &Map[K, V]{hash: hash, eq: eq, conf: option.ToConfig(opts)}
	n := defaultBucketCount
	for n < m.conf.InitialCapacity {
		n *= 2
	}
	m.buckets = make([][]entry[K, V], n)
	return m
}

type Option = option.Option[Config]

type Config struct {
	// InitialCapacity pre-sizes the bucket array of the table.
	InitialCapacity int
	// MaxLoadFactor is the entry per bucket ratio that triggers a rehash.
	MaxLoadFactor float64
}

func (c *Config) Init() {
	c.MaxLoadFactor = 1.0
}

func (c Config) Configure(o *Config) {
	o.InitialCapacity = zerokit.Coalesce(c.InitialCapacity, o.InitialCapacity)
	o.MaxLoadFactor = zerokit.Coalesce(c.MaxLoadFactor, o.MaxLoadFactor)
}

// InitialCapacity pre-sizes the bucket array of the table.
func InitialCapacity(n int) Option {
	return option.Func[Config](func(c *Config) {
		c.InitialCapacity = n
	})
}

// MaxLoadFactor sets the entry per bucket ratio that triggers a rehash.
func MaxLoadFactor(f float64) Option {
	return option.Func[Config](func(c *Config) {
		c.MaxLoadFactor = f
	})
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.length }

// Set stores the value under the given key, replacing any previous value.
// A Set that pushes the load factor over the maximum triggers a rehash,
// which invalidates every outstanding cursor.
func (m *Map[K, V]) Set(key K, val V) {
	h := m.hash(key)
	bi := m.bucketIndex(h)
	for i, e := range m.buckets[bi] {
		if e.hash == h && m.eq(e.key, key) {
			m.buckets[bi][i].val = val
			return
		}
	}
	m.buckets[bi] = append(m.buckets[bi], entry[K, V]{hash: h, key: key, val: val})
	m.length++
	if float64(m.length) > m.conf.MaxLoadFactor*float64(len(m.buckets)) {
		m.rehash()
	}
}

// Lookup returns the value stored under the given key.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	h := m.hash(key)
	for _, e := range m.buckets[m.bucketIndex(h)] {
		if e.hash == h && m.eq(e.key, key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
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

// Delete removes the entry of the given key, and reports whether there was one.
// A successful Delete invalidates every outstanding cursor.
func (m *Map[K, V]) Delete(key K) bool {
	h := m.hash(key)
	bi := m.bucketIndex(h)
	bucket := m.buckets[bi]
	for i, e := range bucket {
		if e.hash == h && m.eq(e.key, key) {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			var zero entry[K, V]
			bucket[last] = zero
			m.buckets[bi] = bucket[:last]
			m.length--
			m.version++
			return true
		}
	}
	return false
}

// Keys returns every key of the map, in unspecified order.
func (m *Map[K, V]) Keys() []K {
	ks := make([]K, 0, m.length)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			ks = append(ks, e.key)
		}
	}
	return ks
}

// Iter yields the entries in unspecified order. The sequence is restartable.
// Mutating the map during iteration is a contract violation,
// use Cursor for checked iteration.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// ToMap returns the content of the table as a built-in map, detached from the container.
// It is a package-level function since Map itself does not require a comparable key type.
func ToMap[K comparable, V any](m *Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

// BucketCount returns the size of the bucket array.
// It is a diagnostic accessor; correctness logic must not depend on it.
func (m *Map[K, V]) BucketCount() int { return len(m.buckets) }

// BucketOf returns the bucket index the given key hashes into.
// It is a diagnostic accessor; correctness logic must not depend on it.
func (m *Map[K, V]) BucketOf(key K) int { return m.bucketIndex(m.hash(key)) }

// BucketLen returns the number of entries in the given bucket.
// It is a diagnostic accessor; correctness logic must not depend on it.
func (m *Map[K, V]) BucketLen(i int) int { return len(m.buckets[i]) }

func (m *Map[K, V]) bucketIndex(h uint64) int {
	// the bucket count is a power of two
	return int(h & uint64(len(m.buckets)-1))
}

// rehash doubles the bucket array and redistributes every entry.
func (m *Map[K, V]) rehash() {
	next := make([][]entry[K, V], len(m.buckets)*2)
	mask := uint64(len(next) - 1)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			bi := int(e.hash & mask)
			next[bi] = append(next[bi], e)
		}
	}
	m.buckets = next
	m.version++
}

// Cursor returns a generation-checked cursor positioned before the first entry.
// The visiting order is unspecified but stable while the map is unchanged.
// After a rehash or a removal, Next reports false
// and both Err and KV fail with datastruct.ErrInvalidCursor.
func (m *Map[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{src: m, version: m.version, bucket: 0, slot: -1}
}

// Cursor is a generation-checked cursor over a Map.
type Cursor[K, V any] struct {
	src     *Map[K, V]
	version uint64
	bucket  int
	slot    int
	err     error
}

// Next advances the cursor to the next entry.
func (c *Cursor[K, V]) Next() bool {
	if !c.valid() {
		return false
	}
	c.slot++
	for c.bucket < len(c.src.buckets) {
		if c.slot < len(c.src.buckets[c.bucket]) {
			return true
		}
		c.bucket++
		c.slot = 0
	}
	return false
}

// KV returns the entry under the cursor.
func (c *Cursor[K, V]) KV() (K, V, error) {
	var (
		zeroK K
		zeroV V
	)
	if !c.valid() {
		return zeroK, zeroV, c.err
	}
	if len(c.src.buckets) <= c.bucket || c.slot < 0 || len(c.src.buckets[c.bucket]) <= c.slot {
		return zeroK, zeroV, datastruct.ErrIndexOutOfBounds.F("bucket: %d, slot: %d", c.bucket, c.slot)
	}
	e := c.src.buckets[c.bucket][c.slot]
	return e.key, e.val, nil
}

// Err returns the cursor failure, if there is one.
func (c *Cursor[K, V]) Err() error { return c.err }

func (c *Cursor[K, V]) valid() bool {
	if c.err != nil {
		return false
	}
	if c.version != c.src.version {
		c.err = datastruct.ErrInvalidCursor
		return false
	}
	return true
}
