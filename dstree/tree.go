// Package dstree contains the ordered key-value containers:
// Map and Set keep their content sorted by an AVL-balanced binary search tree,
// giving O(log n) mutation and lookup and in-order iteration.
//
// Map and Set order by the natural ordering of the key type,
// NewMapFunc and NewSetFunc accept an injected comparison function,
// and MultiMap and MultiSet allow an ordered key to occur more than once.
package dstree

import (
	"go.llib.dev/datastruct/pkg/compare"
	"go.llib.dev/datastruct/pkg/errorkit"
)

// ErrUnsorted is reported by the FromSorted constructors
// when their input is not in strictly increasing key order.
const ErrUnsorted errorkit.Error = "dstree: input is not sorted"

type node[K, V any] struct {
	key    K
	val    V
	left   *node[K, V]
	right  *node[K, V]
	height int
}

// omap is the shared tree core of the ordered containers.
// The comparison function is owned by the wrapper types,
// so the natural ordering variants can stay zero value ready.
type omap[K, V any] struct {
	root *node[K, V]
	size int
}

func (m *omap[K, V]) set(cmp compare.Func[K], key K, val V) {
	var added bool
	m.root, added = insert(m.root, cmp, key, val)
	if added {
		m.size++
	}
}

func (m *omap[K, V]) lookup(cmp compare.Func[K], key K) (*node[K, V], bool) {
	for n := m.root; n != nil; {
		switch c := cmp(key, n.key); {
		case compare.IsLess(c):
			n = n.left
		case compare.IsMore(c):
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

func (m *omap[K, V]) delete(cmp compare.Func[K], key K) bool {
	var removed bool
	m.root, removed = remove(m.root, cmp, key)
	if removed {
		m.size--
	}
	return removed
}

func (m *omap[K, V]) min() *node[K, V] { return minNode(m.root) }
func (m *omap[K, V]) max() *node[K, V] { return maxNode(m.root) }

// lowerBound returns the node of the smallest key not below the given key.
func (m *omap[K, V]) lowerBound(cmp compare.Func[K], key K) *node[K, V] {
	var candidate *node[K, V]
	for n := m.root; n != nil; {
		if compare.IsLess(cmp(n.key, key)) {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	return candidate
}

// upperBound returns the node of the smallest key above the given key.
func (m *omap[K, V]) upperBound(cmp compare.Func[K], key K) *node[K, V] {
	var candidate *node[K, V]
	for n := m.root; n != nil; {
		if compare.IsMore(cmp(n.key, key)) {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

func (m *omap[K, V]) each(yield func(K, V) bool) bool {
	return each(m.root, yield)
}

// eachFrom visits the entries in order, starting at the lower bound of the given key.
func (m *omap[K, V]) eachFrom(cmp compare.Func[K], key K, yield func(K, V) bool) bool {
	return eachFrom(m.root, cmp, key, yield)
}

func insert[K, V any](n *node[K, V], cmp compare.Func[K], key K, val V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, val: val, height: 1}, true
	}
	var added bool
	switch c := cmp(key, n.key); {
	case compare.IsLess(c):
		n.left, added = insert(n.left, cmp, key, val)
	case compare.IsMore(c):
		n.right, added = insert(n.right, cmp, key, val)
	default:
		n.val = val
		return n, false
	}
	return rebalance(n), added
}

func remove[K, V any](n *node[K, V], cmp compare.Func[K], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := cmp(key, n.key); {
	case compare.IsLess(c):
		n.left, removed = remove(n.left, cmp, key)
	case compare.IsMore(c):
		n.right, removed = remove(n.right, cmp, key)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// replace with the in-order successor and remove its node
			var successor *node[K, V]
			n.right, successor = removeMin(n.right)
			n.key, n.val = successor.key, successor.val
			return rebalance(n), true
		}
	}
	if !removed {
		return n, false
	}
	return rebalance(n), true
}

func removeMin[K, V any](n *node[K, V]) (root, min *node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	n.left, min = removeMin(n.left)
	return rebalance(n), min
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func each[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return each(n.left, yield) && yield(n.key, n.val) && each(n.right, yield)
}

func eachFrom[K, V any](n *node[K, V], cmp compare.Func[K], key K, yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if compare.IsLess(cmp(n.key, key)) {
		return eachFrom(n.right, cmp, key, yield)
	}
	return eachFrom(n.left, cmp, key, yield) &&
		yield(n.key, n.val) &&
		each(n.right, yield)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K, V any](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

func (n *node[K, V]) reheight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	n.reheight()
	switch bf := balanceFactor(n); {
	case 1 < bf:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if 0 < balanceFactor(n.right) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.reheight()
	pivot.reheight()
	return pivot
}

func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.reheight()
	pivot.reheight()
	return pivot
}

// buildBalanced constructs a perfectly balanced subtree
// from entries already in strictly increasing key order, in O(n) time.
func buildBalanced[K, V any](keys []K, vals []V) *node[K, V] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	n := &node[K, V]{
		key:   keys[mid],
		val:   vals[mid],
		left:  buildBalanced(keys[:mid], vals[:mid]),
		right: buildBalanced(keys[mid+1:], vals[mid+1:]),
	}
	n.reheight()
	return n
}
