package ordered

import (
	"cmp"
	"errors"
	"iter"
)

// Sentinel errors for ordered map operations.
var (
	// ErrKeyNotFound indicates a lookup referenced a key that is not stored.
	ErrKeyNotFound = errors.New("ordered: key not found")

	// ErrEmptyTree indicates Front or Back was called on an empty tree.
	ErrEmptyTree = errors.New("ordered: tree is empty")
)

// panicNilLess is raised when NewFunc receives a nil comparator (programmer error).
const panicNilLess = "ordered: NewFunc: comparator must not be nil"

// nilIdx marks an absent arena link (no parent, no child, no node).
const nilIdx = int32(-1)

// node is a single arena slot. Links are arena indices, never pointers,
// which keeps the parent back-link cycle-free from the GC's point of view
// and makes Clone a flat copy.
type node[K, V any] struct {
	key    K
	val    V
	parent int32
	left   int32
	right  int32
}

// Tree is an ordered map from unique keys to mutable values, backed by an
// unbalanced binary search tree.
//
// Invariant: for every node, all keys in its left subtree compare less than
// its key and all keys in its right subtree compare greater. first and last
// cache the leftmost and rightmost arena indices and are kept consistent by
// every Insert and Clear.
//
// The zero Tree is not usable; construct with New or NewFunc.
type Tree[K, V any] struct {
	nodes []node[K, V]
	root  int32
	first int32 // leftmost node (smallest key), nilIdx when empty
	last  int32 // rightmost node (largest key), nilIdx when empty
	less  func(a, b K) bool
}

// New returns an empty Tree ordered by the natural ordering of K.
// Complexity: O(1).
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc returns an empty Tree ordered by the given strict-weak comparator.
// Two keys a, b are considered equal when !less(a,b) && !less(b,a).
// Panics if less is nil (programmer error).
// Complexity: O(1).
func NewFunc[K, V any](less func(a, b K) bool) *Tree[K, V] {
	if less == nil {
		panic(panicNilLess)
	}

	return &Tree[K, V]{root: nilIdx, first: nilIdx, last: nilIdx, less: less}
}

// Len returns the number of stored keys.
// The arena never shrinks except on Clear, so its length is the node count.
// Complexity: O(1).
func (t *Tree[K, V]) Len() int { return len(t.nodes) }

// Empty reports whether the tree holds no keys.
// Complexity: O(1).
func (t *Tree[K, V]) Empty() bool { return len(t.nodes) == 0 }

// Insert stores value under key. If the key already exists its value is
// overwritten in place and Insert reports false; otherwise a new node is
// attached as a leaf and Insert reports true. The returned cursor addresses
// the affected node either way.
//
// Steps:
//  1. Walk from the root, descending left when key < node, right when >.
//  2. On an equal key: overwrite the value, done (no new node).
//  3. On an empty child slot: append a node to the arena, link it under the
//     last visited parent.
//  4. Refresh the cached first/last extremes.
//
// Complexity: O(h), h = tree height; no rebalancing is performed.
func (t *Tree[K, V]) Insert(key K, value V) (Cursor[K, V], bool) {
	cur := t.root
	parent := nilIdx
	wentLeft := false
	for cur != nilIdx {
		n := &t.nodes[cur]
		switch {
		case t.less(key, n.key):
			parent, wentLeft, cur = cur, true, n.left
		case t.less(n.key, key):
			parent, wentLeft, cur = cur, false, n.right
		default:
			// Existing key: value overwrite only, the key is immutable.
			n.val = value

			return Cursor[K, V]{tree: t, idx: cur}, false
		}
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node[K, V]{
		key:    key,
		val:    value,
		parent: parent,
		left:   nilIdx,
		right:  nilIdx,
	})
	switch {
	case parent == nilIdx:
		t.root = idx
	case wentLeft:
		t.nodes[parent].left = idx
	default:
		t.nodes[parent].right = idx
	}

	// Keep the cached extremes consistent on every insert.
	if t.first == nilIdx || t.less(key, t.nodes[t.first].key) {
		t.first = idx
	}
	if t.last == nilIdx || t.less(t.nodes[t.last].key, key) {
		t.last = idx
	}

	return Cursor[K, V]{tree: t, idx: idx}, true
}

// Find returns a cursor addressing key, or an invalid cursor when the key is
// not stored. Complexity: O(h).
func (t *Tree[K, V]) Find(key K) Cursor[K, V] {
	return Cursor[K, V]{tree: t, idx: t.lookup(key)}
}

// Get returns the value stored under key, or ErrKeyNotFound.
// Complexity: O(h).
func (t *Tree[K, V]) Get(key K) (V, error) {
	if i := t.lookup(key); i != nilIdx {
		return t.nodes[i].val, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Front returns the smallest key and its value, or ErrEmptyTree.
// Complexity: O(1) via the cached leftmost node.
func (t *Tree[K, V]) Front() (K, V, error) {
	if t.first == nilIdx {
		var k K
		var v V

		return k, v, ErrEmptyTree
	}
	n := &t.nodes[t.first]

	return n.key, n.val, nil
}

// Back returns the largest key and its value, or ErrEmptyTree.
// Complexity: O(1) via the cached rightmost node.
func (t *Tree[K, V]) Back() (K, V, error) {
	if t.last == nilIdx {
		var k K
		var v V

		return k, v, ErrEmptyTree
	}
	n := &t.nodes[t.last]

	return n.key, n.val, nil
}

// First returns a cursor at the smallest key (invalid when empty).
// Complexity: O(1).
func (t *Tree[K, V]) First() Cursor[K, V] {
	return Cursor[K, V]{tree: t, idx: t.first}
}

// Last returns a cursor at the largest key (invalid when empty).
// Complexity: O(1).
func (t *Tree[K, V]) Last() Cursor[K, V] {
	return Cursor[K, V]{tree: t, idx: t.last}
}

// Clear removes every node and resets the tree to its empty state.
// The arena's backing storage is retained for reuse; because the arena owns
// all nodes there is no per-node teardown to perform.
// Complexity: O(1).
func (t *Tree[K, V]) Clear() {
	t.nodes = t.nodes[:0]
	t.root = nilIdx
	t.first = nilIdx
	t.last = nilIdx
}

// Clone returns a deep copy of the tree: identical shape, identical key/value
// pairs, fully independent storage. Mutating the clone never affects the
// original. Complexity: O(n).
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := &Tree[K, V]{
		nodes: make([]node[K, V], len(t.nodes)),
		root:  t.root,
		first: t.first,
		last:  t.last,
		less:  t.less,
	}
	copy(c.nodes, t.nodes)

	return c
}

// All returns a lazy sequence over all key/value pairs in ascending key
// order. The tree must not be mutated during iteration.
// Complexity: O(n) for a full sweep.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := t.first; i != nilIdx; i = t.successor(i) {
			if !yield(t.nodes[i].key, t.nodes[i].val) {
				return
			}
		}
	}
}

// Backward returns a lazy sequence over all key/value pairs in descending
// key order. The tree must not be mutated during iteration.
// Complexity: O(n) for a full sweep.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := t.last; i != nilIdx; i = t.predecessor(i) {
			if !yield(t.nodes[i].key, t.nodes[i].val) {
				return
			}
		}
	}
}

// lookup walks from the root comparing keys and returns the arena index of
// the matching node, or nilIdx.
func (t *Tree[K, V]) lookup(key K) int32 {
	cur := t.root
	for cur != nilIdx {
		n := &t.nodes[cur]
		switch {
		case t.less(key, n.key):
			cur = n.left
		case t.less(n.key, key):
			cur = n.right
		default:
			return cur
		}
	}

	return nilIdx
}

// leftmost descends left links from i until none remain.
func (t *Tree[K, V]) leftmost(i int32) int32 {
	for t.nodes[i].left != nilIdx {
		i = t.nodes[i].left
	}

	return i
}

// rightmost descends right links from i until none remain.
func (t *Tree[K, V]) rightmost(i int32) int32 {
	for t.nodes[i].right != nilIdx {
		i = t.nodes[i].right
	}

	return i
}
