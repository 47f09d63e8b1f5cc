package ordered

// panicInvalidCursor is raised when an invalid cursor is dereferenced or
// stepped (programmer error, the position past the ends carries no node).
const panicInvalidCursor = "ordered: cursor is not addressing a node"

// Cursor is a lightweight handle addressing one node of a Tree. It stays
// valid for as long as the tree is not cleared. The zero Cursor is invalid.
//
// A Cursor is a value, not a pointer: copying it is free and two cursors
// compare equal when they address the same node of the same tree.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	idx  int32
}

// Valid reports whether the cursor addresses a node. Find on an absent key,
// Next past the largest key, and Prev past the smallest key all yield
// invalid cursors.
func (c Cursor[K, V]) Valid() bool { return c.tree != nil && c.idx != nilIdx }

// Key returns the key of the addressed node. Keys are immutable after
// insertion. Panics when the cursor is invalid.
func (c Cursor[K, V]) Key() K {
	c.mustValid()

	return c.tree.nodes[c.idx].key
}

// Value returns the value of the addressed node.
// Panics when the cursor is invalid.
func (c Cursor[K, V]) Value() V {
	c.mustValid()

	return c.tree.nodes[c.idx].val
}

// SetValue overwrites the value of the addressed node in place.
// Panics when the cursor is invalid.
func (c Cursor[K, V]) SetValue(v V) {
	c.mustValid()
	c.tree.nodes[c.idx].val = v
}

// Next returns a cursor at the in-order successor: the leftmost descendant
// of the right child when one exists, otherwise the nearest ancestor whose
// left subtree contains this node. The returned cursor is invalid once the
// largest key is passed. Panics when the receiver is invalid.
// Complexity: O(h) worst case, amortized O(1) over a full sweep.
func (c Cursor[K, V]) Next() Cursor[K, V] {
	c.mustValid()

	return Cursor[K, V]{tree: c.tree, idx: c.tree.successor(c.idx)}
}

// Prev returns a cursor at the in-order predecessor, the mirror image of
// Next. The returned cursor is invalid once the smallest key is passed.
// Panics when the receiver is invalid.
// Complexity: O(h) worst case, amortized O(1) over a full sweep.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	c.mustValid()

	return Cursor[K, V]{tree: c.tree, idx: c.tree.predecessor(c.idx)}
}

func (c Cursor[K, V]) mustValid() {
	if !c.Valid() {
		panic(panicInvalidCursor)
	}
}

// successor returns the arena index of the in-order successor of i, or
// nilIdx when i holds the largest key.
func (t *Tree[K, V]) successor(i int32) int32 {
	if r := t.nodes[i].right; r != nilIdx {
		return t.leftmost(r)
	}
	// No right subtree: climb until we arrive from a left child.
	child, p := i, t.nodes[i].parent
	for p != nilIdx {
		if t.nodes[p].left == child {
			return p
		}
		child, p = p, t.nodes[p].parent
	}

	return nilIdx
}

// predecessor returns the arena index of the in-order predecessor of i, or
// nilIdx when i holds the smallest key.
func (t *Tree[K, V]) predecessor(i int32) int32 {
	if l := t.nodes[i].left; l != nilIdx {
		return t.rightmost(l)
	}
	// No left subtree: climb until we arrive from a right child.
	child, p := i, t.nodes[i].parent
	for p != nilIdx {
		if t.nodes[p].right == child {
			return p
		}
		child, p = p, t.nodes[p].parent
	}

	return nilIdx
}
