package ordered

// Equal reports whether two trees are structurally equal: identical shape
// AND identical key/value pairs at every corresponding position. Two trees
// holding the same key→value mapping under different shapes are NOT equal.
//
// Key equivalence is derived from a's comparator (!less(x,y) && !less(y,x)),
// values are compared with ==. A tree is always equal to itself; a nil tree
// is equal only to another nil tree.
//
// Complexity: O(n).
func Equal[K any, V comparable](a, b *Tree[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value equivalence, for value
// types that are not comparable.
// Complexity: O(n) assuming eq is O(1).
func EqualFunc[K, V any](a, b *Tree[K, V], eq func(x, y V) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.nodes) != len(b.nodes) {
		return false
	}

	// Parallel structural walk over both trees with an explicit stack.
	type pair struct{ ai, bi int32 }
	stack := make([]pair, 0, 32)
	stack = append(stack, pair{a.root, b.root})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if (p.ai == nilIdx) != (p.bi == nilIdx) {
			return false // shape mismatch
		}
		if p.ai == nilIdx {
			continue
		}
		an, bn := &a.nodes[p.ai], &b.nodes[p.bi]
		if a.less(an.key, bn.key) || a.less(bn.key, an.key) {
			return false
		}
		if !eq(an.val, bn.val) {
			return false
		}
		stack = append(stack, pair{an.left, bn.left}, pair{an.right, bn.right})
	}

	return true
}
