// Package ordered implements a key-ordered associative map backed by an
// unbalanced binary search tree.
//
// The tree stores unique keys and mutable values, visitable in ascending key
// order. Nodes live in an arena (a flat slice) and reference each other by
// index, so the container owns every node outright and Clear/Clone never walk
// pointer chains.
//
// Key features:
//   - Insert(key, value): overwrite-on-duplicate, attach-as-leaf otherwise
//   - Find/Get, Front/Back, First/Last cursors
//   - Cursor navigation: in-order Next/Prev from any position
//   - All/Backward: lazy iter.Seq2 sweeps in ascending/descending key order
//   - Clone: deep, shape-preserving copy
//   - Equal/EqualFunc: structural (shape-sensitive) equality
//
// No rebalancing is performed; adversarial insertion order degrades lookups
// to O(n). All traversal is iterative, so deep trees cannot overflow the
// goroutine stack.
//
// Complexity:
//
//   - Insert/Find/Get: O(h) where h is the tree height (O(n) worst case).
//   - Front/Back/Len/Empty/Clear: O(1).
//   - All/Backward: O(n) per full sweep, O(h) worst case per step.
//
// Errors:
//
//   - ErrKeyNotFound  - Get on an absent key.
//   - ErrEmptyTree    - Front/Back on an empty tree.
//
// Dereferencing an invalid Cursor panics: positions past the ends of the
// container are programmer errors, not runtime conditions.
//
// The tree is not safe for concurrent use.
package ordered
