// Package dfs implements depth-first search over any graph.Interface
// container, plus topological sorting built on its hooks.
//
// Key features:
//   - DFS(g, opts...): full-forest traversal in ascending vertex order, or a
//     single tree via WithRoot
//   - Tri-state marking per vertex: White → Gray → Black, monotonic
//   - Edge classification: tree, back (cycle witness), forward/cross
//   - Hooks: OnDiscover/OnFinish per vertex, OnExamine/OnTreeEdge/
//     OnBackEdge/OnForwardCrossEdge per edge; all no-ops by default, any
//     returned error aborts the traversal
//   - Explicit work-stack: deep or adversarial graphs cannot overflow the
//     goroutine stack
//   - Cancellation via context.Context
//
// Hooks are the sole extension point: algorithms layered on DFS (such as
// TopologicalSort in this package) supply hooks rather than reimplementing
// the traversal.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook overhead.
//   - Memory: O(V) for the work-stack and per-vertex state.
//
// Errors:
//
//   - ErrGraphNil       - nil graph passed to DFS or TopologicalSort.
//   - ErrRootNotFound   - WithRoot names a vertex outside the container.
//   - ErrCycleDetected  - TopologicalSort observed a back edge.
//   - ErrUndirected     - TopologicalSort over an Undirected container.
//   - context.Canceled  - the supplied context was cancelled.
//   - any error returned by a hook, wrapped with the offending position.
package dfs
