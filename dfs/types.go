// Package dfs: traversal state, sentinel errors, options, and the result
// type. The traversal itself lives in dfs.go, topological sorting in
// topological.go.
package dfs

import (
	"context"
	"errors"

	"github.com/vrelsted/dstk/graph"
)

// Color is the DFS visitation state of a vertex. Transitions are monotonic:
// White → Gray → Black, never back.
type Color byte

const (
	// White: the vertex has not been visited yet.
	White Color = iota

	// Gray: the vertex is on the work-stack (in progress); an edge into a
	// Gray vertex is a back edge and witnesses a cycle.
	Gray

	// Black: the vertex and all of its descendants are fully explored.
	Black
)

// String returns the conventional color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Gray:
		return "Gray"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// NoParent marks a traversal root in Result.Parent and "no root restriction"
// in Options.Root.
const NoParent = graph.Vertex(-1)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrRootNotFound indicates WithRoot named a vertex outside the
	// container's index range.
	ErrRootNotFound = errors.New("dfs: root vertex not found")

	// ErrCycleDetected indicates TopologicalSort observed a back edge; the
	// graph is not a DAG and has no topological order.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates TopologicalSort was asked to order an
	// Undirected container, where every edge is a trivial two-vertex cycle.
	ErrUndirected = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*Options)

// VertexHook is invoked with a vertex descriptor; returning an error aborts
// the traversal with that error.
type VertexHook func(v graph.Vertex) error

// EdgeHook is invoked with an edge descriptor; returning an error aborts the
// traversal with that error.
type EdgeHook func(e graph.Edge) error

// Options holds configurable parameters for DFS traversal: cancellation,
// root restriction, and the visitor hooks. Complexity stays O(V+E) when all
// hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Root, when not NoParent, restricts the traversal to the single tree
	// reachable from this vertex. Default is NoParent: a full-forest
	// traversal restarting from every unvisited vertex in ascending order.
	Root graph.Vertex

	// OnDiscover fires when a vertex is first reached, right after it turns
	// Gray (pre-order).
	OnDiscover VertexHook

	// OnFinish fires after all of a vertex's outgoing edges were examined,
	// right after it turns Black (post-order), before it is appended to
	// Result.Order.
	OnFinish VertexHook

	// OnExamine fires for every outgoing edge before classification.
	OnExamine EdgeHook

	// OnTreeEdge fires for edges leading to a White vertex; the traversal
	// descends through them.
	OnTreeEdge EdgeHook

	// OnBackEdge fires for edges leading to a Gray vertex: an ancestor still
	// in progress, i.e. a cycle.
	OnBackEdge EdgeHook

	// OnForwardCrossEdge fires for edges leading to a Black vertex.
	OnForwardCrossEdge EdgeHook
}

// DefaultOptions returns an Options struct with a Background context, no
// root restriction, and every hook unset.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Root: NoParent,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRoot returns an Option restricting the traversal to the tree reachable
// from v. DFS fails with ErrRootNotFound when v is out of range.
func WithRoot(v graph.Vertex) Option {
	return func(o *Options) { o.Root = v }
}

// WithOnDiscover returns an Option installing fn as the pre-order vertex hook.
func WithOnDiscover(fn VertexHook) Option {
	return func(o *Options) { o.OnDiscover = fn }
}

// WithOnFinish returns an Option installing fn as the post-order vertex hook.
func WithOnFinish(fn VertexHook) Option {
	return func(o *Options) { o.OnFinish = fn }
}

// WithOnExamine returns an Option installing fn on every outgoing edge.
func WithOnExamine(fn EdgeHook) Option {
	return func(o *Options) { o.OnExamine = fn }
}

// WithOnTreeEdge returns an Option installing fn on tree edges.
func WithOnTreeEdge(fn EdgeHook) Option {
	return func(o *Options) { o.OnTreeEdge = fn }
}

// WithOnBackEdge returns an Option installing fn on back edges.
func WithOnBackEdge(fn EdgeHook) Option {
	return func(o *Options) { o.OnBackEdge = fn }
}

// WithOnForwardCrossEdge returns an Option installing fn on forward/cross
// edges.
func WithOnForwardCrossEdge(fn EdgeHook) Option {
	return func(o *Options) { o.OnForwardCrossEdge = fn }
}

// Result captures the outcome of a depth-first traversal. When DFS returns
// an error, Result holds the state reached up to the abort.
type Result struct {
	// Order records vertices in the sequence they turned Black (finish
	// order). For a DAG, reversing Order yields a topological order.
	Order []graph.Vertex

	// Parent maps each vertex to the vertex it was first discovered from;
	// roots and unvisited vertices hold NoParent.
	Parent []graph.Vertex

	// Colors holds the final visitation state of every vertex. After a
	// completed full-forest traversal all entries are Black.
	Colors []Color

	// BackEdges counts the back edges observed; nonzero means the traversed
	// portion of the graph contains a cycle.
	BackEdges int
}
