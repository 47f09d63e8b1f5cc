// Package dfs: topological sorting on top of the DFS hooks.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// edge u→v, u appears before v. It is a thin layer over DFS: an OnFinish
// hook records finish order, an OnBackEdge hook turns any cycle into
// ErrCycleDetected, and the recorded order is reversed before returning —
// finish order is the reverse of a valid topological order for a DAG.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"errors"

	"github.com/vrelsted/dstk/graph"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil.
// If g uses the Undirected policy, returns ErrUndirected.
// If a back edge is observed (the graph is not a DAG), returns
// ErrCycleDetected instead of a meaningless order.
// You may pass WithCancelContext(ctx) to enable cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g graph.Interface, options ...TopoOption) ([]graph.Vertex, error) {
	// 1. Validate the container.
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Undirected edges are two-vertex cycles; only Directed and
	//    Bidirectional containers can be ordered.
	if g.Directedness() == graph.Undirected {
		return nil, ErrUndirected
	}
	// 3. Apply optional settings.
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 4. Drive the traversal through hooks only: record finish times, abort
	//    on the first back edge.
	order := make([]graph.Vertex, 0, g.NumVertices())
	_, err := DFS(g,
		WithContext(opts.ctx),
		WithOnFinish(func(v graph.Vertex) error {
			order = append(order, v)

			return nil
		}),
		WithOnBackEdge(func(graph.Edge) error {
			return ErrCycleDetected
		}),
	)
	if err != nil {
		// DFS wraps hook errors with position context; surface the bare
		// sentinel for the cycle case so callers can match it directly.
		if errors.Is(err, ErrCycleDetected) {
			return nil, ErrCycleDetected
		}

		return nil, err
	}

	// 5. Reverse finish order to produce the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
