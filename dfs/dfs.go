package dfs

import (
	"fmt"
	"iter"

	"github.com/vrelsted/dstk/graph"
)

// walker encapsulates state during one DFS call.
type walker struct {
	graph graph.Interface // underlying container
	opts  Options         // traversal options
	res   *Result         // result collector
}

// frame is one entry of the explicit work-stack: a Gray vertex and its
// pulled out-edge sequence.
type frame struct {
	v    graph.Vertex
	next func() (graph.Edge, bool)
	stop func()
}

// DFS performs a depth-first traversal of g. By default it covers the whole
// forest, restarting from every unvisited vertex in ascending index order;
// WithRoot restricts it to a single tree. Returns the Result and the first
// error raised by a hook or by cancellation; on error the Result holds the
// state reached so far.
//
// The traversal uses an explicit work-stack instead of recursion, so depth
// is bounded by heap memory rather than the goroutine stack.
//
// Complexity: O(V + E) plus hook overhead; memory O(V).
func DFS(g graph.Interface, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-tree mode: verify the root descriptor.
	n := g.NumVertices()
	if dopts.Root != NoParent && (dopts.Root < 0 || int(dopts.Root) >= n) {
		return nil, ErrRootNotFound
	}

	// 4. Initialize result with capacity hints.
	res := &Result{
		Order:  make([]graph.Vertex, 0, n),
		Parent: make([]graph.Vertex, n),
		Colors: make([]Color, n),
	}
	for i := range res.Parent {
		res.Parent[i] = NoParent
	}

	w := &walker{graph: g, opts: dopts, res: res}

	// 5. Traverse: single tree or full forest.
	if dopts.Root != NoParent {
		if err := w.visit(dopts.Root); err != nil {
			return res, err
		}

		return res, nil
	}
	for u := range g.Vertices() {
		if res.Colors[u] == White {
			if err := w.visit(u); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// visit explores the tree rooted at root with an explicit work-stack,
// classifying every outgoing edge against the target's color and firing the
// configured hooks. Each vertex turns Gray when pushed and Black when its
// frame is popped.
func (w *walker) visit(root graph.Vertex) (err error) {
	stack := make([]frame, 0, 16)
	// Release the pull-iterators of any frames left behind by an abort.
	defer func() {
		for i := range stack {
			stack[i].stop()
		}
	}()

	push := func(v graph.Vertex) error {
		w.res.Colors[v] = Gray
		if w.opts.OnDiscover != nil {
			if hookErr := w.opts.OnDiscover(v); hookErr != nil {
				return fmt.Errorf("dfs: OnDiscover hook for vertex %d: %w", v, hookErr)
			}
		}
		next, stop := iter.Pull(w.graph.OutEdges(v))
		stack = append(stack, frame{v: v, next: next, stop: stop})

		return nil
	}

	if err = push(root); err != nil {
		return err
	}

	for len(stack) > 0 {
		// Cancellation check once per step.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		e, ok := top.next()
		if !ok {
			// All outgoing edges examined: finish the vertex.
			top.stop()
			v := top.v
			stack = stack[:len(stack)-1]
			w.res.Colors[v] = Black
			if w.opts.OnFinish != nil {
				if hookErr := w.opts.OnFinish(v); hookErr != nil {
					return fmt.Errorf("dfs: OnFinish hook for vertex %d: %w", v, hookErr)
				}
			}
			w.res.Order = append(w.res.Order, v)

			continue
		}

		if w.opts.OnExamine != nil {
			if hookErr := w.opts.OnExamine(e); hookErr != nil {
				return fmt.Errorf("dfs: OnExamine hook for edge %d->%d: %w", e.Src, e.Tar, hookErr)
			}
		}

		// Classify against the target's current color. In undirected
		// containers the mirrored entry pointing back at the parent shows up
		// as a back edge, the classic undirected-DFS reading.
		switch w.res.Colors[e.Tar] {
		case White:
			if w.opts.OnTreeEdge != nil {
				if hookErr := w.opts.OnTreeEdge(e); hookErr != nil {
					return fmt.Errorf("dfs: OnTreeEdge hook for edge %d->%d: %w", e.Src, e.Tar, hookErr)
				}
			}
			w.res.Parent[e.Tar] = e.Src
			if err = push(e.Tar); err != nil {
				return err
			}
		case Gray:
			w.res.BackEdges++
			if w.opts.OnBackEdge != nil {
				if hookErr := w.opts.OnBackEdge(e); hookErr != nil {
					return fmt.Errorf("dfs: OnBackEdge hook for edge %d->%d: %w", e.Src, e.Tar, hookErr)
				}
			}
		case Black:
			if w.opts.OnForwardCrossEdge != nil {
				if hookErr := w.opts.OnForwardCrossEdge(e); hookErr != nil {
					return fmt.Errorf("dfs: OnForwardCrossEdge hook for edge %d->%d: %w", e.Src, e.Tar, hookErr)
				}
			}
		}
	}

	return nil
}
