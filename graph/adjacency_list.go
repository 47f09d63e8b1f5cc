package graph

import "iter"

// panicBadDirectedness is raised when NewList receives an out-of-range
// policy value (programmer error).
const panicBadDirectedness = "graph: NewList: invalid Directedness"

// outEdge is one out-adjacency record of a vertex: the vertex the edge leads
// to and the edge's position in the backing store.
type outEdge struct {
	tar Vertex
	pos int
}

// inEdge is one in-adjacency record of a vertex, maintained only under the
// Bidirectional policy.
type inEdge struct {
	src Vertex
	pos int
}

// storedVertex owns one vertex's adjacency records and its property value.
type storedVertex[VP any] struct {
	out  []outEdge
	in   []inEdge // Bidirectional only
	prop VP
}

// storedEdge owns one edge's endpoints and its property value. Its slice
// position is the edge's stable descriptor position.
type storedEdge[EP any] struct {
	src  Vertex
	tar  Vertex
	prop EP
}

// List is an adjacency-list graph container, generic over the per-vertex
// property type VP and the per-edge property type EP. Use struct{} for
// either when no property is needed.
//
// How an edge is linked depends on the construction-time Directedness:
// Directed populates the source's out list only; Undirected links the edge
// into both endpoints' out lists (each side sees it leaving itself);
// Bidirectional populates the source's out list and the target's in list.
//
// Incidence queries cost time proportional to local degree. Vertices and
// edges cannot be removed, so descriptors stay valid forever.
type List[VP, EP any] struct {
	kind  Directedness
	verts []storedVertex[VP]
	edges []storedEdge[EP]
}

// NewList creates an adjacency-list container with the given directedness
// policy and n pre-created vertices carrying zero-valued properties.
// Panics on an out-of-range policy or negative n (programmer error).
// Complexity: O(n).
func NewList[VP, EP any](d Directedness, n int) *List[VP, EP] {
	if d > Bidirectional || n < 0 {
		panic(panicBadDirectedness)
	}
	l := &List[VP, EP]{kind: d}
	if n > 0 {
		l.verts = make([]storedVertex[VP], n)
	}

	return l
}

// Directedness reports the container's edge-linkage policy.
func (l *List[VP, EP]) Directedness() Directedness { return l.kind }

// NumVertices returns the number of vertices. Complexity: O(1).
func (l *List[VP, EP]) NumVertices() int { return len(l.verts) }

// NumEdges returns the number of stored edges, undirected edges counted
// once. Complexity: O(1).
func (l *List[VP, EP]) NumEdges() int { return len(l.edges) }

// AddVertex appends a new vertex carrying prop and returns its stable index.
// Complexity: O(1) amortized.
func (l *List[VP, EP]) AddVertex(prop VP) Vertex {
	l.verts = append(l.verts, storedVertex[VP]{prop: prop})

	return Vertex(len(l.verts) - 1)
}

// AddEdge inserts an edge u→v carrying prop and returns its descriptor.
//
// Checked contract violations:
//   - ErrInvalidVertex when either endpoint is out of range
//   - ErrSelfLoop when u == v
//   - ErrDuplicateEdge when an edge between the pair already exists
//     (either orientation under the Undirected policy)
//
// Complexity: O(outDegree(u)) for the duplicate check, O(1) amortized insert.
func (l *List[VP, EP]) AddEdge(u, v Vertex, prop EP) (Edge, error) {
	if !l.hasVertex(u) || !l.hasVertex(v) {
		return Edge{}, ErrInvalidVertex
	}
	if u == v {
		return Edge{}, ErrSelfLoop
	}
	for _, oe := range l.verts[u].out {
		if oe.tar == v {
			return Edge{}, ErrDuplicateEdge
		}
	}

	pos := len(l.edges)
	l.edges = append(l.edges, storedEdge[EP]{src: u, tar: v, prop: prop})
	l.verts[u].out = append(l.verts[u].out, outEdge{tar: v, pos: pos})
	switch l.kind {
	case Undirected:
		// Mirror so the edge is reachable from both endpoints.
		l.verts[v].out = append(l.verts[v].out, outEdge{tar: u, pos: pos})
	case Bidirectional:
		l.verts[v].in = append(l.verts[v].in, inEdge{src: u, pos: pos})
	case Directed:
		// Out list only.
	}

	return Edge{Src: u, Tar: v, pos: pos}, nil
}

// HasEdge reports whether an edge leaves u toward v. Under the Undirected
// policy the mirror entry makes the check symmetric.
// Complexity: O(outDegree(u)).
func (l *List[VP, EP]) HasEdge(u, v Vertex) bool {
	if !l.hasVertex(u) {
		return false
	}
	for _, oe := range l.verts[u].out {
		if oe.tar == v {
			return true
		}
	}

	return false
}

// Vertices returns the lazy ascending sequence of all vertex descriptors.
func (l *List[VP, EP]) Vertices() iter.Seq[Vertex] {
	return countingSeq(len(l.verts))
}

// Edges returns a lazy sequence over the backing edge store in insertion
// order, each descriptor carrying its storage position.
func (l *List[VP, EP]) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for pos := range l.edges {
			e := &l.edges[pos]
			if !yield(Edge{Src: e.src, Tar: e.tar, pos: pos}) {
				return
			}
		}
	}
}

// OutEdges returns a lazy sequence of the edges leaving v, with Src == v on
// every yielded descriptor. An out-of-range v yields an empty sequence.
// Complexity: O(outDegree(v)) for a full sweep.
func (l *List[VP, EP]) OutEdges(v Vertex) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !l.hasVertex(v) {
			return
		}
		for _, oe := range l.verts[v].out {
			if !yield(Edge{Src: v, Tar: oe.tar, pos: oe.pos}) {
				return
			}
		}
	}
}

// InEdges returns a lazy sequence of the edges entering v, with Tar == v on
// every yielded descriptor. Under the Directed policy no in lists exist, so
// the sequence scans the backing edge store in O(E); the other policies
// answer in O(inDegree(v)). An out-of-range v yields an empty sequence.
func (l *List[VP, EP]) InEdges(v Vertex) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !l.hasVertex(v) {
			return
		}
		switch l.kind {
		case Undirected:
			for _, oe := range l.verts[v].out {
				if !yield(Edge{Src: oe.tar, Tar: v, pos: oe.pos}) {
					return
				}
			}
		case Bidirectional:
			for _, ie := range l.verts[v].in {
				if !yield(Edge{Src: ie.src, Tar: v, pos: ie.pos}) {
					return
				}
			}
		case Directed:
			for pos := range l.edges {
				if l.edges[pos].tar == v {
					if !yield(Edge{Src: l.edges[pos].src, Tar: v, pos: pos}) {
						return
					}
				}
			}
		}
	}
}

// OutDegree returns the number of edges leaving v.
// Complexity: O(1). Returns ErrInvalidVertex when v is out of range.
func (l *List[VP, EP]) OutDegree(v Vertex) (int, error) {
	if !l.hasVertex(v) {
		return 0, ErrInvalidVertex
	}

	return len(l.verts[v].out), nil
}

// InDegree returns the number of edges entering v. O(1) under the Undirected
// and Bidirectional policies; the Directed policy keeps no in lists and
// counts in O(E). Returns ErrInvalidVertex when v is out of range.
func (l *List[VP, EP]) InDegree(v Vertex) (int, error) {
	if !l.hasVertex(v) {
		return 0, ErrInvalidVertex
	}
	switch l.kind {
	case Undirected:
		return len(l.verts[v].out), nil
	case Bidirectional:
		return len(l.verts[v].in), nil
	default:
		count := 0
		for i := range l.edges {
			if l.edges[i].tar == v {
				count++
			}
		}

		return count, nil
	}
}

// VertexProp returns a pointer to v's property value for reading or in-place
// mutation. Complexity: O(1). Returns ErrInvalidVertex when v is out of range.
func (l *List[VP, EP]) VertexProp(v Vertex) (*VP, error) {
	if !l.hasVertex(v) {
		return nil, ErrInvalidVertex
	}

	return &l.verts[v].prop, nil
}

// EdgeProp returns a pointer to e's property value for reading or in-place
// mutation. Mirrored descriptors of the same undirected edge share one
// property. Complexity: O(1). Returns ErrInvalidEdge when e does not address
// a stored edge.
func (l *List[VP, EP]) EdgeProp(e Edge) (*EP, error) {
	if e.pos < 0 || e.pos >= len(l.edges) {
		return nil, ErrInvalidEdge
	}

	return &l.edges[e.pos].prop, nil
}

func (l *List[VP, EP]) hasVertex(v Vertex) bool {
	return v >= 0 && int(v) < len(l.verts)
}
