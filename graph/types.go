// Package graph: descriptor types, the directedness policy, and the shared
// container interface. Sentinel errors live in errors.go; the containers in
// adjacency_list.go and adjacency_matrix.go.
package graph

import "iter"

// Vertex is a dense, stable integer index identifying a vertex within its
// container. Indices are assigned at creation time in ascending order and
// are never reused, since removal is unsupported.
type Vertex int

// Edge identifies an edge by its endpoints and its position in the
// container's backing edge store. Edges are comparable values: two
// descriptors from the same container are equal when they identify the same
// stored edge with the same orientation.
//
// For mirrored undirected adjacency entries, Src is always the vertex the
// edge was enumerated from, so algorithms can rely on Src being "where I
// stand" and Tar being "where this edge leads".
type Edge struct {
	// Src is the source endpoint.
	Src Vertex

	// Tar is the target endpoint.
	Tar Vertex

	pos int // position in the backing edge store
}

// Source returns the source endpoint of the edge.
func (e Edge) Source() Vertex { return e.Src }

// Target returns the target endpoint of the edge.
func (e Edge) Target() Vertex { return e.Tar }

// Pos returns the edge's position in its container's backing store. Two
// descriptors with equal Pos identify the same stored edge regardless of
// orientation.
func (e Edge) Pos() int { return e.pos }

// Directedness selects how a container links an edge into its endpoints'
// adjacency records. It is a construction-time policy of the container, not
// a per-edge attribute.
type Directedness uint8

const (
	// Directed maintains out-edge records only; in-edge queries scan the
	// edge store.
	Directed Directedness = iota

	// Undirected links every edge into both endpoints' adjacency records, so
	// the edge is visible from either side.
	Undirected

	// Bidirectional maintains separate out- and in-edge records, both
	// populated on every insertion.
	Bidirectional
)

// String returns the policy name, or "Unknown" for out-of-range values.
func (d Directedness) String() string {
	switch d {
	case Directed:
		return "Directed"
	case Undirected:
		return "Undirected"
	case Bidirectional:
		return "Bidirectional"
	default:
		return "Unknown"
	}
}

// Interface is the minimal query surface shared by both containers and
// consumed by generic algorithms (dfs, topological sort). Implementations
// must enumerate Vertices in ascending index order and yield OutEdges with
// Src equal to the queried vertex.
type Interface interface {
	// NumVertices returns the number of vertices. Complexity: O(1).
	NumVertices() int

	// NumEdges returns the number of stored edges, each counted once even in
	// undirected containers. Complexity: O(1).
	NumEdges() int

	// Vertices returns a lazy ascending sequence of all vertex descriptors.
	Vertices() iter.Seq[Vertex]

	// Edges returns a lazy sequence over the backing edge store, descriptors
	// reconstructed with their storage position.
	Edges() iter.Seq[Edge]

	// OutEdges returns a lazy sequence of the edges leaving v. An
	// out-of-range v yields an empty sequence.
	OutEdges(v Vertex) iter.Seq[Edge]

	// Directedness reports the container's edge-linkage policy.
	Directedness() Directedness
}

// countingSeq yields 0..n-1 as Vertex descriptors, the lazy ascending range
// both containers use for Vertices.
func countingSeq(n int) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := 0; i < n; i++ {
			if !yield(Vertex(i)) {
				return
			}
		}
	}
}
