package graph

import "iter"

// panicNegativeSize is raised when NewMatrix receives a negative vertex
// count (programmer error).
const panicNegativeSize = "graph: NewMatrix: vertex count must be >= 0"

// Matrix is a directed adjacency-matrix graph container with a vertex count
// fixed at construction. Cell (u,v) of the row-major backing slice records
// whether the edge u→v exists.
//
// Edge descriptors use the cell index as their storage position, so they
// remain comparable with each other and stable for the container's lifetime.
// Row scans answer out-edge queries, column scans in-edge queries; both are
// O(n) in the vertex count rather than in the edge count.
type Matrix struct {
	n     int
	cells []bool // row-major: cells[u*n+v] == edge u→v exists
	m     int    // number of set cells
}

// NewMatrix creates an adjacency-matrix container over n vertices and no
// edges. Panics on negative n (programmer error).
// Complexity: O(n²) allocation.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		panic(panicNegativeSize)
	}

	return &Matrix{n: n, cells: make([]bool, n*n)}
}

// Directedness reports Directed; the matrix stores one orientation per cell.
func (g *Matrix) Directedness() Directedness { return Directed }

// NumVertices returns the fixed vertex count. Complexity: O(1).
func (g *Matrix) NumVertices() int { return g.n }

// NumEdges returns the number of existing edges. Complexity: O(1).
func (g *Matrix) NumEdges() int { return g.m }

// AddEdge inserts the edge u→v and returns its descriptor.
//
// Checked contract violations:
//   - ErrInvalidVertex when either endpoint is out of range
//   - ErrSelfLoop when u == v
//   - ErrDuplicateEdge when cell (u,v) is already set
//
// Complexity: O(1).
func (g *Matrix) AddEdge(u, v Vertex) (Edge, error) {
	if !g.hasVertex(u) || !g.hasVertex(v) {
		return Edge{}, ErrInvalidVertex
	}
	if u == v {
		return Edge{}, ErrSelfLoop
	}
	idx := int(u)*g.n + int(v)
	if g.cells[idx] {
		return Edge{}, ErrDuplicateEdge
	}
	g.cells[idx] = true
	g.m++

	return Edge{Src: u, Tar: v, pos: idx}, nil
}

// HasEdge reports whether the edge u→v exists. Out-of-range endpoints report
// false. Complexity: O(1).
func (g *Matrix) HasEdge(u, v Vertex) bool {
	if !g.hasVertex(u) || !g.hasVertex(v) {
		return false
	}

	return g.cells[int(u)*g.n+int(v)]
}

// Vertices returns the lazy ascending sequence of all vertex descriptors.
func (g *Matrix) Vertices() iter.Seq[Vertex] {
	return countingSeq(g.n)
}

// Edges returns a lazy sequence over all existing edges in row-major cell
// order. Complexity: O(n²) for a full sweep.
func (g *Matrix) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for idx, set := range g.cells {
			if !set {
				continue
			}
			if !yield(Edge{Src: Vertex(idx / g.n), Tar: Vertex(idx % g.n), pos: idx}) {
				return
			}
		}
	}
}

// OutEdges returns a lazy sequence of the edges leaving v: a scan of row v.
// An out-of-range v yields an empty sequence. Complexity: O(n) per sweep.
func (g *Matrix) OutEdges(v Vertex) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !g.hasVertex(v) {
			return
		}
		row := int(v) * g.n
		for t := 0; t < g.n; t++ {
			if !g.cells[row+t] {
				continue
			}
			if !yield(Edge{Src: v, Tar: Vertex(t), pos: row + t}) {
				return
			}
		}
	}
}

// InEdges returns a lazy sequence of the edges entering v: a scan of column
// v. An out-of-range v yields an empty sequence. Complexity: O(n) per sweep.
func (g *Matrix) InEdges(v Vertex) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !g.hasVertex(v) {
			return
		}
		for s := 0; s < g.n; s++ {
			idx := s*g.n + int(v)
			if !g.cells[idx] {
				continue
			}
			if !yield(Edge{Src: Vertex(s), Tar: v, pos: idx}) {
				return
			}
		}
	}
}

// OutDegree counts the set cells of row v.
// Complexity: O(n). Returns ErrInvalidVertex when v is out of range.
func (g *Matrix) OutDegree(v Vertex) (int, error) {
	if !g.hasVertex(v) {
		return 0, ErrInvalidVertex
	}
	count := 0
	row := int(v) * g.n
	for t := 0; t < g.n; t++ {
		if g.cells[row+t] {
			count++
		}
	}

	return count, nil
}

// InDegree counts the set cells of column v.
// Complexity: O(n). Returns ErrInvalidVertex when v is out of range.
func (g *Matrix) InDegree(v Vertex) (int, error) {
	if !g.hasVertex(v) {
		return 0, ErrInvalidVertex
	}
	count := 0
	for s := 0; s < g.n; s++ {
		if g.cells[s*g.n+int(v)] {
			count++
		}
	}

	return count, nil
}

func (g *Matrix) hasVertex(v Vertex) bool {
	return v >= 0 && int(v) < g.n
}
