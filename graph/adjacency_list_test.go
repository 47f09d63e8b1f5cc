package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrelsted/dstk/graph"
)

// collectEdges drains a lazy edge sequence into a slice.
func collectEdges(seq func(yield func(graph.Edge) bool)) []graph.Edge {
	var out []graph.Edge
	seq(func(e graph.Edge) bool {
		out = append(out, e)

		return true
	})

	return out
}

// noProp builds a property-less directed list with n vertices.
func noProp(d graph.Directedness, n int) *graph.List[struct{}, struct{}] {
	return graph.NewList[struct{}, struct{}](d, n)
}

func TestList_AddVertexAssignsDenseIndices(t *testing.T) {
	g := graph.NewList[string, struct{}](graph.Directed, 0)
	assert.Equal(t, 0, g.NumVertices())

	for i := 0; i < 5; i++ {
		v := g.AddVertex("")
		assert.Equal(t, graph.Vertex(i), v)
	}
	assert.Equal(t, 5, g.NumVertices())
}

func TestList_PreCreatedVertices(t *testing.T) {
	g := noProp(graph.Directed, 3)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())

	var got []graph.Vertex
	for v := range g.Vertices() {
		got = append(got, v)
	}
	assert.Equal(t, []graph.Vertex{0, 1, 2}, got)
}

func TestList_AddEdgeContractViolations(t *testing.T) {
	g := noProp(graph.Directed, 3)

	_, err := g.AddEdge(0, 0, struct{}{})
	assert.ErrorIs(t, err, graph.ErrSelfLoop)

	_, err = g.AddEdge(0, 7, struct{}{})
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = g.AddEdge(-1, 1, struct{}{})
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)

	_, err = g.AddEdge(0, 1, struct{}{})
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, struct{}{})
	assert.ErrorIs(t, err, graph.ErrDuplicateEdge)

	// A failed insertion must leave the container untouched.
	assert.Equal(t, 1, g.NumEdges())
}

func TestList_DirectedAdjacency(t *testing.T) {
	g := noProp(graph.Directed, 3)
	e01, err := g.AddEdge(0, 1, struct{}{})
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, struct{}{})
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, struct{}{})
	require.NoError(t, err)

	assert.Equal(t, graph.Vertex(0), e01.Source())
	assert.Equal(t, graph.Vertex(1), e01.Target())
	assert.Equal(t, 0, e01.Pos())

	// Directed: the reverse orientation must not exist.
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))

	out := collectEdges(g.OutEdges(0))
	require.Len(t, out, 2)
	assert.Equal(t, graph.Vertex(0), out[0].Src)
	assert.Equal(t, graph.Vertex(1), out[0].Tar)
	assert.Equal(t, graph.Vertex(2), out[1].Tar)

	d, err := g.OutDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	d, err = g.InDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d, "edges 0->1 and 2->1 enter vertex 1")

	in := collectEdges(g.InEdges(1))
	require.Len(t, in, 2)
	for _, e := range in {
		assert.Equal(t, graph.Vertex(1), e.Tar)
	}
}

func TestList_UndirectedMirrorsAdjacency(t *testing.T) {
	g := noProp(graph.Undirected, 2)
	e, err := g.AddEdge(0, 1, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumEdges(), "undirected edge stored once")

	// The edge is visible from both endpoints, each side seeing itself as
	// the source.
	out0 := collectEdges(g.OutEdges(0))
	out1 := collectEdges(g.OutEdges(1))
	require.Len(t, out0, 1)
	require.Len(t, out1, 1)
	assert.Equal(t, graph.Vertex(0), out0[0].Src)
	assert.Equal(t, graph.Vertex(1), out0[0].Tar)
	assert.Equal(t, graph.Vertex(1), out1[0].Src)
	assert.Equal(t, graph.Vertex(0), out1[0].Tar)
	assert.Equal(t, e.Pos(), out1[0].Pos(), "mirror entry identifies the same stored edge")

	// The mirror makes the duplicate check symmetric.
	_, err = g.AddEdge(1, 0, struct{}{})
	assert.ErrorIs(t, err, graph.ErrDuplicateEdge)

	d, err := g.InDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestList_BidirectionalInEdges(t *testing.T) {
	g := noProp(graph.Bidirectional, 4)
	_, err := g.AddEdge(0, 2, struct{}{})
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, struct{}{})
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, struct{}{})
	require.NoError(t, err)

	in := collectEdges(g.InEdges(2))
	require.Len(t, in, 2)
	assert.Equal(t, graph.Vertex(0), in[0].Src)
	assert.Equal(t, graph.Vertex(1), in[1].Src)

	d, err := g.InDegree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	d, err = g.OutDegree(2)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	// Out lists are unaffected by the in-list bookkeeping.
	out := collectEdges(g.OutEdges(2))
	require.Len(t, out, 1)
	assert.Equal(t, graph.Vertex(3), out[0].Tar)
}

func TestList_EdgesEnumeratesBackingStore(t *testing.T) {
	g := noProp(graph.Directed, 4)
	want := [][2]graph.Vertex{{0, 1}, {2, 3}, {1, 3}}
	for _, p := range want {
		_, err := g.AddEdge(p[0], p[1], struct{}{})
		require.NoError(t, err)
	}

	all := collectEdges(g.Edges())
	require.Len(t, all, len(want))
	for i, e := range all {
		assert.Equal(t, want[i][0], e.Src)
		assert.Equal(t, want[i][1], e.Tar)
		assert.Equal(t, i, e.Pos(), "descriptor carries its storage position")
	}
}

func TestList_Properties(t *testing.T) {
	type road struct{ km int }
	g := graph.NewList[string, road](graph.Directed, 0)
	a := g.AddVertex("Aarhus")
	b := g.AddVertex("Billund")
	e, err := g.AddEdge(a, b, road{km: 96})
	require.NoError(t, err)

	vp, err := g.VertexProp(a)
	require.NoError(t, err)
	assert.Equal(t, "Aarhus", *vp)

	// Property access returns a pointer: in-place mutation sticks.
	*vp = "Aarhus C"
	vp2, err := g.VertexProp(a)
	require.NoError(t, err)
	assert.Equal(t, "Aarhus C", *vp2)

	ep, err := g.EdgeProp(e)
	require.NoError(t, err)
	assert.Equal(t, 96, ep.km)

	_, err = g.VertexProp(42)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = g.EdgeProp(graph.Edge{})
	assert.NoError(t, err, "zero edge addresses position 0 while it exists")
	_, err = graph.NewList[string, road](graph.Directed, 1).EdgeProp(graph.Edge{})
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)
}

func TestList_DegreeOnInvalidVertex(t *testing.T) {
	g := noProp(graph.Directed, 1)
	_, err := g.OutDegree(9)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = g.InDegree(-2)
	assert.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestList_OutEdgesLazyEarlyStop(t *testing.T) {
	g := noProp(graph.Directed, 10)
	for v := graph.Vertex(1); v < 10; v++ {
		_, err := g.AddEdge(0, v, struct{}{})
		require.NoError(t, err)
	}

	seen := 0
	for range g.OutEdges(0) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestNewList_PanicsOnBadArguments(t *testing.T) {
	assert.Panics(t, func() { graph.NewList[struct{}, struct{}](graph.Directedness(9), 0) })
	assert.Panics(t, func() { graph.NewList[struct{}, struct{}](graph.Directed, -1) })
}
