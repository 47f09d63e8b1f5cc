package dfs_test

import (
	"fmt"

	"github.com/vrelsted/dstk/dfs"
	"github.com/vrelsted/dstk/graph"
)

// ExampleDFS demonstrates a depth-first traversal on a diamond-shaped DAG.
// Graph structure:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//
// Expected finish order (post-order): 3 1 2 0
func ExampleDFS() {
	g := graph.NewList[struct{}, struct{}](graph.Directed, 4)
	for _, p := range [][2]graph.Vertex{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		if _, err := g.AddEdge(p[0], p[1], struct{}{}); err != nil {
			fmt.Println("error:", err)

			return
		}
	}

	res, err := dfs.DFS(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(res.Order)

	// Output:
	// [3 1 2 0]
}

// ExampleTopologicalSort orders the build steps of a small dependency graph.
// Edges point from prerequisite to dependent:
//
//	6→3, 6→1, 5→1, 5→2, 3→4, 4→2
func ExampleTopologicalSort() {
	g := graph.NewList[struct{}, struct{}](graph.Directed, 7)
	for _, p := range [][2]graph.Vertex{{6, 3}, {6, 1}, {5, 1}, {5, 2}, {3, 4}, {4, 2}} {
		if _, err := g.AddEdge(p[0], p[1], struct{}{}); err != nil {
			fmt.Println("error:", err)

			return
		}
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(order)

	// Output:
	// [6 5 3 4 2 1 0]
}

// ExampleTopologicalSort_cycle shows the checked failure on a cyclic graph.
func ExampleTopologicalSort_cycle() {
	g := graph.NewMatrix(2)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 0)

	_, err := dfs.TopologicalSort(g)
	fmt.Println(err)

	// Output:
	// dfs: cycle detected
}
