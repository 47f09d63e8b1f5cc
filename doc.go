// Package dstk is a small toolkit of classic in-memory containers and the
// algorithms that consume them — an ordered map and a pair of graph
// representations with depth-first search built on top.
//
// 🚀 What is dstk?
//
//	A pure-Go, single-threaded container library that brings together:
//		• ordered/ — a key-ordered associative map backed by an unbalanced
//		  binary search tree, with cursor navigation and structural equality
//		• graph/   — adjacency-list and adjacency-matrix containers sharing
//		  one descriptor-based query surface
//		• dfs/     — depth-first search with visitor hooks, edge
//		  classification, and topological sorting
//
// ✨ Why choose dstk?
//
//   - Honest complexity – textbook asymptotics, documented per operation
//   - Checked failure modes – duplicate edges, self-loops, empty containers
//     and cycles all surface as sentinel errors, never as silent corruption
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – DFS exposes discovery/finish and tree/back/forward-cross
//     edge hooks, so new algorithms plug in without touching the traversal
//
// Everything is organized under three subpackages:
//
//	ordered/ — Tree, Cursor, ascending/descending iteration, Clone, Equal
//	graph/   — List (Directed/Undirected/Bidirectional), Matrix, descriptors
//	dfs/     — DFS with hooks, TopologicalSort
//
// Quick ASCII example:
//
//	6 ──▶ 3 ──▶ 4
//	│           │
//	▼           ▼
//	1 ◀── 5 ──▶ 2
//
// a DAG whose topological order places 6 and 5 before everything they reach.
//
// Containers are not safe for concurrent use; callers that share an instance
// across goroutines must serialize access themselves.
//
//	go get github.com/vrelsted/dstk
package dstk
