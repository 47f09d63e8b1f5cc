// Package graph provides vertex/edge containers with two interchangeable
// storage strategies — an adjacency list and an adjacency matrix — behind a
// uniform, descriptor-based query surface.
//
// Key features:
//   - List: adjacency-list container in three directedness variants
//     (Directed, Undirected, Bidirectional), generic over per-vertex and
//     per-edge property types
//   - Matrix: directed adjacency-matrix container with a fixed vertex count
//   - Descriptors: Vertex (dense stable index) and Edge (endpoints plus
//     storage position) — small values, never pointers
//   - Lazy ranges: Vertices, Edges, OutEdges, InEdges are iter.Seq sequences
//   - Interface: the minimal surface algorithms traverse, satisfied by both
//     containers
//
// Vertices and edges cannot be removed, so descriptors stay valid for the
// container's whole lifetime. Incidence queries cost time proportional to
// local degree (row length for Matrix), not to global size.
//
// Errors:
//
//   - ErrInvalidVertex  - vertex descriptor out of range.
//   - ErrInvalidEdge    - edge descriptor out of range.
//   - ErrSelfLoop       - AddEdge(u, u); loops are unsupported.
//   - ErrDuplicateEdge  - AddEdge over an existing edge.
//
// Contract violations that would silently corrupt adjacency invariants are
// rejected with these sentinels instead of proceeding.
//
// Containers are not safe for concurrent use.
package graph
