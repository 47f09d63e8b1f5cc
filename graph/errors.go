// Package graph: sentinel error set. All container operations return these
// sentinels so callers can branch with errors.Is; none of the containers
// panic on user-triggered conditions.
package graph

import "errors"

var (
	// ErrInvalidVertex indicates a vertex descriptor outside the container's
	// dense index range.
	ErrInvalidVertex = errors.New("graph: vertex descriptor out of range")

	// ErrInvalidEdge indicates an edge descriptor whose storage position does
	// not address a stored edge.
	ErrInvalidEdge = errors.New("graph: edge descriptor out of range")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints;
	// self-loops are unsupported by both containers.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates AddEdge was called for an endpoint pair that
	// already has an edge. Proceeding would corrupt adjacency invariants, so
	// the insertion is rejected.
	ErrDuplicateEdge = errors.New("graph: edge already exists")
)
