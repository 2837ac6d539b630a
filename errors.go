// Package digraph: sentinel errors for container operations.
//
// Every failure of a public operation is a precondition violation
// attributable to caller input; there are no internal fatal errors.
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") so that the
// returned error carries a human-readable reason while remaining
// discriminable via errors.Is.

package digraph

import "errors"

var (
	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("digraph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrDuplicateEdge indicates AddEdge was called for an ordered (from, to)
	// pair that already has an edge.
	ErrDuplicateEdge = errors.New("digraph: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("digraph: edge not found")

	// ErrNegativeWeight indicates a WeightFunc produced a negative weight
	// during shortest-path computation.
	ErrNegativeWeight = errors.New("digraph: negative edge weight encountered")
)
