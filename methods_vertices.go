// Package digraph: vertex lifecycle and vertex-scoped queries.
//
// All preconditions are checked before any mutation, so a failed call
// leaves the graph exactly as it was.

package digraph

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given ID and payload.
// The vertex starts with an empty outgoing-edge list.
// Returns ErrDuplicateVertex if a vertex with that ID is already present.
// Complexity: O(1) amortized.
func (g *Digraph[V, E]) AddVertex(id int, info V) error {
	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: vertex %d", ErrDuplicateVertex, id)
	}
	g.vertices[id] = &vertex[V, E]{info: info}

	return nil
}

// RemoveVertex deletes the vertex with the given ID together with every
// incident edge: its own outgoing list and, in every other vertex's list,
// each edge whose "to" endpoint is id.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(V + E) — every surviving out-list is scanned once.
func (g *Digraph[V, E]) RemoveVertex(id int) error {
	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: vertex %d", ErrVertexNotFound, id)
	}
	// Dropping the vertex discards its outgoing edges with it.
	delete(g.vertices, id)
	// Incoming edges: rebuild each remaining out-list without edges to id.
	for _, v := range g.vertices {
		v.out = dropEdges(v.out, func(e edge[E]) bool { return e.to == id })
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Digraph[V, E]) HasVertex(id int) bool {
	_, exists := g.vertices[id]

	return exists
}

// VertexInfo returns the payload stored for the given vertex.
// Returns the zero V and ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Digraph[V, E]) VertexInfo(id int) (V, error) {
	v, ok := g.vertices[id]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: vertex %d", ErrVertexNotFound, id)
	}

	return v.info, nil
}

// Vertices returns the IDs of every vertex, sorted ascending for
// deterministic iteration.
// Complexity: O(V log V).
func (g *Digraph[V, E]) Vertices() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Digraph[V, E]) VertexCount() int {
	return len(g.vertices)
}
