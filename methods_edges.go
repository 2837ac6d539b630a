// Package digraph: edge lifecycle and edge-scoped queries.
//
// At most one edge exists per ordered (from, to) pair, so edge lookups
// scan the source vertex's owned out-list (O(deg) with small constants).
// Removal rebuilds the out-list in place rather than erasing during
// iteration, which keeps the scan position valid throughout.

package digraph

import (
	"fmt"
	"sort"
)

// AddEdge creates an edge from 'from' to 'to' carrying the given payload,
// appended to the end of 'from's outgoing list.
// Returns ErrVertexNotFound if either endpoint is absent, and
// ErrDuplicateEdge if an edge for that ordered pair already exists.
// Complexity: O(deg(from)).
func (g *Digraph[V, E]) AddEdge(from, to int, info E) error {
	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: edge endpoint %d", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return fmt.Errorf("%w: edge endpoint %d", ErrVertexNotFound, to)
	}
	for _, e := range src.out {
		if e.to == to {
			return fmt.Errorf("%w: edge %d→%d", ErrDuplicateEdge, from, to)
		}
	}
	src.out = append(src.out, edge[E]{from: from, to: to, info: info})

	return nil
}

// RemoveEdge deletes exactly the edge from 'from' to 'to'.
// Returns ErrVertexNotFound if either endpoint is absent, and
// ErrEdgeNotFound if no edge exists for that ordered pair.
// Complexity: O(deg(from)).
func (g *Digraph[V, E]) RemoveEdge(from, to int) error {
	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: edge endpoint %d", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return fmt.Errorf("%w: edge endpoint %d", ErrVertexNotFound, to)
	}
	found := false
	for _, e := range src.out {
		if e.to == to {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: edge %d→%d", ErrEdgeNotFound, from, to)
	}
	src.out = dropEdges(src.out, func(e edge[E]) bool { return e.to == to })

	return nil
}

// HasEdge reports whether an edge from 'from' to 'to' exists.
// Complexity: O(deg(from)).
func (g *Digraph[V, E]) HasEdge(from, to int) bool {
	src, ok := g.vertices[from]
	if !ok {
		return false
	}
	for _, e := range src.out {
		if e.to == to {
			return true
		}
	}

	return false
}

// EdgeInfo returns the payload stored on the edge from 'from' to 'to'.
// Returns the zero E and ErrVertexNotFound if either endpoint is absent,
// or ErrEdgeNotFound if the edge does not exist.
// Complexity: O(deg(from)).
func (g *Digraph[V, E]) EdgeInfo(from, to int) (E, error) {
	var zero E
	src, ok := g.vertices[from]
	if !ok {
		return zero, fmt.Errorf("%w: edge endpoint %d", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return zero, fmt.Errorf("%w: edge endpoint %d", ErrVertexNotFound, to)
	}
	for _, e := range src.out {
		if e.to == to {
			return e.info, nil
		}
	}

	return zero, fmt.Errorf("%w: edge %d→%d", ErrEdgeNotFound, from, to)
}

// Edges returns every edge in the graph as (From, To) pairs, sorted by
// From then To for deterministic iteration.
// Complexity: O(E log E).
func (g *Digraph[V, E]) Edges() []EdgePair {
	pairs := make([]EdgePair, 0, g.EdgeCount())
	for _, v := range g.vertices {
		for _, e := range v.out {
			pairs = append(pairs, EdgePair{From: e.from, To: e.to})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})

	return pairs
}

// EdgesFrom returns the (From, To) pairs of the edges outgoing from the
// given vertex, in the order they were added.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(vertex)).
func (g *Digraph[V, E]) EdgesFrom(id int) ([]EdgePair, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: vertex %d", ErrVertexNotFound, id)
	}
	pairs := make([]EdgePair, 0, len(v.out))
	for _, e := range v.out {
		pairs = append(pairs, EdgePair{From: e.from, To: e.to})
	}

	return pairs, nil
}

// EdgeCount returns the total number of edges across all vertices.
// Complexity: O(V).
func (g *Digraph[V, E]) EdgeCount() int {
	total := 0
	for _, v := range g.vertices {
		total += len(v.out)
	}

	return total
}

// EdgeCountFrom returns the number of edges outgoing from the given vertex.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Digraph[V, E]) EdgeCountFrom(id int) (int, error) {
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: vertex %d", ErrVertexNotFound, id)
	}

	return len(v.out), nil
}

// dropEdges rebuilds out in place, keeping only edges for which drop
// returns false. Safe regardless of how many entries match.
func dropEdges[E any](out []edge[E], drop func(edge[E]) bool) []edge[E] {
	kept := out[:0]
	for _, e := range out {
		if !drop(e) {
			kept = append(kept, e)
		}
	}

	return kept
}
