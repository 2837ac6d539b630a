// Package digraph: reachability traversal and the strong-connectivity test.
//
// Both routines are read-only and iterative: an explicit FIFO queue plus a
// visited set, never recursion, so call depth stays constant regardless of
// graph shape.

package digraph

import (
	"fmt"
	"sort"
)

// IsStronglyConnected reports whether every vertex can reach every other
// vertex by following directed edges. Graphs with zero or one vertex are
// trivially strongly connected.
//
// Rather than running a traversal from every vertex, a single root r is
// checked both ways: one traversal over the graph as given and one over
// the graph with every edge reversed. All vertices are reachable from r
// iff the forward pass covers the graph, and r is reachable from all
// vertices iff the reverse pass does; together the two passes imply full
// pairwise reachability through r. The second pass is skipped when the
// first already falls short.
// Complexity: O(V + E) per pass.
func (g *Digraph[V, E]) IsStronglyConnected() bool {
	n := len(g.vertices)
	if n <= 1 {
		return true
	}
	// Any vertex serves as the root.
	var root int
	for id := range g.vertices {
		root = id
		break
	}
	if len(g.traverse(root, g.forwardNeighbors())) != n {
		return false
	}

	return len(g.traverse(root, g.reverseNeighbors())) == n
}

// ReachableFrom returns the IDs of every vertex reachable from the given
// start vertex by following outgoing edges, including the start itself,
// sorted ascending.
// Returns ErrVertexNotFound if the start vertex does not exist.
// Complexity: O(V + E).
func (g *Digraph[V, E]) ReachableFrom(id int) ([]int, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: vertex %d", ErrVertexNotFound, id)
	}
	visited := g.traverse(id, g.forwardNeighbors())
	ids := make([]int, 0, len(visited))
	for v := range visited {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids, nil
}

// traverse runs a breadth-first walk from root, following neighbors to
// enumerate successors, and returns the visited set.
func (g *Digraph[V, E]) traverse(root int, neighbors func(int) []int) map[int]struct{} {
	visited := make(map[int]struct{}, len(g.vertices))
	visited[root] = struct{}{}
	queue := make([]int, 0, len(g.vertices))
	queue = append(queue, root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighbors(u) {
			if _, seen := visited[v]; seen {
				continue
			}
			visited[v] = struct{}{}
			queue = append(queue, v)
		}
	}

	return visited
}

// forwardNeighbors yields successors along edges as stored.
func (g *Digraph[V, E]) forwardNeighbors() func(int) []int {
	return func(u int) []int {
		out := g.vertices[u].out
		next := make([]int, 0, len(out))
		for _, e := range out {
			next = append(next, e.to)
		}

		return next
	}
}

// reverseNeighbors yields predecessors, i.e. successors in the graph with
// every edge direction flipped. The reversed adjacency is materialized
// once per call, not per lookup.
func (g *Digraph[V, E]) reverseNeighbors() func(int) []int {
	incoming := make(map[int][]int, len(g.vertices))
	for _, v := range g.vertices {
		for _, e := range v.out {
			incoming[e.to] = append(incoming[e.to], e.from)
		}
	}

	return func(u int) []int { return incoming[u] }
}
