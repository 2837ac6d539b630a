// Package digraph: value semantics — deep copy, ownership transfer, reset.

package digraph

// Clone returns a deep copy of the graph: every vertex, every edge, and
// every payload is duplicated by value, so mutating either graph never
// affects the other.
// Complexity: O(V + E).
func (g *Digraph[V, E]) Clone() *Digraph[V, E] {
	clone := &Digraph[V, E]{vertices: make(map[int]*vertex[V, E], len(g.vertices))}
	for id, v := range g.vertices {
		nv := &vertex[V, E]{info: v.info}
		if len(v.out) > 0 {
			nv.out = make([]edge[E], len(v.out))
			copy(nv.out, v.out)
		}
		clone.vertices[id] = nv
	}

	return clone
}

// Move transfers the graph's entire contents into a new Digraph without
// duplicating storage. The receiver is left valid and empty, ready for
// reuse; the returned graph is independently usable.
// Complexity: O(1).
func (g *Digraph[V, E]) Move() *Digraph[V, E] {
	moved := &Digraph[V, E]{vertices: g.vertices}
	g.vertices = make(map[int]*vertex[V, E])

	return moved
}

// Clear resets the graph to the empty state, discarding all vertices and
// edges.
// Complexity: O(1) — the old map is released to the garbage collector.
func (g *Digraph[V, E]) Clear() {
	g.vertices = make(map[int]*vertex[V, E])
}
