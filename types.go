// Package digraph: central types and the Digraph constructor.
//
// Digraph stores vertices in an ID-indexed map; each vertex exclusively
// owns its ordered list of outgoing edges. Edges reference their "to"
// endpoint purely by ID (a lookup key into the same map), so no shared
// state or back-pointers exist anywhere in the representation. This is
// what makes Clone a plain structural copy and Move a plain map handoff.

package digraph

// EdgePair identifies an edge by its ordered (From, To) endpoints.
// It is the listing currency of Edges and EdgesFrom.
type EdgePair struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int
}

// WeightFunc converts an edge payload into a non-negative weight for
// shortest-path computation. The container never inspects payloads
// itself; this is the single point where edge data becomes numeric.
// Returning a negative value aborts FindShortestPaths with
// ErrNegativeWeight.
type WeightFunc[E any] func(info E) float64

// edge is one outgoing arc, owned by its source vertex.
type edge[E any] struct {
	from int
	to   int
	info E
}

// vertex couples a payload with the ordered outgoing-edge list it owns.
type vertex[V, E any] struct {
	info V
	out  []edge[E]
}

// Digraph is a directed graph with V-typed vertex payloads and E-typed
// edge payloads. The zero value is not usable; construct with New.
//
// Digraph is not safe for concurrent use (see the package documentation).
type Digraph[V, E any] struct {
	// vertices maps vertex ID → vertex. Each entry owns its out-list;
	// no other structure references edges.
	vertices map[int]*vertex[V, E]
}

// New creates an empty Digraph with no vertices and no edges.
// Complexity: O(1).
func New[V, E any]() *Digraph[V, E] {
	return &Digraph[V, E]{vertices: make(map[int]*vertex[V, E])}
}
