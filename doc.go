// Package digraph provides a generic, in-memory directed graph container
// with caller-supplied vertex and edge payloads, plus two built-in
// analyses: a strong-connectivity test and Dijkstra single-source
// shortest paths.
//
// The container is parameterized over two payload types:
//
//	g := digraph.New[CityInfo, RoadInfo]()
//
// Vertices are identified by caller-chosen integer IDs (not necessarily
// contiguous or zero-based); edges are identified by their ordered
// (from, to) endpoint pair. At most one edge may exist per ordered pair,
// both endpoints of an edge must exist while the edge exists, and
// removing a vertex cascades to every edge incident to it.
//
// Mutation and queries:
//
//	AddVertex / RemoveVertex / AddEdge / RemoveEdge
//	Vertices / Edges / EdgesFrom / VertexInfo / EdgeInfo
//	VertexCount / EdgeCount / EdgeCountFrom / HasVertex / HasEdge
//
// Value semantics:
//
//	Clone  — O(V+E) deep copy, fully independent of the original
//	Move   — O(1) ownership transfer, leaving the source valid and empty
//	Clear  — reset to the empty graph
//
// Analyses (read-only, recomputed on every call):
//
//	IsStronglyConnected — true iff every vertex reaches every other
//	ReachableFrom       — vertices reachable from a given start
//	FindShortestPaths   — Dijkstra predecessor map under a WeightFunc
//
// Every violated precondition is reported through one of the sentinel
// errors (ErrDuplicateVertex, ErrVertexNotFound, ErrDuplicateEdge,
// ErrEdgeNotFound, ErrNegativeWeight), wrapped with context and
// discriminable via errors.Is. No operation mutates the graph before all
// of its preconditions have been confirmed.
//
// Digraph is not safe for concurrent use; callers needing shared access
// must serialize externally (for example, one mutex guarding the whole
// graph) or hand each goroutine its own Clone.
package digraph
