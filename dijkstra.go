// Package digraph: Dijkstra single-source shortest paths.
//
// FindShortestPaths processes vertices in order of increasing distance
// from the start using a min-heap priority queue with the lazy
// decrease-key strategy: an improved distance pushes a fresh heap entry,
// and stale entries are skipped on pop via the visited set.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the heap at most once: V extractions.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E) — distance/predecessor maps plus heap entries.

package digraph

import (
	"container/heap"
	"fmt"
	"math"
)

// FindShortestPaths computes, via Dijkstra's algorithm, the minimum total
// weight from start to every vertex reachable from it under the graph's
// current edges, using weightOf to extract a non-negative weight from
// each edge payload. Each call recomputes from scratch; nothing is
// memoized across calls.
//
// The result maps every vertex ID in the graph to its predecessor on a
// shortest path from start. The start vertex itself, and any vertex
// unreachable from it, maps to its own ID — a self-loop sentinel, not a
// real edge.
//
// Returns ErrVertexNotFound if start is not in the graph, and
// ErrNegativeWeight the first time weightOf yields a negative value.
// Complexity: O((V + E) log V).
func (g *Digraph[V, E]) FindShortestPaths(start int, weightOf WeightFunc[E]) (map[int]int, error) {
	if _, ok := g.vertices[start]; !ok {
		return nil, fmt.Errorf("%w: start vertex %d", ErrVertexNotFound, start)
	}

	n := len(g.vertices)

	// dist holds the tentative distance per vertex: +Inf until relaxed.
	dist := make(map[int]float64, n)
	// prev starts as the self-map sentinel; relaxation overwrites it for
	// every vertex actually reached, so start and unreached vertices keep
	// mapping to themselves.
	prev := make(map[int]int, n)
	// visited marks vertices whose distance is finalized.
	visited := make(map[int]bool, n)
	for id := range g.vertices {
		dist[id] = math.Inf(1)
		prev[id] = id
	}
	dist[start] = 0

	pq := make(distPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{id: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.id
		// Skip stale entries left behind by lazy decrease-key.
		if visited[u] {
			continue
		}
		visited[u] = true

		// Relax every edge outgoing from u.
		for _, e := range g.vertices[u].out {
			w := weightOf(e.info)
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.from, e.to, w)
			}
			candidate := dist[u] + w
			// Strictly-less keeps equal-cost ties on their first owner and
			// avoids pushing duplicates for no gain.
			if candidate >= dist[e.to] {
				continue
			}
			dist[e.to] = candidate
			prev[e.to] = u
			heap.Push(&pq, &distItem{id: e.to, dist: candidate})
		}
	}

	return prev, nil
}

// distItem pairs a vertex ID with its tentative distance from the start.
type distItem struct {
	id   int
	dist float64
}

// distPQ is a min-heap of *distItem ordered by dist ascending, used with
// container/heap. Outdated entries remain in the heap and are ignored
// when popped (checked against the visited set).
type distPQ []*distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *distItem.
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
