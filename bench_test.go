package digraph_test

import (
	"testing"

	"github.com/katalvlaran/digraph"
)

// unit assigns every edge the same weight, keeping the benchmarks focused
// on traversal cost rather than the weight function.
func unit(float64) float64 { return 1 }

// benchCycle builds a single directed cycle of n vertices.
func benchCycle(n int) *digraph.Digraph[struct{}, float64] {
	g := digraph.New[struct{}, float64]()
	for id := 0; id < n; id++ {
		_ = g.AddVertex(id, struct{}{})
	}
	for id := 0; id < n; id++ {
		_ = g.AddEdge(id, (id+1)%n, 1)
	}

	return g
}

// benchGrid builds an M×M grid with right and down edges (M² vertices,
// 2·M·(M−1) edges), IDs row-major.
func benchGrid(m int) *digraph.Digraph[struct{}, float64] {
	g := digraph.New[struct{}, float64]()
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			_ = g.AddVertex(i*m+j, struct{}{})
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i+1 < m {
				_ = g.AddEdge(i*m+j, (i+1)*m+j, 1)
			}
			if j+1 < m {
				_ = g.AddEdge(i*m+j, i*m+j+1, 1)
			}
		}
	}

	return g
}

// BenchmarkBuildChain measures vertex+edge insertion for a linear chain.
func BenchmarkBuildChain(b *testing.B) {
	const n = 10000

	b.ReportAllocs()
	b.SetBytes(int64(2 * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := digraph.New[struct{}, float64]()
		for id := 0; id <= n; id++ {
			_ = g.AddVertex(id, struct{}{})
		}
		for id := 0; id < n; id++ {
			_ = g.AddEdge(id, id+1, 1)
		}
	}
}

// BenchmarkIsStronglyConnected_Cycle measures both traversal passes on a
// cycle, the worst case where each pass must cover every vertex.
func BenchmarkIsStronglyConnected_Cycle(b *testing.B) {
	const n = 10000
	g := benchCycle(n)

	b.ReportAllocs()
	b.SetBytes(int64(2 * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.IsStronglyConnected()
	}
}

// BenchmarkFindShortestPaths_Grid measures Dijkstra on an M×M grid.
func BenchmarkFindShortestPaths_Grid(b *testing.B) {
	const m = 100
	g := benchGrid(m)
	v := m * m
	e := 2 * m * (m - 1)

	b.ReportAllocs()
	b.SetBytes(int64(v + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.FindShortestPaths(0, unit)
	}
}

// BenchmarkClone_Grid measures the deep copy on an M×M grid.
func BenchmarkClone_Grid(b *testing.B) {
	const m = 100
	g := benchGrid(m)
	v := m * m
	e := 2 * m * (m - 1)

	b.ReportAllocs()
	b.SetBytes(int64(v + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
