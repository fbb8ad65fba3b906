package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/orkit/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random dense graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre‐build graph once
	b.ResetTimer()                   // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkKruskalForest measures performance of the forest-tolerant variant
// on the same random dense graph.
func BenchmarkKruskalForest(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre‐build graph once
	b.ResetTimer()                   // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.KruskalForest(g)
	}
}
