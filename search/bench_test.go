package search_test

import (
	"testing"

	"github.com/katalvlaran/statespace/search"
)

// BenchmarkBreadthFirst_Lattice explores a full 32×32 lattice with graph
// search (no goal), so every cell is expanded once.
func BenchmarkBreadthFirst_Lattice(b *testing.B) {
	const n = 32
	p := lattice(b, n, nil)
	bfs, err := search.NewBreadthFirst[cell](nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(p)
	}
}

// BenchmarkDepthFirst_Lattice dives to the far corner of the lattice.
func BenchmarkDepthFirst_Lattice(b *testing.B) {
	const n = 32
	goal := cell{n - 1, n - 1}
	p := lattice(b, n, &goal)
	dfs, err := search.NewDepthFirst[cell](nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(p)
	}
}
