package prim_test

import (
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/prim"
)

// BenchmarkBuild_Sparse measures the naive scan on a sparse 100-vertex
// graph (150 edges), started from "V0".
func BenchmarkBuild_Sparse(b *testing.B) {
	g, err := builder.RandomConnected(100, 150, 42) // pre-build graph once
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim.Build(g, "V0")
	}
}

// BenchmarkBuild_Dense measures the naive scan on a dense 60-vertex graph
// (1000 edges), the worst case for the O(V·E) boundary rescan.
func BenchmarkBuild_Dense(b *testing.B) {
	g, err := builder.RandomConnected(60, 1000, 42)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim.Build(g, "V0")
	}
}

// BenchmarkBuild_Trace measures the overhead of per-step sorted snapshots.
func BenchmarkBuild_Trace(b *testing.B) {
	g, err := builder.RandomConnected(100, 150, 42)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim.Build(g, "V0", prim.WithTrace())
	}
}
