package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

// TestAddVertex_Basics verifies idempotent insertion and ID validation.
func TestAddVertex_Basics(t *testing.T) {
	g := core.NewGraph()

	// Empty ID must be rejected.
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	// First insertion succeeds.
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	// Re-insertion is a no-op.
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestAddEdge_SymmetryInvariant verifies that AddEdge writes both directions
// with the same weight, so the undirected invariant always holds.
func TestAddEdge_SymmetryInvariant(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2))

	wAB, err := g.Weight("A", "B")
	require.NoError(t, err)
	wBA, err := g.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, wAB, wBA)
	assert.Equal(t, int64(2), wAB)
}

// TestAddEdge_Validation verifies self-loop and empty-ID rejection.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	assert.Zero(t, g.VertexCount(), "failed AddEdge must not register vertices")
}

// TestAddEdge_OverwriteKeepsSingleEdge verifies that re-adding a pair
// updates the weight on both sides without creating a parallel edge.
func TestAddEdge_OverwriteKeepsSingleEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "A", 1)) // reversed orientation on purpose

	assert.Equal(t, 1, g.EdgeCount())
	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, int64(1), edges[0].Weight)
}

// TestIterationOrder_IsInsertionOrder pins the deterministic enumeration
// contract that tie-breaking algorithms rely on.
func TestIterationOrder_IsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	// Deliberately non-alphabetical insertion.
	require.NoError(t, g.AddEdge("C", "A", 3))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddVertex("Z"))
	require.NoError(t, g.AddEdge("A", "B", 2))

	// Vertices: first sighting order C, A, B, Z.
	assert.Equal(t, []string{"C", "A", "B", "Z"}, g.Vertices())
	// Sorted view is independent of insertion order.
	assert.Equal(t, []string{"A", "B", "C", "Z"}, g.SortedVertices())

	// Neighbors of C in insertion order: A then B.
	nbrs, err := g.Neighbors("C")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "A", nbrs[0].To)
	assert.Equal(t, "B", nbrs[1].To)

	// Neighbors of A: C was first (via C—A), then B.
	nbrs, err = g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "C", nbrs[0].To)
	assert.Equal(t, "B", nbrs[1].To)
}

// TestEdges_OncePerPair verifies Edges() yields each undirected edge exactly
// once, oriented and ordered by first insertion.
func TestEdges_OncePerPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 3))

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 2}, edges[0])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 1}, edges[1])
	assert.Equal(t, core.Edge{From: "A", To: "C", Weight: 3}, edges[2])
}

// TestQueries_UnknownVertex verifies sentinel errors on missing lookups.
func TestQueries_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := g.Neighbors("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Weight("X", "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Weight("A", "X")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestConcurrentReaders exercises the RWMutex path: many goroutines reading
// while a writer extends the graph must not race (run with -race).
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Vertices()
				_, _ = g.Neighbors("A")
				_ = g.Edges()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		_ = g.AddEdge("B", "C", int64(j))
	}
	wg.Wait()

	assert.Equal(t, 3, g.VertexCount())
}
