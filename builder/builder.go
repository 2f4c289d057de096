// Package builder provides deterministic graph constructors for tests,
// benchmarks and demos.
//
// Design contract (strict):
//   - Determinism: same inputs (IDs, weight function, seed) ⇒ identical
//     graphs, including insertion order, which downstream algorithms use
//     for tie-breaking.
//   - Safety: never panic; validate parameters early and return sentinel
//     errors.
//   - Edges are emitted in a stable, documented order per constructor.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors for builder constructors.
var (
	// ErrTooFewVertices indicates a topology that needs more vertices than supplied.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNilWeightFunc indicates a nil WeightFunc was supplied.
	ErrNilWeightFunc = errors.New("builder: nil weight function")

	// ErrTooFewEdges indicates a requested edge count below the connectivity minimum.
	ErrTooFewEdges = errors.New("builder: too few edges for a connected graph")
)

// WeightFunc computes the weight of the edge u—v. Implementations must be
// deterministic for the constructors to stay reproducible.
type WeightFunc func(u, v string) int64

// ConstWeight returns a WeightFunc assigning the same weight to every edge.
func ConstWeight(w int64) WeightFunc {
	return func(_, _ string) int64 { return w }
}

// Path builds the path ids[0]—ids[1]—...—ids[n-1].
// Edge emission order follows the slice. Needs ≥ 2 vertices.
func Path(ids []string, wf WeightFunc) (*core.Graph, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("Path: %w: got %d, need 2", ErrTooFewVertices, len(ids))
	}
	if wf == nil {
		return nil, fmt.Errorf("Path: %w", ErrNilWeightFunc)
	}

	g := core.NewGraph()
	for i := 1; i < len(ids); i++ {
		if err := g.AddEdge(ids[i-1], ids[i], wf(ids[i-1], ids[i])); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds the cycle over ids: the path plus the closing edge
// ids[n-1]—ids[0]. Needs ≥ 3 vertices.
func Cycle(ids []string, wf WeightFunc) (*core.Graph, error) {
	if len(ids) < 3 {
		return nil, fmt.Errorf("Cycle: %w: got %d, need 3", ErrTooFewVertices, len(ids))
	}

	g, err := Path(ids, wf)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	last, first := ids[len(ids)-1], ids[0]
	if err = g.AddEdge(last, first, wf(last, first)); err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}

	return g, nil
}

// Complete builds the complete graph over ids. Edges are emitted in
// lexicographic pair order of the slice indices: (0,1), (0,2), ..., (1,2), ...
// Needs ≥ 2 vertices.
func Complete(ids []string, wf WeightFunc) (*core.Graph, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("Complete: %w: got %d, need 2", ErrTooFewVertices, len(ids))
	}
	if wf == nil {
		return nil, fmt.Errorf("Complete: %w", ErrNilWeightFunc)
	}

	g := core.NewGraph()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := g.AddEdge(ids[i], ids[j], wf(ids[i], ids[j])); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return g, nil
}

// Star builds a star with the given center connected to every leaf,
// in leaf slice order. Needs ≥ 1 leaf.
func Star(center string, leaves []string, wf WeightFunc) (*core.Graph, error) {
	if len(leaves) < 1 {
		return nil, fmt.Errorf("Star: %w: got 0 leaves, need 1", ErrTooFewVertices)
	}
	if wf == nil {
		return nil, fmt.Errorf("Star: %w", ErrNilWeightFunc)
	}

	g := core.NewGraph()
	for _, leaf := range leaves {
		if err := g.AddEdge(center, leaf, wf(center, leaf)); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}

	return g, nil
}

// RandomConnected builds a connected graph with n vertices ("V0".."V<n-1>")
// and edgeCount total edges:
//   - a chain V0—V1—...—V(n-1) with weights in [1,10] guarantees connectivity;
//   - the remaining edges link random distinct pairs with weights in [1,100],
//     skipping pairs that already have an edge.
//
// The RNG is seeded from seed, so equal arguments always reproduce the same
// graph, edge order included.
func RandomConnected(n, edgeCount int, seed int64) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("RandomConnected: %w: got %d, need 2", ErrTooFewVertices, n)
	}
	if edgeCount < n-1 {
		return nil, fmt.Errorf("RandomConnected: %w: got %d, need %d", ErrTooFewEdges, edgeCount, n-1)
	}
	if max := n * (n - 1) / 2; edgeCount > max {
		return nil, fmt.Errorf("RandomConnected: %w: %d edges exceed the simple-graph maximum %d", ErrTooFewVertices, edgeCount, max)
	}

	g := core.NewGraph()
	r := rand.New(rand.NewSource(seed))

	// Connectivity backbone.
	for i := 1; i < n; i++ {
		u, v := fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i)
		if err := g.AddEdge(u, v, int64(1+r.Intn(10))); err != nil {
			return nil, fmt.Errorf("RandomConnected: %w", err)
		}
	}

	// Extra random edges until the requested total is reached.
	for g.EdgeCount() < edgeCount {
		ui, vi := r.Intn(n), r.Intn(n)
		if ui == vi {
			continue
		}
		u, v := fmt.Sprintf("V%d", ui), fmt.Sprintf("V%d", vi)
		if _, err := g.Weight(u, v); err == nil {
			continue // pair already connected; re-adding would just overwrite
		}
		if err := g.AddEdge(u, v, int64(1+r.Intn(100))); err != nil {
			return nil, fmt.Errorf("RandomConnected: %w", err)
		}
	}

	return g, nil
}
