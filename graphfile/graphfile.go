// Package graphfile loads weighted undirected graphs from YAML adjacency
// documents and validates them before handing out a core.Graph.
//
// Document shape — a mapping from vertex to its neighbor→weight mapping,
// the textbook adjacency-dictionary form:
//
//	A: {B: 2, C: 3}
//	B: {A: 2, C: 1, D: 4, E: 5}
//	C: {A: 3, B: 1, D: 3}
//	D: {B: 4, C: 3, E: 1}
//	E: {B: 5, D: 1}
//
// An isolated vertex is written with an empty mapping (`C: {}`).
//
// Validation (hardened, fail-fast):
//   - every neighbor must appear as a top-level vertex and list the edge
//     back with the same weight (ErrAsymmetric) — the document represents
//     an undirected graph via two mirrored entries;
//   - weights must be non-negative (ErrNegativeWeight);
//   - self-loops are rejected (wraps core.ErrSelfLoop).
//
// Determinism: vertices and neighbors are inserted into the graph in
// sorted order, so a loaded document always yields the same canonical
// iteration order regardless of YAML map ordering.
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors for document validation.
var (
	// ErrAsymmetric indicates a neighbor entry without a matching mirrored
	// entry, or with a mirrored entry of a different weight.
	ErrAsymmetric = errors.New("graphfile: asymmetric adjacency")

	// ErrNegativeWeight indicates a negative edge weight in the document.
	ErrNegativeWeight = errors.New("graphfile: negative edge weight")
)

// document is the YAML shape: vertex → neighbor → weight.
type document map[string]map[string]int64

// Parse decodes a YAML adjacency document, validates it, and builds a
// core.Graph with sorted canonical insertion order.
//
// Steps:
//  1. Unmarshal into the vertex→neighbor→weight mapping.
//  2. Validate every entry: known neighbors, mirrored weights, no
//     negatives, no self-loops.
//  3. Insert vertices in sorted order, then edges in sorted (u, v) order;
//     each undirected edge is added once (u < v).
//
// Complexity: O(V log V + E log E).
func Parse(data []byte) (*core.Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	return build(doc)
}

// Load reads and parses the YAML adjacency document at path.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// validate checks the undirected invariants of the raw document.
func validate(doc document) error {
	for u, nbrs := range doc {
		if u == "" {
			return fmt.Errorf("graphfile: %w", core.ErrEmptyVertexID)
		}
		for v, w := range nbrs {
			if v == u {
				return fmt.Errorf("graphfile: vertex %q: %w", u, core.ErrSelfLoop)
			}
			if w < 0 {
				return fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, u, v, w)
			}
			back, ok := doc[v]
			if !ok {
				return fmt.Errorf("%w: %s lists %s, but %s has no entry", ErrAsymmetric, u, v, v)
			}
			wBack, ok := back[u]
			if !ok {
				return fmt.Errorf("%w: %s lists %s, but not vice versa", ErrAsymmetric, u, v)
			}
			if wBack != w {
				return fmt.Errorf("%w: %s—%s is %d one way and %d the other", ErrAsymmetric, u, v, w, wBack)
			}
		}
	}

	return nil
}

// build inserts the validated document into a fresh graph in sorted order.
func build(doc document) (*core.Graph, error) {
	g := core.NewGraph()

	vertices := make([]string, 0, len(doc))
	for u := range doc {
		vertices = append(vertices, u)
	}
	sort.Strings(vertices)

	// Register vertices first so isolated ones survive.
	for _, u := range vertices {
		if err := g.AddVertex(u); err != nil {
			return nil, fmt.Errorf("graphfile: %w", err)
		}
	}

	// Add each undirected edge once, from its lexicographically smaller end.
	for _, u := range vertices {
		nbrs := make([]string, 0, len(doc[u]))
		for v := range doc[u] {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		for _, v := range nbrs {
			if u < v {
				if err := g.AddEdge(u, v, doc[u][v]); err != nil {
					return nil, fmt.Errorf("graphfile: %w", err)
				}
			}
		}
	}

	return g, nil
}
