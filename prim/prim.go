// Package prim implements greedy vertex-growth MST construction with an
// ordered step trace. See doc.go for the full contract.
package prim

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// Build computes the Minimum Spanning Tree of the undirected, weighted
// graph g, growing outwards from the start vertex and admitting one
// minimum-weight boundary edge per round.
//
// Steps:
//  1. Validate: g != nil. An empty graph returns an empty Result with
//     Complete == true (zero vertices are trivially covered).
//  2. Validate start: start != "" and g.HasVertex(start).
//  3. Pre-scan all edges; any negative weight fails fast with
//     ErrNegativeWeight before construction begins.
//  4. Initialize visited = {start}, empty edge list, zero cost.
//  5. While |visited| < |V|:
//     a. Scan visited vertices in admission order; for each, scan its
//     adjacency in insertion order; candidates are edges to unvisited
//     endpoints.
//     b. Keep the candidate with strictly smallest weight — on equal
//     weights the earlier-encountered candidate is kept, which makes
//     tie-breaking deterministic for a fixed graph.
//     c. No candidate → the component of start is exhausted: stop, the
//     result is partial (Complete == false). Not an error.
//     d. Otherwise admit the edge: mark its endpoint visited, append it,
//     accumulate its weight, emit a Step to the trace/hook.
//  6. Complete == true iff every vertex was visited.
//
// The returned Result is self-contained; g is never mutated.
//
// Complexity: O(V·E) time, O(V) space (O(V²) with WithTrace).
func Build(g *core.Graph, start string, opts ...Option) (*Result, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// Resolve functional options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1a. Empty graph: nothing to span, trivially complete.
	n := g.VertexCount()
	if n == 0 {
		return &Result{Edges: []core.Edge{}, Complete: true}, nil
	}

	// 2. Validate the start vertex.
	if start == "" {
		return nil, ErrEmptyStart
	}
	if !g.HasVertex(start) {
		return nil, core.ErrVertexNotFound
	}

	// 3. Pre-scan for negative weights; fail fast with edge context.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4. Initialize working state.
	visitedOrder := make([]string, 0, n) // admission order; also the scan order
	visitedOrder = append(visitedOrder, start)
	visited := map[string]bool{start: true}

	res := &Result{
		Edges:    make([]core.Edge, 0, n-1),
		Complete: false,
	}
	if o.Trace {
		res.Trace = make([]Step, 0, n-1)
	}

	// 5. Grow the tree one vertex per round.
	for len(visitedOrder) < n {
		// 5a/5b. Scan the whole visited boundary for the minimum candidate.
		best, found := minBoundaryEdge(g, visitedOrder, visited)

		// 5c. Reachable component exhausted: partial result, no error.
		if !found {
			break
		}

		// 5d. Admit the selected edge.
		visited[best.To] = true
		visitedOrder = append(visitedOrder, best.To)
		res.Edges = append(res.Edges, best)
		res.TotalCost += best.Weight

		step := Step{
			Index:     len(res.Edges),
			Edge:      best,
			Visited:   sortedSnapshot(visitedOrder),
			TotalCost: res.TotalCost,
		}
		if o.Trace {
			res.Trace = append(res.Trace, step)
		}
		o.OnAdmit(step)
	}

	// 6. Completeness flag: did we cover every vertex?
	res.Complete = len(visitedOrder) == n

	return res, nil
}

// minBoundaryEdge scans visited vertices in admission order and their
// adjacency in insertion order, returning the smallest-weight edge to an
// unvisited endpoint. Strict "<" keeps the first minimum encountered, which
// is the documented tie-break. found is false when no candidate exists.
func minBoundaryEdge(g *core.Graph, visitedOrder []string, visited map[string]bool) (best core.Edge, found bool) {
	for _, u := range visitedOrder {
		// Neighbors never fails for members of visitedOrder: every entry was
		// validated or admitted from the same graph.
		neighbors, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			if visited[e.To] {
				continue
			}
			if !found || e.Weight < best.Weight {
				best = e
				found = true
			}
		}
	}

	return best, found
}

// sortedSnapshot copies the visited set into a fresh sorted slice for
// presentation in a Step.
func sortedSnapshot(visitedOrder []string) []string {
	out := make([]string, len(visitedOrder))
	copy(out, visitedOrder)
	sort.Strings(out)

	return out
}
