// Package render writes plain-text presentations of graphs, construction
// traces and final trees to an io.Writer.
//
// The output format follows the classic console simulator layout: an
// adjacency listing for the graph, one block per admission for the trace,
// and a final summary with the tree edges and total cost. Rendering is
// strictly read-only over its inputs; all formatting decisions live here,
// none in the algorithm.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim"
)

const rule = "------------------------------------------"

// WriteGraph prints the adjacency listing of g, one line per vertex in
// sorted order, neighbors in insertion order:
//
//	Graph (vertex -> neighbor(weight)):
//	  A -> B(2), C(3)
func WriteGraph(w io.Writer, g *core.Graph) error {
	if _, err := fmt.Fprintln(w, "Graph (vertex -> neighbor(weight)):"); err != nil {
		return err
	}
	for _, u := range g.SortedVertices() {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		parts := make([]string, 0, len(neighbors))
		for _, e := range neighbors {
			parts = append(parts, fmt.Sprintf("%s(%d)", e.To, e.Weight))
		}
		if _, err = fmt.Fprintf(w, "  %s -> %s\n", u, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	return nil
}

// WriteTrace prints the step-by-step construction banner and one block per
// admission: chosen edge, admitted vertex, sorted tree vertices, running
// cost. The result must carry a trace (prim.WithTrace); a trace-less result
// renders the banner only.
func WriteTrace(w io.Writer, start string, res *prim.Result) error {
	if _, err := fmt.Fprintf(w, "====== PRIM SIMULATOR - STEP BY STEP ======\nStart vertex: %s\n%s\n", start, rule); err != nil {
		return err
	}
	for _, s := range res.Trace {
		_, err := fmt.Fprintf(w,
			"\nStep %d:\n  Chosen edge: %s -- %s (weight %d)\n  Vertex admitted: %s\n  Tree vertices now: [%s]\n  Running cost: %d\n%s\n",
			s.Index, s.Edge.From, s.Edge.To, s.Edge.Weight, s.Edge.To,
			strings.Join(s.Visited, " "), s.TotalCost, rule)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteResult prints the final tree summary. A partial result (Complete ==
// false) is announced explicitly so the reader can tell a finished tree
// from an exhausted component.
func WriteResult(w io.Writer, res *prim.Result) error {
	if !res.Complete {
		if _, err := fmt.Fprintln(w, "\nThe graph is NOT fully connectable from the start vertex."); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\n====== MINIMUM SPANNING TREE RESULT ======"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Tree edges:"); err != nil {
		return err
	}
	for _, e := range res.Edges {
		if _, err := fmt.Fprintf(w, "  %s -- %s (weight %d)\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total tree cost: %d\n", res.TotalCost)

	return err
}
