// Package viz marshals a core.Graph to diagram formats with the edges of a
// spanning tree highlighted over the remaining edges.
//
// Two formats are supported:
//
//   - Graphviz DOT via gonum's graph/simple and graph/encoding/dot: every
//     edge carries its weight as a label; tree edges are drawn red with
//     penwidth 3, non-tree edges gray. Feed the output to `dot -Tpng` (or
//     any Graphviz renderer) for the classic highlighted-tree picture.
//   - Mermaid flowchart text (graph TD): undirected links labeled with
//     weights, tree links styled via linkStyle. Paste into any
//     Mermaid-aware Markdown viewer.
//
// Both marshalers enumerate vertices in sorted order and edges in the
// graph's first-insertion order, so output is deterministic for a fixed
// graph. The tree argument is typically prim.Result.Edges; edge orientation
// within it is ignored (u—v and v—u highlight the same link). An empty or
// nil tree renders the plain graph with nothing highlighted.
package viz
