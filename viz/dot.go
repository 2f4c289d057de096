package viz

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/spantree/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to a marshaler.
var ErrNilGraph = errors.New("viz: graph is nil")

// dotNode adapts a vertex ID to gonum's graph.Node and names it in DOT
// output via DOTID.
type dotNode struct {
	id    int64
	dotID string
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return n.dotID }

// dotEdge is a weighted undirected edge carrying its rendering attributes.
type dotEdge struct {
	f, t dotNode
	w    int64
	tree bool
}

func (e dotEdge) From() graph.Node { return e.f }
func (e dotEdge) To() graph.Node   { return e.t }
func (e dotEdge) Weight() float64  { return float64(e.w) }

func (e dotEdge) ReversedEdge() graph.Edge {
	e.f, e.t = e.t, e.f
	return e
}

// Attributes renders the weight label plus the tree/non-tree styling.
func (e dotEdge) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "label", Value: strconv.FormatInt(e.w, 10)},
	}
	if e.tree {
		attrs = append(attrs,
			encoding.Attribute{Key: "color", Value: "red"},
			encoding.Attribute{Key: "penwidth", Value: "3"},
		)
	} else {
		attrs = append(attrs, encoding.Attribute{Key: "color", Value: "gray"})
	}

	return attrs
}

// MarshalDOT renders g as a Graphviz DOT document, highlighting the given
// tree edges. Vertices are numbered in sorted-ID order; the DOT output
// names them by their original IDs.
func MarshalDOT(g *core.Graph, tree []core.Edge) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	dg := simple.NewWeightedUndirectedGraph(0, 0)

	// Stable vertex numbering: sorted IDs → 0..V-1.
	ids := make(map[string]int64, g.VertexCount())
	for i, v := range g.SortedVertices() {
		ids[v] = int64(i)
		dg.AddNode(dotNode{id: int64(i), dotID: v})
	}

	inTree := treeSet(tree)
	for _, e := range g.Edges() {
		dg.SetWeightedEdge(dotEdge{
			f:    dotNode{id: ids[e.From], dotID: e.From},
			t:    dotNode{id: ids[e.To], dotID: e.To},
			w:    e.Weight,
			tree: inTree[pairKey(e.From, e.To)],
		})
	}

	data, err := dot.Marshal(dg, "spantree", "", "  ")
	if err != nil {
		return nil, fmt.Errorf("viz: dot marshal: %w", err)
	}

	return data, nil
}

// pairKey canonicalizes an undirected vertex pair.
func pairKey(u, v string) string {
	if u > v {
		u, v = v, u
	}

	return u + "\x00" + v
}

// treeSet indexes tree edges by canonical pair for O(1) membership checks.
func treeSet(tree []core.Edge) map[string]bool {
	set := make(map[string]bool, len(tree))
	for _, e := range tree {
		set[pairKey(e.From, e.To)] = true
	}

	return set
}
