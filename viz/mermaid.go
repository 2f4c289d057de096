package viz

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// MarshalMermaid renders g as a Mermaid flowchart (graph TD), highlighting
// the given tree edges with linkStyle declarations.
//
// Node lines are emitted for every vertex in sorted order so isolated
// vertices appear in the diagram; links follow in the graph's
// first-insertion edge order, which also fixes the linkStyle indices.
func MarshalMermaid(g *core.Graph, tree []core.Edge) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")

	for _, v := range g.SortedVertices() {
		fmt.Fprintf(&buf, "  %s[%s]\n", v, v)
	}

	inTree := treeSet(tree)
	var treeLinks []int
	for i, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s ---|%d| %s\n", e.From, e.Weight, e.To)
		if inTree[pairKey(e.From, e.To)] {
			treeLinks = append(treeLinks, i)
		}
	}

	for _, i := range treeLinks {
		fmt.Fprintf(&buf, "  linkStyle %d stroke:red,stroke-width:3px\n", i)
	}

	return buf.Bytes(), nil
}
