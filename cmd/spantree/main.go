// Command spantree is an interactive Minimum Spanning Tree simulator.
//
// It loads a weighted undirected graph (a YAML adjacency document, or a
// built-in 5-vertex example), asks for a start vertex, runs Prim's
// algorithm with a step-by-step trace, prints the trace and the final
// tree, and optionally writes Graphviz DOT / Mermaid renderings with the
// tree edges highlighted.
//
// Usage:
//
//	spantree [-graph graph.yaml] [-start A] [-dot out.dot] [-mermaid out.mmd]
//
// With no -start flag the program prompts on stdin; a blank or unknown
// answer falls back to the first vertex in sorted order. All start-vertex
// validation happens here — the prim package itself is strict and fails on
// an invalid start.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/graphfile"
	"github.com/katalvlaran/spantree/prim"
	"github.com/katalvlaran/spantree/render"
	"github.com/katalvlaran/spantree/viz"
)

func main() {
	graphPath := flag.String("graph", "", "Path to a YAML adjacency document (empty = built-in example graph)")
	start := flag.String("start", "", "Start vertex for Prim (empty = ask interactively)")
	dotPath := flag.String("dot", "", "Write a Graphviz DOT rendering with the tree highlighted to this path")
	mermaidPath := flag.String("mermaid", "", "Write a Mermaid rendering with the tree highlighted to this path")

	flag.Parse()

	g, err := loadGraph(*graphPath)
	if err != nil {
		log.Fatalf("cannot load graph: %v", err)
	}
	if g.VertexCount() == 0 {
		log.Fatal("the graph has no vertices")
	}

	fmt.Println("==========================================")
	fmt.Println("   MINIMUM SPANNING TREE SIMULATOR (PRIM)  ")
	fmt.Println("==========================================")
	fmt.Println()

	if err = render.WriteGraph(os.Stdout, g); err != nil {
		log.Fatalf("render graph: %v", err)
	}
	fmt.Println()

	from := resolveStart(g, *start)

	res, err := prim.Build(g, from, prim.WithTrace())
	if err != nil {
		log.Fatalf("build MST: %v", err)
	}

	if err = render.WriteTrace(os.Stdout, from, res); err != nil {
		log.Fatalf("render trace: %v", err)
	}
	if err = render.WriteResult(os.Stdout, res); err != nil {
		log.Fatalf("render result: %v", err)
	}

	if len(res.Edges) == 0 {
		if *dotPath != "" || *mermaidPath != "" {
			fmt.Println("\nNo tree edges to highlight; skipping diagram output.")
		}
		return
	}
	if *dotPath != "" {
		writeDiagram(*dotPath, g, res, viz.MarshalDOT)
	}
	if *mermaidPath != "" {
		writeDiagram(*mermaidPath, g, res, viz.MarshalMermaid)
	}
}

// loadGraph returns the YAML document at path, or the built-in example
// graph when path is empty.
func loadGraph(path string) (*core.Graph, error) {
	if path != "" {
		return graphfile.Load(path)
	}

	return exampleGraph(), nil
}

// exampleGraph builds the canonical 5-vertex demo graph:
//
//	A—B(2), A—C(3), B—C(1), B—D(4), B—E(5), C—D(3), D—E(1)
func exampleGraph() *core.Graph {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 3)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("B", "D", 4)
	_ = g.AddEdge("B", "E", 5)
	_ = g.AddEdge("C", "D", 3)
	_ = g.AddEdge("D", "E", 1)

	return g
}

// resolveStart produces a guaranteed-valid start vertex: the -start flag if
// valid, else an interactive prompt, else the first vertex in sorted order.
// The fallback lives here on purpose; the prim core never substitutes a
// default.
func resolveStart(g *core.Graph, flagStart string) string {
	fallback := g.SortedVertices()[0]

	choice := flagStart
	if choice == "" {
		fmt.Printf("Available vertices: %s\n", strings.Join(g.SortedVertices(), " "))
		fmt.Printf("Choose a start vertex for Prim (default %s): ", fallback)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			line = ""
		}
		choice = strings.TrimSpace(line)
	}

	if choice == "" || !g.HasVertex(choice) {
		if choice != "" {
			fmt.Printf("Vertex %q not in the graph; using %q instead.\n", choice, fallback)
		} else {
			fmt.Printf("Using default start vertex %q.\n", fallback)
		}
		return fallback
	}

	return choice
}

// writeDiagram marshals the graph with the tree highlighted and writes it
// to path.
func writeDiagram(path string, g *core.Graph, res *prim.Result, marshal func(*core.Graph, []core.Edge) ([]byte, error)) {
	data, err := marshal(g, res.Edges)
	if err != nil {
		log.Fatalf("marshal diagram: %v", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("\nDiagram written to %s\n", path)
}
