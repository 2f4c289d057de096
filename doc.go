// Package spantree is a step-by-step Minimum Spanning Tree simulator
// built around Prim's algorithm — grow a tree from a chosen vertex,
// watch every admission, render the result.
//
// 🚀 What is spantree?
//
//	A small, thread-safe library (plus a demo binary) that brings together:
//		• Core primitives: a weighted, undirected graph with deterministic iteration order
//		• MST builder: greedy vertex-growth Prim with an ordered step trace
//		• Graph definition: deterministic constructors & a YAML adjacency loader
//		• Presentation: console rendering of the graph, the trace and the final tree
//		• Visualization: Graphviz DOT and Mermaid output with MST edges highlighted
//
// ✨ Why choose spantree?
//
//   - Teaching-friendly – every admission is observable via hooks or the trace
//   - Deterministic – iteration order is part of the contract, ties break reproducibly
//   - Honest about disconnection – a partial tree is a result, not an error
//   - Extensible – functional options (WithTrace, WithOnAdmit…) for custom logic
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — fundamental Graph and Edge types & thread-safe primitives
//	prim/      — the MST builder: greedy growth, trace, completeness flag
//	builder/   — deterministic graph constructors (path, cycle, complete, star, random)
//	graphfile/ — YAML adjacency documents → validated core.Graph
//	render/    — plain-text presentation of graphs, traces and results
//	viz/       — DOT & Mermaid marshaling with tree-edge highlighting
//	cmd/       — spantree, the interactive simulator binary
//
// Quick ASCII example:
//
//	    A──2──B
//	    │     │
//	    3     1
//	    │     │
//	    C──1──B   →  MST from A: A─B(2), B─C(1), total 3
//
// Dive into the per-package docs for algorithm contracts, tie-break rules
// and worked examples.
//
//	go get github.com/katalvlaran/spantree
package spantree
