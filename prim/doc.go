// Package prim builds a Minimum Spanning Tree of an undirected, weighted
// *core.Graph by greedy vertex growth from a designated start vertex,
// recording each admission as an ordered, replayable step.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects all vertices of V with minimum total edge
//     weight and no cycles.
//
//   - Why a step trace?
//     This package is built for simulation and teaching: beyond the final
//     tree, callers get the exact order in which edges were admitted, the
//     visited set after each admission, and the running cost — enough to
//     replay the construction on a console or a diagram.
//
// Algorithm
//
// Build grows a visited set starting at {start}. Each round it scans every
// visited vertex and every incident edge, keeps candidates whose far
// endpoint is unvisited, and admits the candidate with the strictly
// smallest weight. If no candidate exists before all vertices are covered,
// the graph is not connected from start: the loop halts and the partial
// tree is returned with Complete == false. Disconnection is a legitimate
// terminal outcome, not an error.
//
// Tie-break contract
//
// When several candidates share the minimum weight, the first one
// encountered wins. The scan order is fixed: visited vertices in admission
// order (start first), then each vertex's adjacency in insertion order as
// defined by core.Graph. Repeated calls on the same graph therefore
// produce identical edge sequences. Implementations with a different scan
// order may legally produce a different (equally minimal) tree.
//
// Complexity
//
//   - Time:  O(V·E) — each round rescans the visited boundary; with V-1
//     rounds and E edges per scan worst case. Appropriate for the small,
//     demonstrative graphs this package targets; a heap-based variant would
//     be faster but could not honor the scan-order tie-break above.
//   - Space: O(V) for the visited set plus O(V) for the result
//     (O(V²) if WithTrace is enabled, for the per-step visited snapshots).
//
// Error Conditions
//
//	Build validates fail-fast, before any construction:
//
//	- ErrNilGraph          : graph pointer is nil.
//	- ErrEmptyStart        : start is the empty string (empty graphs excepted).
//	- core.ErrVertexNotFound: start does not exist in the graph.
//	- ErrNegativeWeight    : some edge has negative weight (Prim's
//	  correctness assumes non-negative weights; the whole edge set is
//	  pre-scanned).
//
//	An empty graph is trivially complete: Build returns an empty Result with
//	Complete == true and no error, before start validation.
//
// For usage see example_test.go.
package prim
