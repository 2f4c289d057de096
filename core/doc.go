// Package core defines the central Graph and Edge types for spantree:
// a weighted, undirected, simple graph with a deterministic iteration order.
//
// Design contract
//
//   - Symmetric by construction: AddEdge(u, v, w) installs both adjacency
//     entries u→v and v→u with the same weight, so the undirected invariant
//     graph[u][v] == graph[v][u] can never be violated through this API.
//     Re-adding an existing edge overwrites the weight on both sides.
//   - Simple: self-loops are rejected (ErrSelfLoop) and there is at most one
//     edge per vertex pair (a second AddEdge updates, never duplicates).
//   - Ordered: Vertices() enumerates IDs in insertion order and
//     Neighbors(id) enumerates edges in neighbor insertion order. Algorithms
//     that break weight ties by encounter order (see package prim) rely on
//     these two contracts; they are stable across calls and across runs.
//   - Permissive weights: any int64 weight is storable. Algorithms that
//     require non-negative weights validate up front and fail fast.
//
// Concurrency
//
// All methods are safe for concurrent use via an internal sync.RWMutex.
// A graph must not be mutated while an algorithm is consuming it; the
// lock protects structural integrity, not snapshot isolation.
//
// Errors:
//
//	ErrEmptyVertexID - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrSelfLoop - edge endpoints are the same vertex.
package core
