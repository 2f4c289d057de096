// This file declares Edge, Graph, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	// Self-loops are never useful for spanning trees and are rejected outright.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge represents one undirected connection between two vertices.
//
// From and To are vertex IDs; Weight is the edge cost. In algorithm results
// the orientation carries meaning (From was already in the tree, To was
// newly admitted); in Graph queries it simply reflects the query direction.
type Edge struct {
	// From is the near-side vertex ID.
	From string

	// To is the far-side vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight int64
}

// adjacency holds one vertex's neighbor set with a stable enumeration order.
type adjacency struct {
	order  []string         // neighbor IDs in insertion order
	weight map[string]int64 // neighbor ID → edge weight
}

// Graph is the core in-memory graph data structure: weighted, undirected,
// simple, with insertion-ordered vertex and neighbor enumeration.
//
// mu protects all storage. pairs records each undirected edge exactly once,
// in first-insertion order, for Edges() and EdgeCount().
type Graph struct {
	mu sync.RWMutex

	// Storage
	order []string              // vertex IDs in insertion order
	adj   map[string]*adjacency // vertex ID → adjacency
	pairs []Edge                // one entry per undirected edge, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string]*adjacency),
	}
}
