// File: methods.go
// Role: Vertex/edge lifecycle and read-only queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//   - Neighbors(id) returns edges in neighbor insertion order.
//   - Edges() returns each undirected edge once, in first-insertion order.
//   - SortedVertices() returns a lexicographically sorted copy.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID when id is the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id if unseen. Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) *adjacency {
	a, ok := g.adj[id]
	if !ok {
		a = &adjacency{weight: make(map[string]int64)}
		g.adj[id] = a
		g.order = append(g.order, id)
	}

	return a
}

// AddEdge installs the undirected edge u—v with the given weight,
// auto-registering missing endpoints. Both adjacency directions are written
// with the same weight, preserving the symmetry invariant. Re-adding an
// existing edge overwrites its weight on both sides (no parallel edges).
//
// Errors:
//   - ErrEmptyVertexID if u or v is empty.
//   - ErrSelfLoop if u == v.
//
// Any int64 weight is accepted here; algorithms requiring non-negative
// weights validate before running.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	au := g.ensureVertex(u)
	av := g.ensureVertex(v)

	// First sighting of this pair: record enumeration order on both sides
	// and remember the undirected edge once.
	if _, seen := au.weight[v]; !seen {
		au.order = append(au.order, v)
		av.order = append(av.order, u)
		g.pairs = append(g.pairs, Edge{From: u, To: v, Weight: w})
	} else {
		// Overwrite: locate the recorded pair and refresh its weight.
		for i := range g.pairs {
			if (g.pairs[i].From == u && g.pairs[i].To == v) ||
				(g.pairs[i].From == v && g.pairs[i].To == u) {
				g.pairs[i].Weight = w
				break
			}
		}
	}
	au.weight[v] = w
	av.weight[u] = w

	return nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pairs)
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// SortedVertices returns all vertex IDs sorted lexicographically ascending.
// Intended for presentation; algorithms scan in insertion order.
// Complexity: O(V log V).
func (g *Graph) SortedVertices() []string {
	out := g.Vertices()
	sort.Strings(out)

	return out
}

// Neighbors returns the edges incident to id, oriented id→neighbor,
// in neighbor insertion order. Returns ErrVertexNotFound for unknown ids.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(a.order))
	for _, nbr := range a.order {
		out = append(out, Edge{From: id, To: nbr, Weight: a.weight[nbr]})
	}

	return out, nil
}

// Weight returns the weight of the undirected edge u—v.
// Returns ErrVertexNotFound if u is unknown, ErrEdgeNotFound if no edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[u]
	if !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := a.weight[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns every undirected edge exactly once, in first-insertion order.
// Edge orientation matches the original AddEdge call.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.pairs))
	copy(out, g.pairs)

	return out
}
