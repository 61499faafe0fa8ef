// File: methods.go
// Role: Edge insertion and neighborhood queries.
// Determinism:
//   - Neighbors() preserves insertion order (tie-breaks in shortest paths follow it).
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - AddEdge under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts an undirected edge between from and to with the given weight.
// Missing endpoints are created. Repeating the same pair creates a parallel edge.
//
// Steps:
//  1. Validate IDs and weight; nothing is mutated on error.
//  2. Ensure both endpoints exist.
//  3. Append (to,w) to from's list and (from,w) to to's list.
//
// A self-loop therefore lands in its vertex's list twice; it never shortens any path.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.adjacency[from] = append(g.adjacency[from], Neighbor{ID: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{ID: from, Weight: weight})
	g.edgeCount++

	return nil
}

// HasVertex reports whether id has appeared as an edge endpoint.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Neighbors returns a copy of id's adjacency list in insertion order.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id was never added.
//
// Complexity: O(d), d = degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Neighbor, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// EdgeWeight returns the smallest weight among the edges joining u and v.
// ok is false when no edge joins them.
//
// Complexity: O(d), d = degree of u.
func (g *Graph) EdgeWeight(u, v string) (weight int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nb := range g.adjacency[u] {
		if nb.ID != v {
			continue
		}
		if !ok || nb.Weight < weight {
			weight, ok = nb.Weight, true
		}
	}

	return weight, ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of AddEdge insertions (each undirected edge once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
