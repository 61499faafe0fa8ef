// Package core defines the central Graph and Neighbor types and provides
// thread-safe primitives for building and querying an undirected, weighted graph.
//
// This file declares Neighbor, Graph, GraphOption, GraphStats,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrNegativeWeight  - edge weight below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an edge endpoint or query used an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates AddEdge was called with weight < 0.
	// Shortest-path guarantees do not hold for negative weights, so such edges are rejected.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Neighbor is one half of an undirected edge as seen from a vertex:
// the vertex on the other side and the cost of crossing.
type Neighbor struct {
	// ID is the adjacent vertex.
	ID string

	// Weight is the non-negative edge cost.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and adjacency maps for n vertices.
// Non-positive n is ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory undirected, weighted graph.
//
// Vertices are never declared; they come into existence the first time they
// appear as an AddEdge endpoint. adjacency[v] keeps neighbors in insertion
// order, with parallel edges kept as separate entries.
// mu protects vertices, adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	capacity  int                   // initial map size hint
	vertices  map[string]struct{}   // vertex ID set
	adjacency map[string][]Neighbor // vertex ID → neighbors, insertion order
	edgeCount int                   // undirected edges, each counted once
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	LoopCount   int
	MaxDegree   int
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]struct{}, g.capacity)
	g.adjacency = make(map[string][]Neighbor, g.capacity)

	return g
}
