// Package core provides the in-memory, undirected, weighted Graph that the
// shortest-path queries in package dijkstra run on.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Vertices are identified by non-empty strings and are created implicitly
//     the first time they appear as an AddEdge endpoint.
//   - Every edge is undirected: AddEdge(A, B, w) makes B reachable from A and
//     A reachable from B, both at cost w.
//   - Weights are non-negative int64 values; AddEdge(…, w<0) → ErrNegativeWeight.
//   - Parallel edges are kept as separate adjacency entries; a self-loop
//     appears twice in its vertex's list, once per endpoint.
//   - Adjacency keeps insertion order, so equal-cost tie-breaks in path
//     selection follow the order edges were added.
//   - A single sync.RWMutex guards the catalog: mutations take the write lock,
//     queries the read lock. Queries never mutate.
//
// Core Methods:
//
//	// Edge insertion
//	AddEdge(from, to string, weight int64) error   // O(1)†
//
//	// Query
//	HasVertex(id string) bool                      // O(1)
//	Neighbors(id string) ([]Neighbor, error)       // O(d), insertion order, copy
//	EdgeWeight(u, v string) (int64, bool)          // O(d), cheapest parallel edge
//	Vertices() []string                            // O(V·log V), sorted
//	VertexCount() int                              // O(1)
//	EdgeCount() int                                // O(1)
//	Stats() *GraphStats                            // O(V+E) snapshot
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – vertex never added
//	ErrNegativeWeight – weight < 0 on AddEdge
//
// † amortized: slice append into the adjacency lists.
package core
