// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Acquire mu.RLock, count vertices, edges, loops and the largest degree.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
//
// Notes:
//   - MaxDegree counts adjacency entries, so parallel edges add to it and a
//     self-loop adds two.
//   - LoopCount counts self-loop insertions, not adjacency entries.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}
	loopEntries := 0
	for id, nbs := range g.adjacency {
		if len(nbs) > stats.MaxDegree {
			stats.MaxDegree = len(nbs)
		}
		for _, nb := range nbs {
			if nb.ID == id {
				loopEntries++
			}
		}
	}
	stats.LoopCount = loopEntries / 2

	return &stats
}
