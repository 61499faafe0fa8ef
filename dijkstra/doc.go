// Package dijkstra provides Dijkstra's shortest-path algorithm on the
// undirected, non-negatively weighted graphs of package core, plus
// reconstruction of the shortest path to a destination.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to
//     every vertex of the graph in O((V + E) log V) time.
//   - It relies on a min-heap keyed by tentative distance to always settle the
//     next-closest vertex. Improved distances are pushed again instead of being
//     decreased in place ("lazy decrease-key"); stale entries are skipped on pop.
//   - Path reconstruction takes the Result of a run explicitly. There is no
//     predecessor state hidden inside the graph, so a path is always rebuilt from
//     the same run that produced its distances.
//
// Distances:
//
//   - Each vertex maps to a Distance. Unreachable is a distinct value, not a
//     magic number, and Distance.Add refuses to extend it, so no caller can
//     overflow by adding to "infinity". Distance.Int64 renders math.MaxInt64
//     for callers that want the classic sentinel.
//
// Key features:
//
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: opt-in; treats any edge with weight ≥ threshold as impassable.
//   - Logger: zap debug traces of each settled vertex and each improvement.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrEmptySource, ErrNilGraph: invalid call.
//   - ErrVertexNotFound: start or end was never added to the graph.
//   - ErrNoPath: end is not reachable from start; distinct from the valid
//     one-vertex path returned when start == end.
//   - ErrDistanceOverflow: a vertex is reachable only along a path whose cost
//     does not fit in int64.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid option values.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error)
//	func (r *Result) DistanceTo(v string) (Distance, error)
//	func (r *Result) PathTo(end string) ([]string, error)
//	func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Path, error)
//	func PathWeight(g *core.Graph, vertices []string) (int64, error)
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Edinburgh", "Stirling", 50)
//	_ = g.AddEdge("Stirling", "Perth", 40)
//	p, err := dijkstra.ShortestPath(g, "Edinburgh", "Perth")
//	// p.Vertices == [Edinburgh Stirling Perth], p.Distance == 90
package dijkstra
