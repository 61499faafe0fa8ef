package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// DistanceTo returns the distance from r.Source to v.
// A vertex unknown to the run yields ErrVertexNotFound.
func (r *Result) DistanceTo(v string) (Distance, error) {
	d, ok := r.Dist[v]
	if !ok {
		return Unreachable, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return d, nil
}

// PathTo reconstructs the shortest path from r.Source to end using the
// predecessor links of this Result only.
//
// Outcomes:
//   - end unknown            → ErrVertexNotFound.
//   - end == Source          → [Source].
//   - end unreachable        → ErrNoPath (never the misleading [end]).
//   - otherwise              → Source … end, in travel order.
//
// Complexity: O(L), L = number of vertices on the path.
func (r *Result) PathTo(end string) ([]string, error) {
	d, err := r.DistanceTo(end)
	if err != nil {
		return nil, err
	}
	if end == r.Source {
		return []string{end}, nil
	}
	if !d.Reachable() {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, r.Source, end)
	}

	var path []string
	for at := end; ; {
		path = append(path, at)
		if at == r.Source {
			break
		}
		p, ok := r.Prev[at]
		if !ok || len(path) > len(r.Dist) {
			// Broken chain: Prev does not belong to this Dist.
			return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, r.Source, end)
		}
		at = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestPath runs Dijkstra from start and reconstructs the path to end.
//
// Errors:
//   - ErrEmptySource, ErrNilGraph, option errors as in Dijkstra.
//   - ErrVertexNotFound if start or end was never added to g.
//   - ErrNoPath if end is not reachable from start.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Path, error) {
	if g != nil && start != "" && !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %q", ErrVertexNotFound, end)
	}

	res, err := Dijkstra(g, start, opts...)
	if err != nil {
		return nil, err
	}
	vertices, err := res.PathTo(end)
	if err != nil {
		return nil, err
	}
	cost, _ := res.Dist[end].Value()

	return &Path{Vertices: vertices, Distance: cost}, nil
}

// PathWeight sums the cheapest edge between each consecutive pair of
// vertices. It returns ErrNoPath if some pair is not adjacent and
// ErrDistanceOverflow if the sum does not fit in int64.
func PathWeight(g *core.Graph, vertices []string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	total := Finite(0)
	for i := 1; i < len(vertices); i++ {
		w, ok := g.EdgeWeight(vertices[i-1], vertices[i])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %s—%s", ErrNoPath, vertices[i-1], vertices[i])
		}
		if total, ok = total.Add(w); !ok {
			return 0, ErrDistanceOverflow
		}
	}
	cost, _ := total.Value()

	return cost, nil
}
