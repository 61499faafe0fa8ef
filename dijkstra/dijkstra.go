package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - *Result: Dist holds every vertex (Unreachable where no path exists);
//     Prev links each reached vertex to its predecessor for PathTo.
//   - err: error if inputs are invalid or a distance overflows.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  4. g must contain source (ErrVertexNotFound).
//
// Negative weights cannot occur: core.Graph rejects them on insertion.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger.With(zap.String("source", source)),
		dist:    make(map[string]Distance, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}

	r.init(vertices, source)
	if err := r.process(); err != nil {
		return nil, err
	}
	if err := r.overflowErr(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	log     *zap.Logger
	dist    map[string]Distance // vertex → best known distance
	prev    map[string]string   // vertex → predecessor; absent for source/unreached
	visited map[string]bool     // vertex → distance finalized
	pq      nodePQ

	// overflows records edges whose candidate distance did not fit in int64,
	// in the order they were met.
	overflows []overflowEdge
}

type overflowEdge struct {
	from, to string
	weight   int64
}

// overflowErr reports the first overflowing edge whose far end stayed
// Unreachable. An overflow toward a vertex reached some other way is harmless.
func (r *runner) overflowErr() error {
	for _, e := range r.overflows {
		if !r.dist[e.to].Reachable() {
			return fmt.Errorf("%w: %s—%s weight=%d", ErrDistanceOverflow, e.from, e.to, e.weight)
		}
	}

	return nil
}

// init marks every vertex Unreachable, the source zero, and seeds the heap.
func (r *runner) init(vertices []string, source string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
	}
	r.dist[source] = Finite(0)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest vertex until the heap drains. Entries that are
// already settled or carry a distance above the authoritative one are stale
// and skipped without relaxing.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if r.visited[u] {
			continue
		}
		if cur, _ := r.dist[u].Value(); item.dist > cur {
			continue
		}
		// Nothing above MaxDistance is ever pushed; this guards the source.
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.log.Debug("settled", zap.String("vertex", u), zap.Int64("dist", item.dist))

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
// Only a strictly shorter candidate updates dist/prev and pushes a heap entry
// (lazy decrease-key).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if r.options.impassable(nb.Weight) {
			continue
		}
		if r.visited[nb.ID] {
			continue
		}

		cand, ok := r.dist[u].Add(nb.Weight)
		if !ok {
			// Larger than any finite distance, so it never improves one.
			// Under a MaxDistance cap it is simply out of range.
			if r.options.MaxDistance == math.MaxInt64 {
				r.overflows = append(r.overflows, overflowEdge{from: u, to: nb.ID, weight: nb.Weight})
			}
			continue
		}
		if c, _ := cand.Value(); c > r.options.MaxDistance {
			continue
		}
		if !cand.Less(r.dist[nb.ID]) {
			continue
		}

		r.dist[nb.ID] = cand
		r.prev[nb.ID] = u
		c, _ := cand.Value()
		r.log.Debug("relaxed",
			zap.String("from", u),
			zap.String("to", nb.ID),
			zap.Int64("dist", c),
		)
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: c})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. A vertex may appear
// several times; outdated entries are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
