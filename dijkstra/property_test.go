package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// randomEdges returns m edges over n vertices "V0".."V(n-1)" with weights in [0..maxW].
// The generator is seeded so the same graph is produced on every run.
func randomEdges(seed int64, n, m int, maxW int64) []edge {
	r := rand.New(rand.NewSource(seed))
	out := make([]edge, 0, m)
	for i := 0; i < m; i++ {
		out = append(out, edge{
			from: fmt.Sprintf("V%d", r.Intn(n)),
			to:   fmt.Sprintf("V%d", r.Intn(n)),
			w:    r.Int63n(maxW + 1),
		})
	}

	return out
}

// allPairs runs Dijkstra from every vertex.
func allPairs(t *testing.T, g *core.Graph) map[string]*dijkstra.Result {
	t.Helper()
	out := make(map[string]*dijkstra.Result, g.VertexCount())
	for _, v := range g.Vertices() {
		res, err := dijkstra.Dijkstra(g, v)
		require.NoError(t, err)
		out[v] = res
	}

	return out
}

func TestProperties_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			// Sparse enough to leave several components on some seeds.
			edges := randomEdges(seed, 25, 30, 20)
			g := buildGraph(t, edges)
			runs := allPairs(t, g)

			for v, res := range runs {
				// Source is at distance zero and every vertex appears in Dist.
				require.Equal(t, dijkstra.Finite(0), res.Dist[v])
				require.Len(t, res.Dist, g.VertexCount())

				p, err := res.PathTo(v)
				require.NoError(t, err)
				require.Equal(t, []string{v}, p)
			}

			// Every edge bounds the distance between its endpoints.
			for _, e := range edges {
				d, ok := runs[e.from].Dist[e.to].Value()
				require.True(t, ok)
				require.LessOrEqual(t, d, e.w, "%s—%s", e.from, e.to)
			}

			for a, ra := range runs {
				for b, d := range ra.Dist {
					// Symmetry of the undirected graph.
					require.Equal(t, d, runs[b].Dist[a], "dist(%s,%s)", a, b)

					path, err := ra.PathTo(b)
					if !d.Reachable() {
						require.ErrorIs(t, err, dijkstra.ErrNoPath)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, a, path[0])
					require.Equal(t, b, path[len(path)-1])

					// Summed edge weights along the path equal the distance.
					w, err := dijkstra.PathWeight(g, path)
					require.NoError(t, err)
					want, _ := d.Value()
					require.Equal(t, want, w, "path %v", path)
				}
			}
		})
	}
}

func TestProperties_InsertionOrderDoesNotChangeDistances(t *testing.T) {
	edges := randomEdges(42, 15, 40, 9)
	reversed := make([]edge, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = edge{from: e.to, to: e.from, w: e.w}
	}

	g1 := buildGraph(t, edges)
	g2 := buildGraph(t, reversed)
	for _, v := range g1.Vertices() {
		r1, err := dijkstra.Dijkstra(g1, v)
		require.NoError(t, err)
		r2, err := dijkstra.Dijkstra(g2, v)
		require.NoError(t, err)
		require.Equal(t, r1.Dist, r2.Dist)
	}
}
