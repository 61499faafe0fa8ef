// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are serialized
// by the graph lock and every neighbor appears.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d neighbors", num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs many queries against a fully built graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("Root", fmt.Sprintf("N%d", i), int64(i)))
	}

	var wg sync.WaitGroup
	const readers = 16
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				nbs, err := g.Neighbors("Root")
				if err != nil || len(nbs) != 50 {
					t.Errorf("unexpected neighbors: %d, %v", len(nbs), err)
					return
				}
				_ = g.Vertices()
				_ = g.Stats()
			}
		}()
	}
	wg.Wait()
}
