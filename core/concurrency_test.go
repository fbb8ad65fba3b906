// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/orkit/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on a shared
// graph are safe and every edge lands.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 0)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Edges(), num)
}

// TestConcurrentAddVertex ensures concurrent AddVertex calls never lose or
// duplicate a vertex.
func TestConcurrentAddVertex(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Vertices(), num)
}

// TestConcurrentAtomicEdgeIDs ensures concurrent AddEdge calls never hand out
// duplicate edge IDs.
func TestConcurrentAtomicEdgeIDs(t *testing.T) {
	g := core.NewGraph()
	const num = 200

	idCh := make(chan string, num)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			eid, err := g.AddEdge("A", "B", 0)
			require.NoError(t, err)
			idCh <- eid
		}(i)
	}
	wg.Wait()
	close(idCh)

	seen := make(map[string]struct{}, num)
	for eid := range idCh {
		seen[eid] = struct{}{}
	}
	require.Len(t, seen, num)
}
