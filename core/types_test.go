// Package core_test verifies core.Graph configuration and vertex/edge
// lifecycle invariants.
package core_test

import (
	"testing"

	"github.com/katalvlaran/orkit/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_Options locks in GraphOption flag semantics.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	require.False(t, g.Directed(), "default Graph must be undirected")
	require.False(t, g.Weighted(), "default Graph must be unweighted")

	wg := core.NewGraph(core.WithWeighted())
	require.True(t, wg.Weighted())

	dg := core.NewGraph(core.WithDirected(true))
	require.True(t, dg.Directed())
	require.True(t, dg.HasDirectedEdges())
}

// TestGraph_AddVertex ASSERTS AddVertex validation and idempotency.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, []string{"A"}, g.Vertices())

	// Duplicate insertion is a no-op, not an error.
	require.NoError(t, g.AddVertex("A"))
	require.Len(t, g.Vertices(), 1)
}

// TestGraph_AddEdge ASSERTS weight policy, auto-vertexing, and ID uniqueness.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("X", "Y", 5)
	require.ErrorIs(t, err, core.ErrBadWeight, "non-zero weight on unweighted graph")

	_, err = g.AddEdge("", "Y", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	wg := core.NewGraph(core.WithWeighted())
	eid1, err := wg.AddEdge("X", "Y", 5)
	require.NoError(t, err)
	require.NotEmpty(t, eid1)
	require.ElementsMatch(t, []string{"X", "Y"}, wg.Vertices(), "AddEdge auto-adds endpoints")

	// Parallel edges are always permitted.
	eid2, err := wg.AddEdge("X", "Y", 7)
	require.NoError(t, err)
	require.NotEqual(t, eid1, eid2, "edge IDs must be unique")
	require.Len(t, wg.Edges(), 2)
}

// TestGraph_EdgesSorted ASSERTS Edges() returns a deterministic, ID-sorted slice.
func TestGraph_EdgesSorted(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_, err := g.AddEdge("A", "B", 0)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 5)
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
}
