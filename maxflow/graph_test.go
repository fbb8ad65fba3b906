package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orkit/maxflow"
)

func TestArcListGraphOppositeAndDirectness(t *testing.T) {
	g := maxflow.NewArcListGraph(2, 1)
	a := g.AddArc(0, 1, 7)
	g.Build()

	require.True(t, g.IsDirect(a))
	opp := g.Opposite(a)
	require.False(t, g.IsDirect(opp))
	require.Equal(t, a, g.Opposite(opp))
	require.Equal(t, maxflow.NodeIndex(0), g.Tail(a))
	require.Equal(t, maxflow.NodeIndex(1), g.Head(a))
	require.Equal(t, maxflow.NodeIndex(1), g.Tail(opp))
	require.Equal(t, maxflow.NodeIndex(0), g.Head(opp))
	require.Equal(t, int64(7), g.Capacity(a))
	require.Equal(t, int64(7), g.Capacity(opp))
}

func TestArcListGraphOutgoingIteration(t *testing.T) {
	g := maxflow.NewArcListGraph(3, 2)
	a1 := g.AddArc(0, 1, 1)
	a2 := g.AddArc(0, 2, 1)
	g.Build()

	seen := map[maxflow.ArcIndex]bool{}
	for a := g.FirstOutgoingArc(0); a != maxflow.NilArc; a = g.NextOutgoingArc(a) {
		seen[a] = true
	}
	require.True(t, seen[a1])
	require.True(t, seen[a2])
	require.Len(t, seen, 2)
}

func TestArcListGraphCombinedIteration(t *testing.T) {
	g := maxflow.NewArcListGraph(3, 2)
	a1 := g.AddArc(0, 1, 1) // outgoing from 0, incoming to 1
	a2 := g.AddArc(2, 1, 1) // incoming to 1 from 2
	g.Build()

	// Node 1's combined iteration should include the opposite of both
	// arcs pointing into it (since 1 has no direct arcs of its own).
	seen := map[maxflow.ArcIndex]bool{}
	for a := g.FirstOutgoingOrOppositeIncomingArc(1); a != maxflow.NilArc; a = g.NextOutgoingOrOppositeIncomingArc(a) {
		seen[a] = true
		require.Equal(t, maxflow.NodeIndex(1), g.Tail(a))
	}
	require.True(t, seen[g.Opposite(a1)])
	require.True(t, seen[g.Opposite(a2)])
}

func TestArcListGraphSetCapacity(t *testing.T) {
	g := maxflow.NewArcListGraph(2, 1)
	a := g.AddArc(0, 1, 5)
	g.Build()

	g.SetCapacity(a, 9)
	require.Equal(t, int64(9), g.Capacity(a))
	require.Equal(t, int64(9), g.Capacity(g.Opposite(a)))
}
