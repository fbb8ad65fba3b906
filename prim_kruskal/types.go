// Package prim_kruskal computes minimum spanning trees/forests over
// undirected, weighted graphs via Kruskal's algorithm.
package prim_kruskal

import (
	"errors"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Kruskal returns it when |V| > 1 but MST is
// impossible, and also when the graph has no vertices at all.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
