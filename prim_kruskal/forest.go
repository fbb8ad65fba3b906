package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/orkit/core"
)

// KruskalForest computes a minimum spanning forest of an undirected, weighted
// graph using the same sort-and-union-find machinery as Kruskal, but without
// requiring the graph to be connected: components that cannot be joined are
// simply left as separate trees in the returned forest instead of producing
// ErrDisconnected.
//
// This is the "generic minimum-spanning-tree utility... consumed as a
// primitive" shape: callers that only need *some* spanning structure over a
// possibly-disconnected connectivity graph (e.g. a sweep-line intersection
// graph where isolated rectangles never appear as vertices) use this instead
// of Kruskal.
//
// Error Conditions:
//   - ErrInvalidGraph: if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func KruskalForest(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}

	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := newDisjointSet(vertices)

	var (
		forest      []core.Edge
		totalWeight int64
	)
	for _, e := range edges {
		if dsu.union(e.From, e.To) {
			forest = append(forest, *e)
			totalWeight += e.Weight
		}
	}

	return forest, totalWeight, nil
}

// disjointSet is the union-find structure shared by Kruskal and KruskalForest.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(vertices []string) *disjointSet {
	dsu := &disjointSet{
		parent: make(map[string]string, len(vertices)),
		rank:   make(map[string]int, len(vertices)),
	}
	for _, vid := range vertices {
		dsu.parent[vid] = vid
		dsu.rank[vid] = 0
	}
	return dsu
}

// find returns the representative of u's component with path compression.
func (d *disjointSet) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the components containing u and v, returning true if they
// were previously disjoint (i.e. the edge (u,v) belongs in the forest).
func (d *disjointSet) union(u, v string) bool {
	rootU := d.find(u)
	rootV := d.find(v)
	if rootU == rootV {
		return false
	}
	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}
	return true
}
