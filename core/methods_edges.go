// File: methods_edges.go
// Role: Edge lifecycle: AddEdge/Edges/HasDirectedEdges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge inserts an edge between from and to with the given weight,
// auto-adding either endpoint that does not already exist. Parallel edges
// between the same endpoints are always permitted: KruskalForest's
// union-find treats a redundant edge as a harmless no-op, so there is no
// concept of a "duplicate edge" worth rejecting here.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight != 0 && !g.Weighted() {
		return "", ErrBadWeight
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	return eid, nil
}

// Edges returns all edges, sorted by ID.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// HasDirectedEdges reports whether the Graph's default orientation is
// directed. There is no per-edge direction override in this trimmed Graph,
// so this coincides with Directed(); callers that check both (as Kruskal
// does) are guarding against either flag independently drifting true.
// Complexity: O(1)
func (g *Graph) HasDirectedEdges() bool {
	return g.Directed()
}

// nextEdgeID generates the next collision-free edge ID: "e" + decimal.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
