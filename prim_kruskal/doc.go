// Package prim_kruskal computes the Minimum Spanning Tree (or, for
// disconnected input, a Minimum Spanning Forest) of an undirected, weighted
// *core.Graph via Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//
//   - Why MST matters:
//
//   - Network Design: Build cost-efficient communication or transportation networks (e.g., fiber-optic backbones, road systems).
//
//   - Subroutines: MST is a building block in many approximation algorithms and graph partitioning tasks.
//
// Algorithm
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: Sort all edges by weight, then iterate from smallest to largest. Use a Disjoint-Set (Union-Find) data structure
//     to merge vertices component-by-component, skipping edges whose endpoints are already connected. Stop once |V|-1 edges have been added.
//     Fails with ErrDisconnected if the graph cannot be fully spanned.
//
//   - KruskalForest(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Same sort-and-union-find machinery, but tolerant of disconnected input:
//     components that cannot be joined are simply left as separate trees in
//     the returned forest instead of producing ErrDisconnected. Consumed by
//     rectangle's sweep-line reduction, where the connectivity graph over
//     candidate intersection pairs is rarely a single component.
//
//   - Complexity:
//
//   - Time: O(E log E + α(V)*E) ≈ O(E log V) because sorting dominates (E = number of edges, V = number of vertices, α = inverse Ackermann).
//
//   - Space: O(V + E) for storing parent/rank arrays and the sorted edge list.
//
//   - Determinism: graph.Edges() returns edges in ascending ID order; we perform a stable sort by weight, ensuring that ties break predictably.
//
// Error Conditions
//
//	- ErrInvalidGraph
//	    - Graph is nil, OR
//	    - graph.Directed() == true (MST requires undirected), OR
//	    - !graph.Weighted() (MST requires nonzero weights).
//
//	- ErrDisconnected (Kruskal only; KruskalForest never returns this)
//	    - |V| == 0 (empty graph), OR
//	    - |V| > 1 but the graph is not fully connected (no spanning tree can cover all vertices).
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
