// Package core provides a thread-safe in-memory undirected/directed Graph,
// trimmed to the vertex/edge insertion and enumeration operations that
// prim_kruskal's KruskalForest -- and, through it, rectangle's sweep-line
// spanning-forest step -- actually need.
//
// Configuration Options (GraphOption):
//
//	- WithDirected(defaultDirected bool)
//	    Sets the graph's default edge orientation. Kruskal/KruskalForest
//	    reject any graph built with WithDirected(true): the spanning-forest
//	    reduction only makes sense over an undirected graph.
//
//	- WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight != 0) returns
//	    ErrBadWeight.
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	AddEdge(from, to string, weight int64) (string, error)  // O(1)
//	Vertices() []string                                     // O(V log V), sorted
//	Edges() []*Edge                                          // O(E log E), sorted by ID
//	Weighted() bool                                          // O(1)
//	Directed() bool                                          // O(1)
//	HasDirectedEdges() bool                                  // O(1)
//
// Errors:
//
//	ErrEmptyVertexID - zero-length vertex ID
//	ErrBadWeight     - non-zero weight on an unweighted graph
package core
