// Package orkit collects two independent operations-research kernels that
// share nothing but a module boundary and a taste for tight invariants.
//
// 🚀 What is orkit?
//
//	A pure-Go toolkit bringing together:
//		• maxflow    — highest-label push-relabel max-flow/min-cut over a
//		               directed capacitated graph, exposed through the
//		               ResidualGraph interface
//		• rectangle  — 2D rectangle energy-conflict detection: incremental
//		               mandatory-energy tracking under probe-shrinking,
//		               sweep-line pairwise intersection, and a Monte-Carlo
//		               conflict search
//
// Under the hood, the two kernels are supported by:
//
//	core/         — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	prim_kruskal/ — Kruskal's algorithm, kept as the spanning-forest primitive
//	               rectangle's sweep-line reduction is built on
//
// Neither kernel spawns goroutines and neither accepts a context.Context:
// both are single-shot, run-to-completion computations, not services.
//
//	go get github.com/katalvlaran/orkit
package orkit
