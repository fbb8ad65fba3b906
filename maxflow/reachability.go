package maxflow

// residualBFS runs a BFS from start, enumerating each node's arcs with
// firstArc/nextArc and calling step to decide whether an arc may be
// traversed and which node it leads to. It returns every discovered node
// (including start) in BFS order. It is the shared machinery behind the
// source-side min-cut, sink-side min-cut, and augmenting-path-exists checks:
// all three are "reach every node connected to a root through arcs
// satisfying some residual predicate", differing only in which arc endpoint
// and which residual value they test.
func (e *Engine) residualBFS(start NodeIndex, nextArc func(a ArcIndex) ArcIndex, firstArc func(v NodeIndex) ArcIndex, step func(a ArcIndex) (NodeIndex, bool)) []NodeIndex {
	visited := make([]bool, e.graph.NumNodes())
	queue := make([]NodeIndex, 0, e.graph.NumNodes())
	visited[start] = true
	queue = append(queue, start)

	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for a := firstArc(v); a != NilArc; a = nextArc(a) {
			w, ok := step(a)
			if !ok || visited[w] {
				continue
			}
			visited[w] = true
			queue = append(queue, w)
		}
	}

	return queue
}

// GetSourceSideMinCut returns the set of nodes reachable from the source
// through residual arcs with positive residual capacity, forming the
// source side of a minimum s-t cut after a completed Solve. When sink lies
// outside the graph's node range, no augmenting search ever ran, so the
// only node known to be on the source side is the source itself.
func (e *Engine) GetSourceSideMinCut() []NodeIndex {
	if !e.endpointsValid() {
		if int(e.source) >= 0 && int(e.source) < e.graph.NumNodes() {
			return []NodeIndex{e.source}
		}

		return nil
	}

	return e.residualBFS(e.source,
		func(a ArcIndex) ArcIndex { return e.graph.NextOutgoingOrOppositeIncomingArc(a) },
		func(v NodeIndex) ArcIndex { return e.graph.FirstOutgoingOrOppositeIncomingArc(v) },
		func(a ArcIndex) (NodeIndex, bool) {
			if e.residual[a] <= 0 {
				return NilNode, false
			}
			return e.graph.Head(a), true
		},
	)
}

// GetSinkSideMinCut returns the set of nodes that can reach the sink
// through residual arcs with positive residual capacity, forming the sink
// side of a minimum s-t cut after a completed Solve. It is computed as a
// reverse BFS from the sink using each arc's opposite residual. It is empty
// when source or sink lies outside the graph's node range.
func (e *Engine) GetSinkSideMinCut() []NodeIndex {
	if !e.endpointsValid() {
		return nil
	}

	return e.residualBFS(e.sink,
		func(a ArcIndex) ArcIndex { return e.graph.NextOutgoingOrOppositeIncomingArc(a) },
		func(v NodeIndex) ArcIndex { return e.graph.FirstOutgoingOrOppositeIncomingArc(v) },
		func(a ArcIndex) (NodeIndex, bool) {
			opp := e.graph.Opposite(a)
			if e.residual[opp] <= 0 {
				return NilNode, false
			}
			return e.graph.Head(a), true
		},
	)
}

// augmentingPathExists reports whether the sink is still reachable from the
// source through positive-residual arcs, i.e. whether a further augmenting
// push is possible in the current residual graph.
func (e *Engine) augmentingPathExists() bool {
	for _, v := range e.GetSourceSideMinCut() {
		if v == e.sink {
			return true
		}
	}
	return false
}
