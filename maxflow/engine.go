package maxflow

import (
	"fmt"
	"log"
)

// skipThreshold is the number of oversized relabels (height raised by more
// than one during a single discharge) a node tolerates before it is
// deferred to the next global-update pass instead of being re-queued at a
// priority that would violate the restricted-push contract.
const skipThreshold = 2

// Engine runs the push-relabel solver against a ResidualGraph. Construct
// one with NewEngine and call Solve; the per-node and per-arc arrays the
// Engine holds are allocated on the first Solve call and reused across
// subsequent solves (a capacity edit via SetArcCapacity followed by another
// Solve reuses the same arrays). globalUpdate and
// pushFlowExcessBackToSource allocate their own scratch slices on each call.
//
// Engine is not safe for concurrent use: it owns mutable per-node and
// per-arc scratch state that a single solve mutates throughout.
type Engine struct {
	graph  ResidualGraph
	source NodeIndex
	sink   NodeIndex
	opts   FlowOptions

	residual            []int64
	excess              []int64
	height              []int32
	firstAdmissibleArc  []ArcIndex
	skipCount           []int
	pq                  *priorityQueueWithRestrictedPush
	totalSourceOutflow  int64

	status Status
	solved bool
}

// NewEngine constructs an Engine bound to graph, source and sink. graph must
// be built (ArcListGraph.Build called, if that is the concrete type in use)
// before the first Solve.
func NewEngine(graph ResidualGraph, source, sink NodeIndex, opts FlowOptions) (*Engine, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	return &Engine{graph: graph, source: source, sink: sink, opts: opts}, nil
}

// SetArcCapacity mutates the capacity of the direct arc underlying a's pair
// and invalidates the result of any prior Solve. If the arc currently
// carries more flow than newCapacity allows, the arc is reset to empty
// residual on both sides: this silently breaks preflow invariants, but is
// safe because Solve always restarts from a fresh preflow. Callers must not
// inspect Flow/Capacity for correctness between this call and the next
// Solve.
func (e *Engine) SetArcCapacity(a ArcIndex, newCapacity int64) error {
	if !e.graph.IsArcValid(a) {
		return ErrInvalidArc
	}
	direct := a
	if !e.graph.IsDirect(direct) {
		direct = e.graph.Opposite(direct)
	}
	if e.solved && e.residual != nil && e.Flow(direct) > newCapacity {
		e.residual[direct] = 0
		e.residual[e.graph.Opposite(direct)] = 0
	}
	e.graph.SetCapacity(direct, newCapacity)
	e.solved = false

	return nil
}

// Flow returns the current flow on arc a: residual[opposite(a)] for a direct
// arc, or -residual[a] for a reverse arc.
func (e *Engine) Flow(a ArcIndex) int64 {
	if e.graph.IsDirect(a) {
		return e.residual[e.graph.Opposite(a)]
	}
	return -e.residual[a]
}

// Capacity returns the original capacity of the direct arc underlying a's
// pair.
func (e *Engine) Capacity(a ArcIndex) int64 {
	return e.graph.Capacity(a)
}

// OptimalFlow returns the net flow into the sink after a completed Solve.
// It is zero whenever source or sink lies outside the graph's node range.
func (e *Engine) OptimalFlow() int64 {
	if !e.endpointsValid() {
		return 0
	}

	return e.excess[e.sink]
}

// Status returns the outcome of the most recent Solve.
func (e *Engine) Status() Status { return e.status }

// endpointsValid reports whether both source and sink fall within the
// graph's node range. A caller-supplied source or sink outside
// [0, NumNodes()) can never carry flow; Solve and the cut accessors treat
// it as a degenerate zero-flow instance instead of indexing a per-node
// array out of range.
func (e *Engine) endpointsValid() bool {
	n := e.graph.NumNodes()
	return int(e.source) >= 0 && int(e.source) < n && int(e.sink) >= 0 && int(e.sink) < n
}

// allocate (re)allocates the per-node and per-arc scratch arrays against
// the graph's current reservation, if they are not already sized correctly.
func (e *Engine) allocate() {
	n := e.graph.NumNodes()
	numArcs := 2 * e.graph.NumArcs()
	if len(e.residual) != numArcs {
		e.residual = make([]int64, numArcs)
	}
	if len(e.excess) != n {
		e.excess = make([]int64, n)
		e.height = make([]int32, n)
		e.firstAdmissibleArc = make([]ArcIndex, n)
		e.skipCount = make([]int, n)
	}
	if e.pq == nil {
		e.pq = newPriorityQueueWithRestrictedPush(n)
	}
}

// Solve computes a maximum flow from source to sink and, as a side effect,
// a minimum s-t cut retrievable via GetSourceSideMinCut/GetSinkSideMinCut.
// Every call starts from a fresh preflow; Solve does not support incremental
// re-solving.
func (e *Engine) Solve() Status {
	e.opts.normalize()
	e.allocate()

	n := e.graph.NumNodes()
	for v := 0; v < n; v++ {
		e.excess[v] = 0
		e.height[v] = 0
		e.firstAdmissibleArc[v] = e.graph.FirstOutgoingOrOppositeIncomingArc(NodeIndex(v))
		e.skipCount[v] = 0
	}
	for pair := 0; pair < e.graph.NumArcs(); pair++ {
		direct := ArcIndex(2 * pair)
		cap := e.graph.Capacity(direct)
		e.residual[direct] = cap
		e.residual[direct^1] = 0
	}
	e.totalSourceOutflow = 0
	e.pq.reset()

	if !e.endpointsValid() {
		// Source or sink lies outside [0, n): no flow can ever be pushed.
		// Report the trivial optimum rather than indexing height/excess
		// with an out-of-range node.
		e.status = StatusOptimal
		e.solved = true
		if e.opts.Verbose {
			logf("maxflow: solve skipped, source=%d sink=%d outside [0,%d)", e.source, e.sink, n)
		}

		return e.status
	}
	e.height[e.source] = int32(n)

	if e.opts.Verbose {
		logf("maxflow: solve start n=%d arcs=%d source=%d sink=%d", n, e.graph.NumArcs(), e.source, e.sink)
	}

	for {
		pushed := e.saturateOutgoingArcsFromSource()
		if pushed == 0 {
			break
		}
		for i := range e.skipCount {
			e.skipCount[i] = 0
		}
		for {
			e.globalUpdate()
			deferred := e.drainActiveQueue()
			if e.opts.Verbose {
				logf("maxflow: global-update pass, deferred=%d", deferred)
			}
			if deferred == 0 {
				break
			}
		}
		e.pushFlowExcessBackToSource()
	}

	e.status = StatusOptimal
	if e.excess[e.sink] >= MaxCapacity && e.augmentingPathExists() {
		e.status = StatusIntOverflow
	}
	e.solved = true

	if e.opts.Verbose {
		logf("maxflow: solve done status=%s flow=%d", e.status, e.OptimalFlow())
	}

	return e.status
}

// saturateOutgoingArcsFromSource pushes as much flow as possible along each
// direct arc leaving the source whose head is not already marked
// unreachable (height >= n), capping the cumulative out-flow from the
// source at MaxCapacity so overflow remains detectable. It returns the
// total amount pushed.
func (e *Engine) saturateOutgoingArcsFromSource() int64 {
	n := int32(e.graph.NumNodes())
	var pushed int64
	for a := e.graph.FirstOutgoingArc(e.source); a != NilArc; a = e.graph.NextOutgoingArc(a) {
		if e.residual[a] <= 0 {
			continue
		}
		head := e.graph.Head(a)
		if e.height[head] >= n {
			continue
		}
		delta := e.residual[a]
		if e.totalSourceOutflow+delta > MaxCapacity {
			delta = MaxCapacity - e.totalSourceOutflow
			if delta <= 0 {
				break
			}
		}
		e.pushFlow(a, delta)
		e.totalSourceOutflow += delta
		pushed += delta
		if e.totalSourceOutflow >= MaxCapacity {
			break
		}
	}

	return pushed
}

// pushFlow sends delta units of flow along arc a, updating both residuals
// in the pair and both endpoints' excess.
func (e *Engine) pushFlow(a ArcIndex, delta int64) {
	if delta == 0 {
		return
	}
	opp := e.graph.Opposite(a)
	e.residual[a] -= delta
	e.residual[opp] += delta
	e.excess[e.graph.Tail(a)] -= delta
	e.excess[e.graph.Head(a)] += delta
}

// globalUpdate recomputes every node's height via a reverse BFS from the
// sink over residual arcs, and refills the active-node queue with reached,
// still-active nodes in BFS order (so pushes into it never violate the
// restricted-push contract). Nodes unreached by the BFS are set to height
// 2n-1, marking them as unable to reach the sink. As a side optimization,
// whenever the BFS discovers a node with positive excess, that excess is
// immediately pushed one step closer to the sink.
func (e *Engine) globalUpdate() {
	n := int32(e.graph.NumNodes())
	numNodes := e.graph.NumNodes()
	visited := make([]bool, numNodes)
	queue := make([]NodeIndex, 0, numNodes)

	for v := 0; v < numNodes; v++ {
		e.height[v] = 2*n - 1
	}
	e.height[e.sink] = 0
	e.height[e.source] = n
	visited[e.sink] = true
	visited[e.source] = true
	queue = append(queue, e.sink)

	for i := 0; i < len(queue); i++ {
		w := queue[i]
		for b := e.graph.FirstOutgoingOrOppositeIncomingArc(w); b != NilArc; b = e.graph.NextOutgoingOrOppositeIncomingArc(b) {
			opp := e.graph.Opposite(b)
			if e.residual[opp] <= 0 {
				continue
			}
			h := e.graph.Head(b)
			if visited[h] {
				continue
			}
			visited[h] = true
			e.height[h] = e.height[w] + 1
			if e.excess[h] > 0 {
				delta := e.excess[h]
				if e.residual[opp] < delta {
					delta = e.residual[opp]
				}
				e.pushFlow(opp, delta)
			}
			queue = append(queue, h)
		}
	}

	e.pq.reset()
	for _, v := range queue {
		if v == e.source || v == e.sink {
			continue
		}
		if e.excess[v] > 0 {
			e.pq.push(v, e.height[v])
		}
	}
}

// drainActiveQueue repeatedly discharges the highest-height active node
// until the queue empties, and returns the number of nodes whose skip count
// exceeded skipThreshold during this pass (such nodes are left inactive,
// to be picked up again by the next globalUpdate rather than re-queued at a
// priority the restricted-push contract would reject).
func (e *Engine) drainActiveQueue() int {
	n := int32(e.graph.NumNodes())
	deferred := 0
	for !e.pq.isEmpty() {
		v := e.pq.pop()
		if e.excess[v] <= 0 || e.height[v] >= n {
			continue
		}
		raised := e.discharge(v)
		if raised > 1 {
			e.skipCount[v]++
			if e.skipCount[v] > skipThreshold {
				deferred++
				continue
			}
		}
		if e.excess[v] > 0 && e.height[v] < n {
			e.pq.push(v, e.height[v])
		}
	}

	return deferred
}

// discharge drains v's excess via admissible residual-neighbor arcs,
// relabeling v whenever none remain, until v's excess reaches zero or its
// height reaches n (meaning it can no longer reach the sink). It returns
// how much v's height increased during this call.
func (e *Engine) discharge(v NodeIndex) int32 {
	n := int32(e.graph.NumNodes())
	startHeight := e.height[v]

	for e.excess[v] > 0 && e.height[v] < n {
		admissible := NilArc
		for a := e.firstAdmissibleArc[v]; a != NilArc; a = e.graph.NextOutgoingOrOppositeIncomingArc(a) {
			if e.residual[a] > 0 && e.height[v] == e.height[e.graph.Head(a)]+1 {
				admissible = a
				break
			}
		}
		if admissible == NilArc {
			e.relabel(v)
			continue
		}
		e.firstAdmissibleArc[v] = admissible

		head := e.graph.Head(admissible)
		delta := e.excess[v]
		if e.residual[admissible] < delta {
			delta = e.residual[admissible]
		}
		wasInactive := e.excess[head] <= 0
		e.pushFlow(admissible, delta)
		if wasInactive && e.excess[head] > 0 && head != e.source && head != e.sink {
			e.pq.push(head, e.height[head])
		}
	}

	return e.height[v] - startHeight
}

// relabel sets v's height to one more than the minimum height among heads
// reachable via a positive-residual arc, and remembers the arc that
// attained that minimum as v's new first-admissible hint. If v has no
// positive-residual arc at all, its height is set to n, marking it unable
// to push further.
func (e *Engine) relabel(v NodeIndex) {
	n := int32(e.graph.NumNodes())
	minHeight := int32(2*e.graph.NumNodes() - 1)
	newFirst := NilArc
	for a := e.graph.FirstOutgoingOrOppositeIncomingArc(v); a != NilArc; a = e.graph.NextOutgoingOrOppositeIncomingArc(a) {
		if e.residual[a] <= 0 {
			continue
		}
		h := e.height[e.graph.Head(a)]
		if h < minHeight {
			minHeight = h
			newFirst = a
		}
	}
	if newFirst == NilArc {
		e.height[v] = n
		return
	}
	e.height[v] = minHeight + 1
	e.firstAdmissibleArc[v] = newFirst
}

// dfsFrame is one stack entry of the iterative cycle-cancelling DFS in
// pushFlowExcessBackToSource: the node being explored and the arc it will
// resume scanning from.
type dfsFrame struct {
	node NodeIndex
	arc  ArcIndex
}

// pushFlowExcessBackToSource restores excess[v] == 0 for every node except
// source and sink. It first walks the positive-flow subgraph (direct arcs
// a with Flow(a) > 0) depth-first from the source, cancelling any cycle it
// closes (Tarjan-style: a branch-index stack plus a per-node on-stack flag;
// closing a back edge subtracts the cycle's minimum flow from every arc on
// it and pops every node above the first cycle arc that saturated to zero,
// marking those nodes unvisited so the DFS can reach them again by a
// different route). It then
// walks the resulting post-order — nodes closer to the sink side of the
// remaining flow DAG first — and drains any leftover excess back along a
// residual arc toward the source.
func (e *Engine) pushFlowExcessBackToSource() {
	n := e.graph.NumNodes()
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	state := make([]uint8, n)
	onStackIndex := make([]int, n)
	order := make([]NodeIndex, 0, n)
	var stack []dfsFrame

	push := func(v NodeIndex) {
		state[v] = onStack
		onStackIndex[v] = len(stack)
		stack = append(stack, dfsFrame{node: v, arc: e.graph.FirstOutgoingArc(v)})
	}

	cancelCycle := func(fromIdx int) {
		minFlow := int64(-1)
		for i := fromIdx; i < len(stack); i++ {
			flow := e.residual[e.graph.Opposite(stack[i].arc)]
			if minFlow < 0 || flow < minFlow {
				minFlow = flow
			}
		}
		if minFlow <= 0 {
			return
		}
		for i := fromIdx; i < len(stack); i++ {
			a := stack[i].arc
			opp := e.graph.Opposite(a)
			e.residual[opp] -= minFlow
			e.residual[a] += minFlow
		}
		for i := fromIdx; i < len(stack); i++ {
			if e.residual[e.graph.Opposite(stack[i].arc)] > 0 {
				continue
			}
			for _, f := range stack[i+1:] {
				state[f.node] = unvisited
			}
			stack = stack[:i+1]
			break
		}
	}

	push(e.source)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.node
		a := top.arc
		descended := false
		for a != NilArc {
			flow := e.residual[e.graph.Opposite(a)]
			if flow <= 0 {
				a = e.graph.NextOutgoingArc(a)
				continue
			}
			w := e.graph.Head(a)
			if state[w] == done {
				a = e.graph.NextOutgoingArc(a)
				continue
			}
			if state[w] == unvisited {
				top.arc = a
				push(w)
				descended = true
				break
			}
			// state[w] == onStack: a back edge closes a cycle.
			top.arc = a
			cancelCycle(onStackIndex[w])
			if len(stack) == 0 || stack[len(stack)-1].node != v {
				// v itself was popped as part of the cancellation.
				descended = true
				break
			}
			if e.residual[e.graph.Opposite(a)] <= 0 {
				a = e.graph.NextOutgoingArc(a)
			}
			top.arc = a
			descended = true
			break
		}
		if descended {
			continue
		}
		stack = stack[:len(stack)-1]
		state[v] = done
		order = append(order, v)
	}

	for _, v := range order {
		if v == e.source || v == e.sink {
			continue
		}
		for e.excess[v] > 0 {
			drained := NilArc
			for b := e.graph.FirstOutgoingOrOppositeIncomingArc(v); b != NilArc; b = e.graph.NextOutgoingOrOppositeIncomingArc(b) {
				if e.residual[b] > 0 && !e.graph.IsDirect(b) {
					drained = b
					break
				}
			}
			if drained == NilArc {
				break
			}
			delta := e.excess[v]
			if e.residual[drained] < delta {
				delta = e.residual[drained]
			}
			e.pushFlow(drained, delta)
		}
	}
}

// CheckResult is a debug-mode invariant verifier: node excesses are zero
// away from source/sink, every residual is non-negative, every arc pair
// reconstructs its original capacity, and — unless the solve overflowed —
// no augmenting path remains. Intended for tests and benchmarks, not the
// hot path.
func (e *Engine) CheckResult() error {
	if !e.solved {
		return ErrNotSolved
	}
	for v := 0; v < e.graph.NumNodes(); v++ {
		nv := NodeIndex(v)
		if nv == e.source || nv == e.sink {
			continue
		}
		if e.excess[nv] != 0 {
			return fmt.Errorf("%w: node %d has nonzero excess %d", ErrInvariant, v, e.excess[nv])
		}
	}
	for a := 0; a < len(e.residual); a++ {
		ai := ArcIndex(a)
		if e.residual[ai] < 0 {
			return fmt.Errorf("%w: arc %d has negative residual %d", ErrInvariant, a, e.residual[ai])
		}
	}
	for pair := 0; pair < e.graph.NumArcs(); pair++ {
		direct := ArcIndex(2 * pair)
		opp := e.graph.Opposite(direct)
		if e.residual[direct]+e.residual[opp] != e.graph.Capacity(direct) {
			return fmt.Errorf("%w: arc pair %d does not reconstruct capacity", ErrInvariant, pair)
		}
	}
	if e.status != StatusIntOverflow && e.augmentingPathExists() {
		return fmt.Errorf("%w: augmenting path exists after an OPTIMAL solve", ErrInvariant)
	}

	return nil
}

// CheckRelabelPrecondition is a debug-mode invariant verifier ported from
// original_source/ortools/graph/generic_max_flow.h:340: relabel(v) is only
// ever correct to call when v is active (positive excess) and every arc
// leaving v with positive residual capacity is inadmissible, i.e. v's
// height is not exactly one more than that arc's head. Intended for tests
// exercising discharge/relabel directly, not the hot path.
func (e *Engine) CheckRelabelPrecondition(v NodeIndex) error {
	if e.excess[v] <= 0 {
		return fmt.Errorf("%w: node %d is not active", ErrInvariant, v)
	}
	for a := e.graph.FirstOutgoingOrOppositeIncomingArc(v); a != NilArc; a = e.graph.NextOutgoingOrOppositeIncomingArc(a) {
		if e.residual[a] > 0 && e.height[v] == e.height[e.graph.Head(a)]+1 {
			return fmt.Errorf("%w: node %d has admissible arc %d before relabel", ErrInvariant, v, a)
		}
	}

	return nil
}

func logf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
