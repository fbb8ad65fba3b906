package maxflow

// priorityQueueWithRestrictedPush is a max-priority queue over NodeIndex
// elements under the restricted-push contract: every pushed priority p must
// satisfy p >= currentMaxPriority()-1. Under that contract the queue can be
// split into two LIFO stacks, one per priority parity, since within a stack
// the top is always its parity's maximum: push only ever adds an element
// whose priority is the current max, the current max minus one, or higher
// than both (a fresh maximum), so each stack stays sorted by construction.
//
// All operations are O(1). Violating the push contract, or popping an empty
// queue, is a programmer error; both panic rather than silently misbehave,
// matching the "undefined behavior in release, defensive check in debug"
// framing this queue is specified under.
type priorityQueueWithRestrictedPush struct {
	// stack[0] holds even-priority elements, stack[1] holds odd-priority
	// elements, each ordered ascending so the last element is the max.
	stack    [2][]NodeIndex
	priority [2][]int32
}

// newPriorityQueueWithRestrictedPush returns an empty queue with room for up
// to capacityHint elements before either stack must grow.
func newPriorityQueueWithRestrictedPush(capacityHint int) *priorityQueueWithRestrictedPush {
	half := capacityHint/2 + 1
	return &priorityQueueWithRestrictedPush{
		stack:    [2][]NodeIndex{make([]NodeIndex, 0, half), make([]NodeIndex, 0, half)},
		priority: [2][]int32{make([]int32, 0, half), make([]int32, 0, half)},
	}
}

// reset empties both stacks without releasing their backing arrays.
func (q *priorityQueueWithRestrictedPush) reset() {
	q.stack[0] = q.stack[0][:0]
	q.stack[1] = q.stack[1][:0]
	q.priority[0] = q.priority[0][:0]
	q.priority[1] = q.priority[1][:0]
}

// isEmpty reports whether the queue has no elements.
func (q *priorityQueueWithRestrictedPush) isEmpty() bool {
	return len(q.stack[0]) == 0 && len(q.stack[1]) == 0
}

// push inserts v with priority p. p must be >= currentMaxPriority()-1 once
// the queue is non-empty; violating this is a programmer error.
func (q *priorityQueueWithRestrictedPush) push(v NodeIndex, p int32) {
	if !q.isEmpty() && p < q.currentMaxPriority()-1 {
		panic("maxflow: push violates the restricted-push contract")
	}
	parity := int(p & 1)
	q.stack[parity] = append(q.stack[parity], v)
	q.priority[parity] = append(q.priority[parity], p)
}

// currentMaxPriority returns the highest priority currently queued.
// Panics if the queue is empty.
func (q *priorityQueueWithRestrictedPush) currentMaxPriority() int32 {
	if q.isEmpty() {
		panic("maxflow: currentMaxPriority on empty priority queue")
	}
	var evenTop, oddTop int32 = -1, -1
	hasEven := len(q.priority[0]) > 0
	hasOdd := len(q.priority[1]) > 0
	if hasEven {
		evenTop = q.priority[0][len(q.priority[0])-1]
	}
	if hasOdd {
		oddTop = q.priority[1][len(q.priority[1])-1]
	}
	if !hasEven {
		return oddTop
	}
	if !hasOdd {
		return evenTop
	}
	if evenTop > oddTop {
		return evenTop
	}
	return oddTop
}

// pop removes and returns the element with the greatest priority, breaking
// ties LIFO (last pushed wins). Panics if the queue is empty.
func (q *priorityQueueWithRestrictedPush) pop() NodeIndex {
	if q.isEmpty() {
		panic("maxflow: pop on empty priority queue")
	}
	hasEven := len(q.stack[0]) > 0
	hasOdd := len(q.stack[1]) > 0
	parity := 0
	switch {
	case hasEven && hasOdd:
		if q.priority[0][len(q.priority[0])-1] >= q.priority[1][len(q.priority[1])-1] {
			parity = 0
		} else {
			parity = 1
		}
	case hasEven:
		parity = 0
	default:
		parity = 1
	}
	last := len(q.stack[parity]) - 1
	v := q.stack[parity][last]
	q.stack[parity] = q.stack[parity][:last]
	q.priority[parity] = q.priority[parity][:last]

	return v
}
