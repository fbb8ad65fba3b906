package maxflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityQueuePopOrderAndTies(t *testing.T) {
	q := newPriorityQueueWithRestrictedPush(8)
	q.push(1, 5)
	q.push(2, 5) // tie on priority 5, LIFO within the parity stack
	q.push(3, 4) // restricted push: 4 >= 5-1

	require.Equal(t, int32(5), q.currentMaxPriority())
	require.Equal(t, NodeIndex(2), q.pop()) // last pushed at priority 5
	require.Equal(t, NodeIndex(1), q.pop())
	require.Equal(t, NodeIndex(3), q.pop())
	require.True(t, q.isEmpty())
}

func TestPriorityQueueParitySplit(t *testing.T) {
	q := newPriorityQueueWithRestrictedPush(8)
	q.push(10, 6)
	q.push(11, 7)
	require.Equal(t, int32(7), q.currentMaxPriority())
	require.Equal(t, NodeIndex(11), q.pop())
	require.Equal(t, int32(6), q.currentMaxPriority())
	require.Equal(t, NodeIndex(10), q.pop())
}

func TestPriorityQueuePopEmptyPanics(t *testing.T) {
	q := newPriorityQueueWithRestrictedPush(1)
	require.Panics(t, func() { q.pop() })
}
