package broker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubQueuePullDrainsRedeliveryBeforePending(t *testing.T) {
	q := newSubQueue()
	q.enqueueNew(1)
	q.enqueueNew(2)

	// Manufacture a redelivery entry the way the delivery loop and nack
	// would: pull 1 out of pending, lease it, then nack it.
	first, _ := q.pull()
	id, _ := q.beginLease(first, time.Second, time.Now())
	_, ok := q.nack(id)
	require.True(t, ok)

	// redelivery holds {1}; pending holds {2}. redelivery must drain first.
	idx, ok := q.pull()
	require.True(t, ok)
	require.Equal(t, uint64(1), idx)

	idx, ok = q.pull()
	require.True(t, ok)
	require.Equal(t, uint64(2), idx)

	_, ok = q.pull()
	require.False(t, ok)
}

func TestSubQueuePullIsFIFOWithinPending(t *testing.T) {
	q := newSubQueue()
	for i := uint64(1); i <= 5; i++ {
		q.enqueueNew(i)
	}
	for i := uint64(1); i <= 5; i++ {
		idx, ok := q.pull()
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestSubQueueAckRemovesInFlightAndRejectsSecondAck(t *testing.T) {
	q := newSubQueue()
	q.enqueueNew(7)
	idx, _ := q.pull()
	leaseID, _ := q.beginLease(idx, time.Second, time.Now())

	gotIdx, ok := q.ack(leaseID)
	require.True(t, ok)
	require.Equal(t, uint64(7), gotIdx)

	_, ok = q.ack(leaseID)
	require.False(t, ok, "second ack of the same lease must fail")
}

func TestSubQueueNackReturnsIndexToRedelivery(t *testing.T) {
	q := newSubQueue()
	q.enqueueNew(3)
	idx, _ := q.pull()
	leaseID, _ := q.beginLease(idx, time.Second, time.Now())

	_, ok := q.nack(leaseID)
	require.True(t, ok)

	_, ok = q.nack(leaseID)
	require.False(t, ok, "second nack of the same lease must fail")

	next, ok := q.pull()
	require.True(t, ok)
	require.Equal(t, uint64(3), next)
}

func TestSubQueueExpireDueMovesPastDeadlinesToRedeliveryInIndexOrder(t *testing.T) {
	q := newSubQueue()
	now := time.Now()

	q.enqueueNew(20)
	q.enqueueNew(10)
	idx1, _ := q.pull() // 20
	idx2, _ := q.pull() // 10

	q.beginLease(idx1, time.Millisecond, now.Add(-time.Hour))
	q.beginLease(idx2, time.Millisecond, now.Add(-time.Hour))

	due := q.expireDue(now)
	require.Equal(t, []uint64{10, 20}, due, "ties break in ascending index order")

	first, ok := q.pull()
	require.True(t, ok)
	require.Equal(t, uint64(10), first)
	second, ok := q.pull()
	require.True(t, ok)
	require.Equal(t, uint64(20), second)
}

func TestSubQueueExpireDueIgnoresFutureDeadlines(t *testing.T) {
	q := newSubQueue()
	q.enqueueNew(1)
	idx, _ := q.pull()
	q.beginLease(idx, time.Hour, time.Now())

	due := q.expireDue(time.Now())
	require.Empty(t, due)
}

func TestSubQueueAllIndicesCoversAllThreeCollections(t *testing.T) {
	q := newSubQueue()
	q.enqueueNew(1) // pending
	q.enqueueNew(2)
	idx, _ := q.pull() // idx == 1, now in-flight once leased
	q.beginLease(idx, time.Hour, time.Now())

	q.enqueueNew(3)
	idx3, _ := q.pull() // idx3 == 2; 3 stays in pending
	leaseID, _ := q.beginLease(idx3, time.Millisecond, time.Now().Add(-time.Hour))
	q.nack(leaseID) // moves 2 to redelivery

	all := q.allIndices()
	require.ElementsMatch(t, []uint64{1, 2, 3}, all)
}
