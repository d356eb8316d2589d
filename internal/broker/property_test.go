package broker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Invariant: at-least-once delivery. A message nacked or left to expire is
// redelivered, never silently dropped.
func TestInvariantAtLeastOnceDelivery(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	_, err := b.Publish("t", nil, []byte("once"))
	require.NoError(t, err)

	seen := map[uint64]int{}
	for i := 0; i < 3; i++ {
		m := sub.recv(t, 2*testTTL+200*time.Millisecond)
		seen[m.Message.Index]++
		if i < 2 {
			require.NoError(t, b.Nack("t", "s", m.Lease.ID))
		} else {
			require.NoError(t, b.Ack("t", "s", m.Lease.ID))
		}
	}
	require.Equal(t, 3, seen[1], "the same message index is redelivered on every nack")
}

// Invariant: no duplicate ack accepted. Once a lease is acked, a second ack
// of the same lease ID fails rather than silently succeeding.
func TestInvariantNoDuplicateAckAccepted(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	_, err := b.Publish("t", nil, []byte("x"))
	require.NoError(t, err)
	m := sub.recv(t, time.Second)

	require.NoError(t, b.Ack("t", "s", m.Lease.ID))
	err = b.Ack("t", "s", m.Lease.ID)
	require.ErrorIs(t, err, ErrUnknownLease)
}

// Invariant: per-subscription first-delivery order. Ignoring redeliveries,
// a single subscription always sees brand-new indices in publish order.
func TestInvariantFirstDeliveryOrderIsPublishOrder(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	const n = 25
	for i := 0; i < n; i++ {
		_, err := b.Publish("t", nil, []byte(fmt.Sprintf("m%02d", i)))
		require.NoError(t, err)
	}

	var lastIndex uint64
	for i := 0; i < n; i++ {
		m := sub.recv(t, time.Second)
		require.Greater(t, m.Message.Index, lastIndex, "first deliveries must strictly increase")
		lastIndex = m.Message.Index
		require.NoError(t, b.Ack("t", "s", m.Lease.ID))
	}
}

// Invariant: fan-out independence. One subscription's ack/nack pace never
// affects what index another subscription on the same topic receives next.
func TestInvariantFanoutIndependence(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateTopic("t")
	require.NoError(t, err)
	_, err = b.CreateSubscription("t", "slow")
	require.NoError(t, err)
	_, err = b.CreateSubscription("t", "fast")
	require.NoError(t, err)

	slow := subscribeTest(t, b, "t", "slow")
	fast := subscribeTest(t, b, "t", "fast")

	const n = 5
	for i := 0; i < n; i++ {
		_, err := b.Publish("t", nil, []byte(fmt.Sprintf("m%d", i)))
		require.NoError(t, err)
	}

	// Drain and ack fast immediately; leave slow's deliveries unacked.
	for i := 0; i < n; i++ {
		m := fast.recv(t, time.Second)
		require.NoError(t, b.Ack("t", "fast", m.Lease.ID))
	}

	var slowIndices []uint64
	for i := 0; i < n; i++ {
		m := slow.recv(t, time.Second)
		slowIndices = append(slowIndices, m.Message.Index)
	}
	require.Equal(t, []uint64{1, 2, 3, 4, 5}, slowIndices, "fast acking did not skip or reorder slow's own queue")
}

// Invariant: lease expiry monotonicity. Every successive lease issued for
// the same (subscription, message) pair carries a later deadline than the
// one before it.
func TestInvariantLeaseExpiryMonotonicity(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	_, err := b.Publish("t", nil, []byte("x"))
	require.NoError(t, err)

	var lastDeadline time.Time
	for i := 0; i < 3; i++ {
		m := sub.recv(t, 2*testTTL+200*time.Millisecond)
		if i > 0 {
			require.True(t, m.Lease.Deadline.After(lastDeadline), "redelivery deadline must move forward")
		}
		lastDeadline = m.Lease.Deadline
		require.NoError(t, b.Nack("t", "s", m.Lease.ID))
	}
}

// Invariant: cascade delete. Deleting a topic tears down every attached
// subscription; none of them remain reachable afterward.
func TestInvariantCascadeDeleteRemovesAllSubscriptions(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateTopic("t")
	require.NoError(t, err)
	for _, name := range []string{"s1", "s2", "s3"} {
		_, err := b.CreateSubscription("t", name)
		require.NoError(t, err)
	}

	require.NoError(t, b.DeleteTopic("t"))

	for _, name := range []string{"s1", "s2", "s3"} {
		_, err := b.GetSubscription("t", name)
		require.ErrorIs(t, err, ErrTopicNotFound)
	}
	_, err = b.GetTopic("t")
	require.ErrorIs(t, err, ErrTopicNotFound)
}

// Concurrency smoke test: many publishers and one subscriber draining
// concurrently must never lose a message or assign a duplicate lease ID.
func TestConcurrentPublishersSingleSubscriberNoLostOrDuplicateLeases(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	const publishers = 8
	const perPublisher = 20
	const total = publishers * perPublisher

	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				_, err := b.Publish("t", nil, []byte(fmt.Sprintf("p%d-%d", p, i)))
				require.NoError(t, err)
			}
		}(p)
	}
	wg.Wait()

	seenIndices := map[uint64]bool{}
	seenLeases := map[uint64]bool{}
	for i := 0; i < total; i++ {
		m := sub.recv(t, 2*time.Second)
		require.False(t, seenIndices[m.Message.Index], "duplicate first delivery of index %d", m.Message.Index)
		require.False(t, seenLeases[m.Lease.ID], "duplicate lease id %d", m.Lease.ID)
		seenIndices[m.Message.Index] = true
		seenLeases[m.Lease.ID] = true
		require.NoError(t, b.Ack("t", "s", m.Lease.ID))
	}
	require.Len(t, seenIndices, total)
}

func TestSubscribeRejectsEmptyTopicOrSubscriptionNames(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()
	err := b.Subscribe(ctx, "", "s", 0, func(context.Context, LeasedMessage) error { return nil })
	require.ErrorIs(t, err, ErrTopicNotFound)

	_, err = b.CreateTopic("t")
	require.NoError(t, err)
	err = b.Subscribe(ctx, "t", "", 0, func(context.Context, LeasedMessage) error { return nil })
	require.ErrorIs(t, err, ErrSubscriptionNotFound)
}
