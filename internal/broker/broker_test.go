package broker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testTTL/testTick keep these tests fast without changing their semantics:
// the broker's lease tracker still sweeps on a fixed interval, just a much
// shorter one than the production default.
const (
	testTTL  = 60 * time.Millisecond
	testTick = 10 * time.Millisecond
)

func newTestBroker(t *testing.T) *Broker {
	t.Helper()
	b, err := New(WithLeaseTTL(testTTL), WithExpiryTick(testTick))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, b.Close()) })
	return b
}

type testSub struct {
	cancel   context.CancelFunc
	received chan LeasedMessage
	done     chan error
}

func subscribeTest(t *testing.T, b *Broker, topic, sub string) *testSub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	ts := &testSub{
		cancel:   cancel,
		received: make(chan LeasedMessage, 64),
		done:     make(chan error, 1),
	}
	go func() {
		err := b.Subscribe(ctx, topic, sub, 0, func(sctx context.Context, msg LeasedMessage) error {
			select {
			case ts.received <- msg:
				return nil
			case <-sctx.Done():
				return sctx.Err()
			}
		})
		ts.done <- err
		// Closing lets the cleanup below return at once when the test body
		// has already consumed the loop's error.
		close(ts.done)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-ts.done:
		case <-time.After(time.Second):
			t.Fatalf("subscribe loop for %s/%s did not exit", topic, sub)
		}
	})
	return ts
}

func (ts *testSub) recv(t *testing.T, timeout time.Duration) LeasedMessage {
	t.Helper()
	select {
	case m := <-ts.received:
		return m
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for delivery")
		return LeasedMessage{}
	}
}

func (ts *testSub) expectNoDelivery(t *testing.T, window time.Duration) {
	t.Helper()
	select {
	case m := <-ts.received:
		t.Fatalf("unexpected delivery: index=%d data=%q", m.Lease.Index, m.Message.Data)
	case <-time.After(window):
	}
}

func mustCreateTopicAndSub(t *testing.T, b *Broker, topic, sub string) {
	t.Helper()
	_, err := b.CreateTopic(topic)
	require.NoError(t, err)
	_, err = b.CreateSubscription(topic, sub)
	require.NoError(t, err)
}

// Acking every delivered message leaves nothing to redeliver.
func TestPublishThenAckLeavesNothingToRedeliver(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")

	sub := subscribeTest(t, b, "t", "s")

	_, err := b.Publish("t", nil, []byte("a"))
	require.NoError(t, err)
	_, err = b.Publish("t", nil, []byte("b"))
	require.NoError(t, err)

	m1 := sub.recv(t, time.Second)
	m2 := sub.recv(t, time.Second)

	require.Equal(t, []byte("a"), m1.Message.Data)
	require.Equal(t, []byte("b"), m2.Message.Data)
	require.NotEqual(t, m1.Lease.ID, m2.Lease.ID)

	require.NoError(t, b.Ack("t", "s", m1.Lease.ID))
	require.NoError(t, b.Ack("t", "s", m2.Lease.ID))

	sub.expectNoDelivery(t, 2*testTTL+50*time.Millisecond)
}

// Nacking a message redelivers it under a fresh lease id.
func TestNackRedeliversUnderNewLease(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	_, err := b.Publish("t", nil, []byte("x"))
	require.NoError(t, err)

	m1 := sub.recv(t, time.Second)
	require.Equal(t, []byte("x"), m1.Message.Data)

	require.NoError(t, b.Nack("t", "s", m1.Lease.ID))

	m2 := sub.recv(t, time.Second)
	require.Equal(t, []byte("x"), m2.Message.Data)
	require.NotEqual(t, m1.Lease.ID, m2.Lease.ID)

	require.NoError(t, b.Ack("t", "s", m2.Lease.ID))
}

// An unacked lease expires on its own and is redelivered under a new one.
func TestUnackedLeaseExpiresAndRedelivers(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	_, err := b.Publish("t", nil, []byte("y"))
	require.NoError(t, err)

	m1 := sub.recv(t, time.Second)
	require.Equal(t, []byte("y"), m1.Message.Data)
	// Client does not ack.

	m2 := sub.recv(t, 2*testTTL+200*time.Millisecond)
	require.Equal(t, []byte("y"), m2.Message.Data)
	require.NotEqual(t, m1.Lease.ID, m2.Lease.ID)

	require.NoError(t, b.Ack("t", "s", m2.Lease.ID))
}

// A publish is delivered to every subscription attached to the topic,
// each under its own lease. Lease ids are numbered per subscription, so
// each subscription's first lease carries the same id.
func TestPublishFansOutToEverySubscription(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateTopic("t")
	require.NoError(t, err)
	_, err = b.CreateSubscription("t", "s1")
	require.NoError(t, err)
	_, err = b.CreateSubscription("t", "s2")
	require.NoError(t, err)

	sub1 := subscribeTest(t, b, "t", "s1")
	sub2 := subscribeTest(t, b, "t", "s2")

	_, err = b.Publish("t", nil, []byte("z"))
	require.NoError(t, err)

	m1 := sub1.recv(t, time.Second)
	m2 := sub2.recv(t, time.Second)

	require.Equal(t, []byte("z"), m1.Message.Data)
	require.Equal(t, []byte("z"), m2.Message.Data)
	require.Equal(t, m1.Lease.ID, m2.Lease.ID)

	require.NoError(t, b.Ack("t", "s1", m1.Lease.ID))
	require.NoError(t, b.Ack("t", "s2", m2.Lease.ID))
}

// Messages published before a subscriber connects are still delivered, in
// publish order, once it does.
func TestBacklogDeliversInPublishOrderAfterLateSubscribe(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")

	for _, payload := range []string{"p1", "p2", "p3"} {
		_, err := b.Publish("t", nil, []byte(payload))
		require.NoError(t, err)
	}

	sub := subscribeTest(t, b, "t", "s")

	for _, want := range []string{"p1", "p2", "p3"} {
		m := sub.recv(t, time.Second)
		require.Equal(t, []byte(want), m.Message.Data)
		require.NoError(t, b.Ack("t", "s", m.Lease.ID))
	}
}

// A second concurrent Subscribe on the same subscription is rejected until
// the first one releases its slot.
func TestSecondConcurrentSubscribeRejectedUntilFirstReleases(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")

	first := subscribeTest(t, b, "t", "s")

	// Wait until the first stream actually holds the active slot.
	require.Eventually(t, func() bool {
		ts, _ := b.topics.get("t")
		s, _ := ts.subs.get("s")
		return s.currentToken() != nil
	}, time.Second, time.Millisecond)

	err := b.Subscribe(context.Background(), "t", "s", 0, func(context.Context, LeasedMessage) error {
		return nil
	})
	require.ErrorIs(t, err, ErrAlreadySubscribed)

	first.cancel()
	select {
	case <-first.done:
	case <-time.After(time.Second):
		t.Fatal("first subscriber did not release its slot")
	}

	// Retry after the slot frees up.
	retryCtx, retryCancel := context.WithCancel(context.Background())
	defer retryCancel()
	retryDone := make(chan error, 1)
	retryReceived := make(chan LeasedMessage, 1)
	go func() {
		retryDone <- b.Subscribe(retryCtx, "t", "s", 0, func(sctx context.Context, msg LeasedMessage) error {
			select {
			case retryReceived <- msg:
				return nil
			case <-sctx.Done():
				return sctx.Err()
			}
		})
	}()

	_, err = b.Publish("t", nil, []byte("after-retry"))
	require.NoError(t, err)

	select {
	case m := <-retryReceived:
		require.Equal(t, []byte("after-retry"), m.Message.Data)
	case <-time.After(time.Second):
		t.Fatal("retried subscribe never received a message")
	}

	retryCancel()
	select {
	case <-retryDone:
	case <-time.After(time.Second):
		t.Fatal("retried subscriber did not exit")
	}
}

func TestPublishUnknownTopic(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.Publish("missing", nil, []byte("x"))
	require.ErrorIs(t, err, ErrTopicNotFound)
}

func TestCreateTopicRejectsDuplicateName(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateTopic("t")
	require.NoError(t, err)
	_, err = b.CreateTopic("t")
	require.ErrorIs(t, err, ErrTopicAlreadyExists)
}

func TestCreateSubscriptionRejectsDuplicateName(t *testing.T) {
	b := newTestBroker(t)
	_, err := b.CreateTopic("t")
	require.NoError(t, err)
	_, err = b.CreateSubscription("t", "s")
	require.NoError(t, err)
	_, err = b.CreateSubscription("t", "s")
	require.ErrorIs(t, err, ErrSubscriptionExists)
}

func TestAckUnknownLeaseFails(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	err := b.Ack("t", "s", 12345)
	require.ErrorIs(t, err, ErrUnknownLease)
}

// Cascade delete (invariant 6): after DeleteTopic, Subscribe on any of its
// subscriptions returns SubscriptionNotFound or TopicNotFound.
func TestCascadeDeleteUnresolvesSubscriptions(t *testing.T) {
	b := newTestBroker(t)
	mustCreateTopicAndSub(t, b, "t", "s")
	sub := subscribeTest(t, b, "t", "s")

	require.NoError(t, b.DeleteTopic("t"))

	select {
	case err := <-sub.done:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("active stream was not cancelled by cascade delete")
	}

	err := b.Subscribe(context.Background(), "t", "s", 0, func(context.Context, LeasedMessage) error { return nil })
	require.True(t, err == ErrTopicNotFound || err == ErrSubscriptionNotFound)
}

func ExampleBroker_Publish() {
	b, err := New()
	if err != nil {
		panic(err)
	}
	defer b.Close()

	if _, err := b.CreateTopic("events"); err != nil {
		panic(err)
	}
	index, err := b.Publish("events", map[string]string{"kind": "signup"}, []byte("hello"))
	if err != nil {
		panic(err)
	}
	fmt.Println(index)
	// Output: 1
}
