// Package broker implements the in-memory message store, per-subscription
// delivery queues, lease expiry tracking, and fan-out registry that back
// riftdb's pub/sub engine. Everything outside this package — gRPC
// decoding, CLI tooling, metrics export — is a collaborator that calls the
// Broker through the operations in this file.
package broker

import (
	"context"
	"log/slog"
	"sort"
	"time"
)

// Option configures a Broker at construction time.
type Option func(*Broker) error

// WithLogger injects a structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Broker) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}

// WithHooks injects a Hooks implementation (e.g. a metrics collector).
// Defaults to NoopHooks.
func WithHooks(hooks Hooks) Option {
	return func(b *Broker) error {
		if hooks != nil {
			b.hooks = hooks
		}
		return nil
	}
}

// WithLeaseTTL overrides the broker-wide constant lease duration.
func WithLeaseTTL(ttl time.Duration) Option {
	return func(b *Broker) error {
		if ttl > 0 {
			b.ttl = ttl
		}
		return nil
	}
}

// WithExpiryTick overrides how often the background sweep checks for
// expired leases.
func WithExpiryTick(d time.Duration) Option {
	return func(b *Broker) error {
		if d > 0 {
			b.expiryTick = d
		}
		return nil
	}
}

// Broker is the public operations surface: Publish, Subscribe, Ack, Nack,
// plus topic/subscription CRUD.
type Broker struct {
	topics     *nameTable[*topicState]
	ttl        time.Duration
	expiryTick time.Duration
	hooks      Hooks
	logger     *slog.Logger
	tracker    *leaseTracker
}

// New constructs a Broker and starts its background lease-expiry sweep.
func New(opts ...Option) (*Broker, error) {
	b := &Broker{
		topics:     newNameTable[*topicState](),
		ttl:        DefaultLeaseTTL,
		expiryTick: DefaultExpiryTick,
		hooks:      NoopHooks{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.tracker = newLeaseTracker(b.expiryTick, b.allQueues, b.hooks, b.logger)
	b.tracker.Start()
	return b, nil
}

// Close stops the background lease-expiry sweep. It does not cancel active
// subscriber streams; callers own their own lifecycles via the ctx passed
// to Subscribe.
func (b *Broker) Close() error {
	b.tracker.Stop()
	return nil
}

func (b *Broker) allQueues() []trackedQueue {
	var out []trackedQueue
	for _, ts := range b.topics.snapshot() {
		topicName := ts.snapshotInfo().Name
		for _, name := range ts.subs.names() {
			sub, ok := ts.subs.get(name)
			if !ok {
				continue
			}
			out = append(out, trackedQueue{topic: topicName, subscription: name, queue: sub.queue})
		}
	}
	return out
}

// --- Topic CRUD ---

// CreateTopic creates a new topic. Returns ErrTopicAlreadyExists if the
// name is taken.
func (b *Broker) CreateTopic(name string) (TopicInfo, error) {
	if name == "" {
		return TopicInfo{}, InvalidArgument("topic name must not be empty")
	}
	ts := newTopicState(name, time.Now())
	existing, inserted := b.topics.putIfAbsent(name, ts)
	if !inserted {
		return TopicInfo{}, ErrTopicAlreadyExists
	}
	return existing.snapshotInfo(), nil
}

// GetTopic returns the named topic's info.
func (b *Broker) GetTopic(name string) (TopicInfo, error) {
	ts, ok := b.topics.get(name)
	if !ok {
		return TopicInfo{}, ErrTopicNotFound
	}
	return ts.snapshotInfo(), nil
}

// ListTopics returns every topic's info, ordered by name for stable
// streaming output.
func (b *Broker) ListTopics() []TopicInfo {
	snaps := b.topics.snapshot()
	out := make([]TopicInfo, 0, len(snaps))
	for _, ts := range snaps {
		out = append(out, ts.snapshotInfo())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UpdateTopic refreshes the topic's Updated timestamp. A topic's name is
// its identity and carries no other mutable fields, so this is a no-op
// touch rather than a field-by-field update.
func (b *Broker) UpdateTopic(name string) (TopicInfo, error) {
	ts, ok := b.topics.get(name)
	if !ok {
		return TopicInfo{}, ErrTopicNotFound
	}
	ts.touchUpdated(time.Now())
	return ts.snapshotInfo(), nil
}

// DeleteTopic removes the topic and cascades deletion to every attached
// subscription, cancelling their active streams.
func (b *Broker) DeleteTopic(name string) error {
	ts, ok := b.topics.delete(name)
	if !ok {
		return ErrTopicNotFound
	}
	detachAllSubscriptions(ts)
	return nil
}

// --- Subscription CRUD ---

// CreateSubscription creates a new subscription on an existing topic.
// Returns ErrSubscriptionExists if (topic, name) is already attached.
func (b *Broker) CreateSubscription(topicName, name string) (SubscriptionInfo, error) {
	if name == "" {
		return SubscriptionInfo{}, InvalidArgument("subscription name must not be empty")
	}
	ts, ok := b.topics.get(topicName)
	if !ok {
		return SubscriptionInfo{}, ErrTopicNotFound
	}
	state := newSubscriptionState(topicName, name, time.Now())
	existing, inserted := attachSubscription(ts, name, state)
	if !inserted {
		return SubscriptionInfo{}, ErrSubscriptionExists
	}
	return existing.snapshotInfo(), nil
}

// GetSubscription returns the (topic, name) subscription's info.
func (b *Broker) GetSubscription(topicName, name string) (SubscriptionInfo, error) {
	ts, ok := b.topics.get(topicName)
	if !ok {
		return SubscriptionInfo{}, ErrTopicNotFound
	}
	sub, ok := ts.subs.get(name)
	if !ok {
		return SubscriptionInfo{}, ErrSubscriptionNotFound
	}
	return sub.snapshotInfo(), nil
}

// ListSubscriptions returns subscriptions attached to topicFilter, or to
// every topic if topicFilter is empty.
func (b *Broker) ListSubscriptions(topicFilter string) ([]SubscriptionInfo, error) {
	var topics []*topicState
	if topicFilter != "" {
		ts, ok := b.topics.get(topicFilter)
		if !ok {
			return nil, ErrTopicNotFound
		}
		topics = []*topicState{ts}
	} else {
		topics = b.topics.snapshot()
	}

	var out []SubscriptionInfo
	for _, ts := range topics {
		for _, sub := range ts.subs.snapshot() {
			out = append(out, sub.snapshotInfo())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// UpdateSubscription refreshes the subscription's Updated timestamp; see
// UpdateTopic for why this is a no-op refresh.
func (b *Broker) UpdateSubscription(topicName, name string) (SubscriptionInfo, error) {
	ts, ok := b.topics.get(topicName)
	if !ok {
		return SubscriptionInfo{}, ErrTopicNotFound
	}
	sub, ok := ts.subs.get(name)
	if !ok {
		return SubscriptionInfo{}, ErrSubscriptionNotFound
	}
	sub.touchUpdated(time.Now())
	return sub.snapshotInfo(), nil
}

// DeleteSubscription removes the subscription, cancelling its active
// stream if one is live and leaving its in-flight leases unresolvable.
func (b *Broker) DeleteSubscription(topicName, name string) error {
	ts, ok := b.topics.get(topicName)
	if !ok {
		return ErrTopicNotFound
	}
	if !detachSubscription(ts, name) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// --- Pub/Sub ---

// Publish appends data to topicName's message store and fans the
// resulting index out to every attached subscription. It never suspends
// on subscriber back-pressure.
func (b *Broker) Publish(topicName string, attrs map[string]string, data []byte) (uint64, error) {
	if topicName == "" {
		return 0, InvalidArgument("topic must not be empty")
	}
	ts, ok := b.topics.get(topicName)
	if !ok {
		return 0, ErrTopicNotFound
	}
	now := time.Now()
	index := publishFanout(ts, attrs, data, now)
	ts.touchUpdated(now)
	b.hooks.OnPublish(topicName, index, ts.subs.len())
	return index, nil
}

// Sender delivers one leased message to a subscriber stream. It must
// block until delivery completes (or fails) before Subscribe pulls the
// next index — this is what makes a slow subscriber's own stream, and
// only its own stream, apply back-pressure.
type Sender func(ctx context.Context, msg LeasedMessage) error

// Subscribe installs the caller as subscriptionName's one active delivery
// channel and runs the pull-lease-send loop until ctx is cancelled, the
// subscription is deleted, or send returns an error. ttl of zero uses the
// broker's default lease TTL.
func (b *Broker) Subscribe(ctx context.Context, topicName, subscriptionName string, ttl time.Duration, send Sender) error {
	ts, ok := b.topics.get(topicName)
	if !ok {
		return ErrTopicNotFound
	}
	sub, ok := ts.subs.get(subscriptionName)
	if !ok {
		return ErrSubscriptionNotFound
	}
	if ttl <= 0 {
		ttl = b.ttl
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := sub.activate(cancel); err != nil {
		return err
	}
	token := sub.currentToken()
	defer sub.deactivate(token)

	for {
		index, ok := sub.queue.pull()
		if !ok {
			select {
			case <-loopCtx.Done():
				return loopCtx.Err()
			case <-sub.queue.wake:
				continue
			}
		}

		msg, ok := ts.store.get(index)
		if !ok {
			// Retired or never-existed index reached us through a stale
			// queue entry; nothing to deliver, move on.
			continue
		}

		leaseID, deadline := sub.queue.beginLease(index, ttl, time.Now())
		lease := Lease{
			Topic:        topicName,
			Subscription: subscriptionName,
			ID:           leaseID,
			Index:        index,
			TTL:          ttl,
			Leased:       deadline.Add(-ttl),
			Deadline:     deadline,
		}

		b.hooks.OnDeliver(topicName, subscriptionName)
		if err := send(loopCtx, LeasedMessage{Lease: lease, Message: msg}); err != nil {
			return err
		}
	}
}

// Ack positively acknowledges lease leaseID, retiring its index for this
// subscription once every subscription that received it has done the
// same.
func (b *Broker) Ack(topicName, subscriptionName string, leaseID uint64) error {
	ts, ok := b.topics.get(topicName)
	if !ok {
		return ErrTopicNotFound
	}
	sub, ok := ts.subs.get(subscriptionName)
	if !ok {
		return ErrSubscriptionNotFound
	}
	index, ok := sub.queue.ack(leaseID)
	if !ok {
		return ErrUnknownLease
	}
	ts.retireFor(index)
	sub.touchUpdated(time.Now())
	b.hooks.OnAck(topicName, subscriptionName)
	return nil
}

// Nack negatively acknowledges lease leaseID, returning its index to the
// head of this subscription's delivery order (the redelivery queue).
func (b *Broker) Nack(topicName, subscriptionName string, leaseID uint64) error {
	ts, ok := b.topics.get(topicName)
	if !ok {
		return ErrTopicNotFound
	}
	sub, ok := ts.subs.get(subscriptionName)
	if !ok {
		return ErrSubscriptionNotFound
	}
	if _, ok := sub.queue.nack(leaseID); !ok {
		return ErrUnknownLease
	}
	b.hooks.OnNack(topicName, subscriptionName)
	return nil
}
