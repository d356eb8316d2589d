package broker

import (
	"context"
	"sync"
	"time"
)

// nameTable is a generic name-to-value lookup table with lifecycle
// operations, guarded by a single RWMutex. Topics are keyed by name at the
// broker level, and subscriptions are keyed by name within a topic, so both
// registries share this one implementation.
type nameTable[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

func newNameTable[V any]() *nameTable[V] {
	return &nameTable[V]{items: make(map[string]V)}
}

func (t *nameTable[V]) get(name string) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.items[name]
	return v, ok
}

func (t *nameTable[V]) has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.items[name]
	return ok
}

// putIfAbsent inserts v under name only if no entry currently exists,
// returning false (and the existing entry) if one does. This is where
// name uniqueness within a table gets enforced.
func (t *nameTable[V]) putIfAbsent(name string, v V) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.items[name]; ok {
		return existing, false
	}
	t.items[name] = v
	return v, true
}

func (t *nameTable[V]) delete(name string) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.items[name]
	if ok {
		delete(t.items, name)
	}
	return v, ok
}

// snapshot returns a copy of the current values, safe to iterate without
// holding the table's lock — used by fan-out so a slow subscriber can't
// stall new attach/detach calls.
func (t *nameTable[V]) snapshot() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]V, 0, len(t.items))
	for _, v := range t.items {
		out = append(out, v)
	}
	return out
}

func (t *nameTable[V]) names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.items))
	for k := range t.items {
		out = append(out, k)
	}
	return out
}

func (t *nameTable[V]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// activeStream represents the at-most-one live subscriber stream a
// subscription may host at a time.
type activeStream struct {
	cancel context.CancelFunc
}

// subscriptionState is the full runtime state of one subscription: its
// identity, its delivery queue and lease bookkeeping (subQueue), and the
// at-most-one active channel slot that a live Subscribe call occupies.
type subscriptionState struct {
	mu     sync.Mutex
	info   SubscriptionInfo
	queue  *subQueue
	active *activeStream
}

func newSubscriptionState(topic, name string, now time.Time) *subscriptionState {
	return &subscriptionState{
		info: SubscriptionInfo{
			Name:    name,
			Topic:   topic,
			Created: now,
			Updated: now,
		},
		queue: newSubQueue(),
	}
}

// activate installs cancel as the subscription's active channel. Returns
// ErrAlreadySubscribed if one is already installed.
func (s *subscriptionState) activate(cancel context.CancelFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return ErrAlreadySubscribed
	}
	s.active = &activeStream{cancel: cancel}
	return nil
}

// deactivate releases the active channel slot if it still belongs to the
// caller's generation. token must be the *activeStream installed by the
// matching activate call, so a stream that already lost its slot (e.g. to
// subscription deletion) doesn't clobber a newer subscriber's slot.
func (s *subscriptionState) deactivate(token *activeStream) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == token {
		s.active = nil
	}
}

// currentToken returns the active channel's token, for callers that need
// to pass it back to deactivate later.
func (s *subscriptionState) currentToken() *activeStream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// cancelActive cancels whatever stream currently holds the active channel,
// if any, and clears the slot. Used by explicit subscription deletion and
// by topic cascade delete to kick any live subscriber off before tearing
// the subscription down.
func (s *subscriptionState) cancelActive() {
	s.mu.Lock()
	active := s.active
	s.active = nil
	s.mu.Unlock()
	if active != nil {
		active.cancel()
	}
}

func (s *subscriptionState) touchUpdated(now time.Time) {
	s.mu.Lock()
	s.info.Updated = now
	s.mu.Unlock()
}

func (s *subscriptionState) snapshotInfo() SubscriptionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// topicState is the full runtime state of one topic: its identity, its
// message store, and the set of subscriptions currently attached to it.
type topicState struct {
	mu   sync.Mutex
	info TopicInfo

	store *messageStore
	subs  *nameTable[*subscriptionState]

	// needed tracks, per message index, how many attached subscriptions
	// still haven't retired it for themselves. When it reaches zero the
	// index is dropped from the store.
	needed map[uint64]int

	// fanoutMu serializes publishFanout's snapshot-then-enqueue sequence
	// against detachSubscription's remove-then-reconcile sequence. Without
	// it, a publish could snapshot a subscription that a concurrent delete
	// then removes before the publish enqueues into it: the delete's
	// reconciliation would run too early to see the new index, and that
	// index's needed count would never reach zero. Held for the whole of
	// either sequence, not just the map mutation, so one sequence always
	// completes before the other starts.
	fanoutMu sync.Mutex
}

func newTopicState(name string, now time.Time) *topicState {
	return &topicState{
		info:   TopicInfo{Name: name, Created: now, Updated: now},
		store:  newMessageStore(),
		subs:   newNameTable[*subscriptionState](),
		needed: make(map[uint64]int),
	}
}

func (t *topicState) touchUpdated(now time.Time) {
	t.mu.Lock()
	t.info.Updated = now
	t.mu.Unlock()
}

func (t *topicState) snapshotInfo() TopicInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.info
}

// noteNeeded records that count subscriptions (the fan-out set at publish
// time) must each retire index before the store drops it.
func (t *topicState) noteNeeded(index uint64, count int) {
	if count == 0 {
		t.store.retire(index)
		return
	}
	t.mu.Lock()
	t.needed[index] = count
	t.mu.Unlock()
}

// retireFor decrements the needed-by count for index by one (one
// subscription has retired it) and drops the message from the store once
// every subscription has done so.
func (t *topicState) retireFor(index uint64) {
	t.mu.Lock()
	remaining, ok := t.needed[index]
	if !ok {
		t.mu.Unlock()
		return
	}
	remaining--
	if remaining <= 0 {
		delete(t.needed, index)
		t.mu.Unlock()
		t.store.retire(index)
		return
	}
	t.needed[index] = remaining
	t.mu.Unlock()
}

// forgetSubscription accounts for a subscription's departure (deletion):
// any index it still owed a retirement for is treated as retired on its
// behalf, since the topic no longer tracks its needs.
func (t *topicState) forgetSubscription(outstanding []uint64) {
	for _, idx := range outstanding {
		t.retireFor(idx)
	}
}
