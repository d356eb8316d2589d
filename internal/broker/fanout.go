package broker

import "time"

// publishFanout appends msg to the topic's message store and enqueues the
// resulting index into every attached subscription's queue. Returns the
// assigned index.
//
// The snapshot-then-enqueue sequence runs under fanoutMu so it can't
// interleave with a concurrent detachSubscription: either the subscriber is
// still attached when the whole sequence runs, and gets the index enqueued
// and counted, or it was already removed beforehand, and the snapshot never
// sees it at all. Without that lock a subscriber removed mid-sequence could
// be counted in noteNeeded but never actually receive the enqueue, leaving
// its slot in the needed count stuck forever.
func publishFanout(topic *topicState, attrs map[string]string, data []byte, now time.Time) uint64 {
	index := topic.store.append(topic.info.Name, attrs, data, now)

	topic.fanoutMu.Lock()
	defer topic.fanoutMu.Unlock()

	subs := topic.subs.snapshot()
	topic.noteNeeded(index, len(subs))
	for _, sub := range subs {
		sub.queue.enqueueNew(index)
	}
	return index
}

// attachSubscription registers sub in topic's fan-out set under name.
func attachSubscription(topic *topicState, name string, sub *subscriptionState) (*subscriptionState, bool) {
	return topic.subs.putIfAbsent(name, sub)
}

// detachSubscription removes a subscription from a topic's fan-out set,
// cancels its active stream if any, and reconciles the store's retirement
// bookkeeping for whatever it still owed. Returns false if no such
// subscription was attached.
//
// Runs under the same fanoutMu as publishFanout; see its comment for why.
func detachSubscription(topic *topicState, name string) bool {
	topic.fanoutMu.Lock()
	defer topic.fanoutMu.Unlock()

	sub, ok := topic.subs.delete(name)
	if !ok {
		return false
	}
	sub.cancelActive()
	outstanding := sub.queue.allIndices()
	topic.forgetSubscription(outstanding)
	return true
}

// detachAllSubscriptions tears down every subscription attached to topic,
// used when the topic itself is deleted and its subscriptions must go with
// it.
func detachAllSubscriptions(topic *topicState) {
	for _, name := range topic.subs.names() {
		detachSubscription(topic, name)
	}
}
