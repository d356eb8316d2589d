package broker

import (
	"sort"
	"sync"
	"time"
)

// inFlightEntry is the (index, deadline) pair tracked by a subscription's
// lease tracker while a message is out for delivery.
type inFlightEntry struct {
	index    uint64
	ttl      time.Duration
	leasedAt time.Time
	deadline time.Time
}

// subQueue holds one subscription's delivery state: an ordered pending
// list, a redelivery list, and the set of leases currently in flight over
// message store indices. In-flight entries and lease ids are
// subscription-local, so a single mutex guards all three without
// contending with any other subscription.
//
// wake is a coalescing, single-slot signal: enqueue/nack/expire send to it
// without blocking, and the delivery loop selects on it instead of polling.
type subQueue struct {
	mu          sync.Mutex
	pending     []uint64
	redelivery  []uint64
	inFlight    map[uint64]inFlightEntry
	nextLeaseID uint64
	wake        chan struct{}
}

func newSubQueue() *subQueue {
	return &subQueue{
		inFlight: make(map[uint64]inFlightEntry),
		wake:     make(chan struct{}, 1),
	}
}

func (q *subQueue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// enqueueNew appends index to pending. Called by fan-out on publish.
func (q *subQueue) enqueueNew(index uint64) {
	q.mu.Lock()
	q.pending = append(q.pending, index)
	q.mu.Unlock()
	q.notify()
}

// pull pops the front of redelivery if non-empty, else the front of
// pending. Redelivery drains first: getting a nacked or expired message
// back out quickly matters more than preserving strict publish order.
func (q *subQueue) pull() (uint64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.redelivery) > 0 {
		idx := q.redelivery[0]
		q.redelivery = q.redelivery[1:]
		return idx, true
	}
	if len(q.pending) > 0 {
		idx := q.pending[0]
		q.pending = q.pending[1:]
		return idx, true
	}
	return 0, false
}

// beginLease allocates a fresh subscription-local lease id and records the
// in-flight entry with deadline = now + ttl. Returns the lease id and the
// computed deadline so the caller can build a wire-ready Lease without a
// second clock read.
func (q *subQueue) beginLease(index uint64, ttl time.Duration, now time.Time) (id uint64, deadline time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextLeaseID++
	id = q.nextLeaseID
	deadline = now.Add(ttl)
	q.inFlight[id] = inFlightEntry{
		index:    index,
		ttl:      ttl,
		leasedAt: now,
		deadline: deadline,
	}
	return id, deadline
}

// ack removes leaseID from in-flight. The caller (the broker) is
// responsible for telling the owning topic this index may be retired for
// this subscription.
func (q *subQueue) ack(leaseID uint64) (uint64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.inFlight[leaseID]
	if !ok {
		return 0, false
	}
	delete(q.inFlight, leaseID)
	return entry.index, true
}

// nack removes leaseID from in-flight and appends its index to the tail of
// redelivery.
func (q *subQueue) nack(leaseID uint64) (uint64, bool) {
	q.mu.Lock()
	entry, ok := q.inFlight[leaseID]
	if !ok {
		q.mu.Unlock()
		return 0, false
	}
	delete(q.inFlight, leaseID)
	q.redelivery = append(q.redelivery, entry.index)
	q.mu.Unlock()
	q.notify()
	return entry.index, true
}

// expireDue removes every in-flight entry whose deadline has passed as of
// now, appends each index to redelivery, and returns the indices that were
// expired. Ties (simultaneous deadlines) are broken by ascending index.
func (q *subQueue) expireDue(now time.Time) []uint64 {
	q.mu.Lock()

	var due []uint64
	for id, entry := range q.inFlight {
		if !entry.deadline.After(now) {
			due = append(due, entry.index)
			delete(q.inFlight, id)
		}
	}
	if len(due) == 0 {
		q.mu.Unlock()
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })
	q.redelivery = append(q.redelivery, due...)
	q.mu.Unlock()

	q.notify()
	return due
}

// allIndices returns every index this queue currently owns across pending,
// redelivery, and in-flight, for cascade cleanup when the subscription is
// deleted out from under an active stream.
func (q *subQueue) allIndices() []uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]uint64, 0, len(q.pending)+len(q.redelivery)+len(q.inFlight))
	out = append(out, q.pending...)
	out = append(out, q.redelivery...)
	for _, entry := range q.inFlight {
		out = append(out, entry.index)
	}
	return out
}

// depths reports queue-shape counts for diagnostics and metrics.
func (q *subQueue) depths() (pending, redeliveryN, inFlightN int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending), len(q.redelivery), len(q.inFlight)
}
