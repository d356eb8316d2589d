package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNameTablePutIfAbsentEnforcesUniqueness(t *testing.T) {
	nt := newNameTable[int]()

	v, inserted := nt.putIfAbsent("a", 1)
	require.True(t, inserted)
	require.Equal(t, 1, v)

	v, inserted = nt.putIfAbsent("a", 2)
	require.False(t, inserted)
	require.Equal(t, 1, v, "existing value is returned, not the rejected one")
}

func TestNameTableDeleteAndSnapshot(t *testing.T) {
	nt := newNameTable[int]()
	nt.putIfAbsent("a", 1)
	nt.putIfAbsent("b", 2)

	require.Len(t, nt.snapshot(), 2)

	_, ok := nt.delete("a")
	require.True(t, ok)
	require.Len(t, nt.snapshot(), 1)

	_, ok = nt.delete("a")
	require.False(t, ok)
}

func TestSubscriptionStateActivateRejectsSecondActivation(t *testing.T) {
	sub := newSubscriptionState("t", "s", time.Now())

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := sub.activate(cancel)
	require.NoError(t, err)

	err = sub.activate(cancel)
	require.ErrorIs(t, err, ErrAlreadySubscribed)

	sub.cancelActive()
	err = sub.activate(cancel)
	require.NoError(t, err, "slot frees up after cancelActive")
}

func TestTopicStateRetireForRequiresEverySubscription(t *testing.T) {
	ts := newTopicState("t", time.Now())
	ts.noteNeeded(1, 2)

	_, ok := ts.store.get(1)
	require.False(t, ok, "message was never appended by noteNeeded, only refcounted")

	// Simulate an appended message so retire has something to drop.
	idx := ts.store.append("t", nil, []byte("x"), time.Now())
	ts.needed = map[uint64]int{idx: 2}

	ts.retireFor(idx)
	_, ok = ts.store.get(idx)
	require.True(t, ok, "still needed by one more subscription")

	ts.retireFor(idx)
	_, ok = ts.store.get(idx)
	require.False(t, ok, "retired once every subscription has acked")
}

func TestTopicStateNoteNeededZeroRetiresImmediately(t *testing.T) {
	ts := newTopicState("t", time.Now())
	idx := ts.store.append("t", nil, []byte("x"), time.Now())

	ts.noteNeeded(idx, 0)

	_, ok := ts.store.get(idx)
	require.False(t, ok, "no attached subscriptions means nothing ever needed it")
}
