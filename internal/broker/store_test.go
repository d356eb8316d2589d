package broker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMessageStoreAppendAssignsMonotonicIndices(t *testing.T) {
	s := newMessageStore()
	now := time.Now()

	i1 := s.append("t", nil, []byte("a"), now)
	i2 := s.append("t", nil, []byte("b"), now)
	i3 := s.append("t", nil, []byte("c"), now)

	require.Equal(t, uint64(1), i1)
	require.Equal(t, uint64(2), i2)
	require.Equal(t, uint64(3), i3)
}

func TestMessageStoreGetOverwritesPublishedTimestamp(t *testing.T) {
	s := newMessageStore()
	now := time.Now()

	idx := s.append("t", map[string]string{"k": "v"}, []byte("payload"), now)

	msg, ok := s.get(idx)
	require.True(t, ok)
	require.Equal(t, "t", msg.Topic)
	require.Equal(t, []byte("payload"), msg.Data)
	require.Equal(t, "v", msg.Attributes["k"])
	require.True(t, msg.Published.Equal(now))
}

func TestMessageStoreGetMissingReturnsNotFound(t *testing.T) {
	s := newMessageStore()
	_, ok := s.get(999)
	require.False(t, ok)
}

func TestMessageStoreRetireDropsMessage(t *testing.T) {
	s := newMessageStore()
	idx := s.append("t", nil, []byte("a"), time.Now())
	require.Equal(t, 1, s.depth())

	s.retire(idx)

	_, ok := s.get(idx)
	require.False(t, ok)
	require.Equal(t, 0, s.depth())
}

func TestMessageStoreAppendClonesInputBuffers(t *testing.T) {
	s := newMessageStore()
	data := []byte("mutable")
	idx := s.append("t", nil, data, time.Now())

	data[0] = 'X'

	msg, ok := s.get(idx)
	require.True(t, ok)
	require.Equal(t, byte('m'), msg.Data[0])
}
