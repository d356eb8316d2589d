package grpcapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/internal/broker"
)

func TestToStatusMapsBrokerErrorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"topic not found", broker.ErrTopicNotFound, codes.NotFound},
		{"subscription not found", broker.ErrSubscriptionNotFound, codes.NotFound},
		{"topic already exists", broker.ErrTopicAlreadyExists, codes.AlreadyExists},
		{"subscription already exists", broker.ErrSubscriptionExists, codes.AlreadyExists},
		{"already subscribed", broker.ErrAlreadySubscribed, codes.FailedPrecondition},
		{"unknown lease", broker.ErrUnknownLease, codes.FailedPrecondition},
		{"invalid argument", broker.InvalidArgument("name must not be empty"), codes.InvalidArgument},
		{"opaque error", errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(toStatus(tc.err))
			require.True(t, ok)
			require.Equal(t, tc.want, st.Code())
		})
	}
}

func TestToStatusNilIsNil(t *testing.T) {
	require.NoError(t, toStatus(nil))
}
