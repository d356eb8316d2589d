package main

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/api/riftpb"
)

func dial() (*grpc.ClientConn, error) {
	return grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func topicClient(conn *grpc.ClientConn) riftpb.TopicServiceClient {
	return riftpb.NewTopicServiceClient(conn)
}

func subscriptionClient(conn *grpc.ClientConn) riftpb.SubscriptionServiceClient {
	return riftpb.NewSubscriptionServiceClient(conn)
}

func pubsubClient(conn *grpc.ClientConn) riftpb.PubSubServiceClient {
	return riftpb.NewPubSubServiceClient(conn)
}

func withTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}

// exitCodeFor maps a command's terminal error to a conventional *nix exit
// code: 0 for success, non-zero for argument, configuration, and runtime
// errors.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	st, ok := status.FromError(err)
	if !ok {
		return 1
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return 64 // EX_USAGE
	case codes.NotFound, codes.AlreadyExists, codes.FailedPrecondition:
		return 65 // EX_DATAERR
	case codes.Unavailable:
		return 69 // EX_UNAVAILABLE
	default:
		return 1
	}
}
