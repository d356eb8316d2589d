package grpcapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/csaide/riftdb/api/riftpb"
	"github.com/csaide/riftdb/internal/broker"
)

// PubSubServer adapts a *broker.Broker to riftpb.PubSubServiceServer, the
// way cmd/server/server.go's grpcPubSubServer wraps a subpub.SubPub.
type PubSubServer struct {
	riftpb.UnimplementedPubSubServiceServer

	broker *broker.Broker
	logger *slog.Logger
}

// NewPubSubServer constructs a PubSubServer.
func NewPubSubServer(b *broker.Broker, logger *slog.Logger) *PubSubServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PubSubServer{broker: b, logger: logger.With("component", "grpcapi.pubsub")}
}

// Publish is a classic unary RPC.
func (s *PubSubServer) Publish(ctx context.Context, req *riftpb.PublishRequest) (*riftpb.Confirmation, error) {
	if err := validatePublish(req); err != nil {
		return nil, toStatus(err)
	}
	msg := req.GetMessage()
	index, err := s.broker.Publish(msg.GetTopic(), msg.GetAttributes(), msg.GetData())
	if err != nil {
		return nil, toStatus(err)
	}
	return &riftpb.Confirmation{Status: riftpb.ConfirmationStatus_COMMITTED, Index: index}, nil
}

// Ack is a classic unary RPC.
func (s *PubSubServer) Ack(ctx context.Context, req *riftpb.AckRequest) (*riftpb.Confirmation, error) {
	if err := validateTopicScoped(req.GetTopic(), req.GetSubscription()); err != nil {
		return nil, toStatus(err)
	}
	if err := s.broker.Ack(req.GetTopic(), req.GetSubscription(), req.GetLeaseId()); err != nil {
		return nil, toStatus(err)
	}
	return &riftpb.Confirmation{Status: riftpb.ConfirmationStatus_COMMITTED}, nil
}

// Nack is a classic unary RPC.
func (s *PubSubServer) Nack(ctx context.Context, req *riftpb.NackRequest) (*riftpb.Confirmation, error) {
	if err := validateTopicScoped(req.GetTopic(), req.GetSubscription()); err != nil {
		return nil, toStatus(err)
	}
	if err := s.broker.Nack(req.GetTopic(), req.GetSubscription(), req.GetLeaseId()); err != nil {
		return nil, toStatus(err)
	}
	return &riftpb.Confirmation{Status: riftpb.ConfirmationStatus_COMMITTED}, nil
}

// Subscribe is a server-stream RPC: it blocks for the lifetime of the
// stream, feeding each leased message to the client in delivery order.
func (s *PubSubServer) Subscribe(req *riftpb.SubscribeRequest, stream riftpb.PubSubService_SubscribeServer) error {
	if err := validateTopicScoped(req.GetTopic(), req.GetSubscription()); err != nil {
		return toStatus(err)
	}

	ttl := time.Duration(req.GetTtlMs()) * time.Millisecond
	requestID := RequestIDFromContext(stream.Context())

	err := s.broker.Subscribe(stream.Context(), req.GetTopic(), req.GetSubscription(), ttl,
		func(ctx context.Context, msg broker.LeasedMessage) error {
			return stream.Send(toWireLeasedMessage(msg))
		})
	if err != nil {
		s.logger.Debug("subscribe stream ended", "topic", req.GetTopic(), "subscription", req.GetSubscription(), "request_id", requestID, "error", err)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return toStatus(err)
	}
	return nil
}
