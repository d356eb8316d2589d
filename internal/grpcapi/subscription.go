package grpcapi

import (
	"context"
	"log/slog"

	"github.com/csaide/riftdb/api/riftpb"
	"github.com/csaide/riftdb/internal/broker"
)

// SubscriptionServer adapts a *broker.Broker to
// riftpb.SubscriptionServiceServer.
type SubscriptionServer struct {
	riftpb.UnimplementedSubscriptionServiceServer

	broker *broker.Broker
	logger *slog.Logger
}

// NewSubscriptionServer constructs a SubscriptionServer.
func NewSubscriptionServer(b *broker.Broker, logger *slog.Logger) *SubscriptionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionServer{broker: b, logger: logger.With("component", "grpcapi.subscription")}
}

func (s *SubscriptionServer) Create(ctx context.Context, req *riftpb.CreateSubscriptionRequest) (*riftpb.Subscription, error) {
	if err := validateTopicScoped(req.GetTopic(), req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	info, err := s.broker.CreateSubscription(req.GetTopic(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWireSubscription(info), nil
}

func (s *SubscriptionServer) Get(ctx context.Context, req *riftpb.GetSubscriptionRequest) (*riftpb.Subscription, error) {
	if err := validateTopicScoped(req.GetTopic(), req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	info, err := s.broker.GetSubscription(req.GetTopic(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWireSubscription(info), nil
}

func (s *SubscriptionServer) List(req *riftpb.ListSubscriptionsRequest, stream riftpb.SubscriptionService_ListServer) error {
	infos, err := s.broker.ListSubscriptions(req.GetTopic())
	if err != nil {
		return toStatus(err)
	}
	for _, info := range infos {
		if err := stream.Send(toWireSubscription(info)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SubscriptionServer) Update(ctx context.Context, req *riftpb.UpdateSubscriptionRequest) (*riftpb.Subscription, error) {
	if err := validateTopicScoped(req.GetTopic(), req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	info, err := s.broker.UpdateSubscription(req.GetTopic(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWireSubscription(info), nil
}

func (s *SubscriptionServer) Delete(ctx context.Context, req *riftpb.DeleteSubscriptionRequest) (*riftpb.DeleteSubscriptionResponse, error) {
	if err := validateTopicScoped(req.GetTopic(), req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	if err := s.broker.DeleteSubscription(req.GetTopic(), req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("subscription deleted", "topic", req.GetTopic(), "subscription", req.GetName())
	return &riftpb.DeleteSubscriptionResponse{}, nil
}
