package grpcapi

import (
	"context"
	"log/slog"

	"github.com/csaide/riftdb/api/riftpb"
	"github.com/csaide/riftdb/internal/broker"
)

// TopicServer adapts a *broker.Broker to riftpb.TopicServiceServer.
type TopicServer struct {
	riftpb.UnimplementedTopicServiceServer

	broker *broker.Broker
	logger *slog.Logger
}

// NewTopicServer constructs a TopicServer.
func NewTopicServer(b *broker.Broker, logger *slog.Logger) *TopicServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicServer{broker: b, logger: logger.With("component", "grpcapi.topic")}
}

func (s *TopicServer) Create(ctx context.Context, req *riftpb.CreateTopicRequest) (*riftpb.Topic, error) {
	if err := validateName(req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	info, err := s.broker.CreateTopic(req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWireTopic(info), nil
}

func (s *TopicServer) Get(ctx context.Context, req *riftpb.GetTopicRequest) (*riftpb.Topic, error) {
	if err := validateName(req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	info, err := s.broker.GetTopic(req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWireTopic(info), nil
}

func (s *TopicServer) List(req *riftpb.ListTopicsRequest, stream riftpb.TopicService_ListServer) error {
	for _, info := range s.broker.ListTopics() {
		if err := stream.Send(toWireTopic(info)); err != nil {
			return err
		}
	}
	return nil
}

func (s *TopicServer) Update(ctx context.Context, req *riftpb.UpdateTopicRequest) (*riftpb.Topic, error) {
	if err := validateName(req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	info, err := s.broker.UpdateTopic(req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWireTopic(info), nil
}

func (s *TopicServer) Delete(ctx context.Context, req *riftpb.DeleteTopicRequest) (*riftpb.DeleteTopicResponse, error) {
	if err := validateName(req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	if err := s.broker.DeleteTopic(req.GetName()); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("topic deleted", "topic", req.GetName())
	return &riftpb.DeleteTopicResponse{}, nil
}
