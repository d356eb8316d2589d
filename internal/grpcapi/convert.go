package grpcapi

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/csaide/riftdb/api/riftpb"
	"github.com/csaide/riftdb/internal/broker"
)

func toWireMessage(m broker.Message) *riftpb.Message {
	return &riftpb.Message{
		Topic:      m.Topic,
		Attributes: m.Attributes,
		Published:  timestamppb.New(m.Published),
		Data:       m.Data,
	}
}

func toWireLease(l broker.Lease) *riftpb.Lease {
	return &riftpb.Lease{
		Topic:        l.Topic,
		Subscription: l.Subscription,
		Id:           l.ID,
		Index:        l.Index,
		TtlMs:        uint64(l.TTL / time.Millisecond),
		Leased:       timestamppb.New(l.Leased),
		Deadline:     timestamppb.New(l.Deadline),
	}
}

func toWireLeasedMessage(lm broker.LeasedMessage) *riftpb.LeasedMessage {
	return &riftpb.LeasedMessage{
		Lease:   toWireLease(lm.Lease),
		Message: toWireMessage(lm.Message),
	}
}

func toWireTopic(t broker.TopicInfo) *riftpb.Topic {
	return &riftpb.Topic{
		Name:    t.Name,
		Created: timestamppb.New(t.Created),
		Updated: timestamppb.New(t.Updated),
	}
}

func toWireSubscription(s broker.SubscriptionInfo) *riftpb.Subscription {
	return &riftpb.Subscription{
		Topic:   s.Topic,
		Name:    s.Name,
		Created: timestamppb.New(s.Created),
		Updated: timestamppb.New(s.Updated),
	}
}
