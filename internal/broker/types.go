package broker

import "time"

// Message is immutable once published. Published is server-assigned; any
// value a client supplies on the wire is discarded.
type Message struct {
	Index      uint64
	Topic      string
	Attributes map[string]string
	Published  time.Time
	Data       []byte
}

// TopicInfo describes a topic's identity and lifecycle timestamps.
type TopicInfo struct {
	Name    string
	Created time.Time
	Updated time.Time
}

// SubscriptionInfo describes a subscription's identity and lifecycle
// timestamps. Topic is a lookup key into the registry, not a pointer, per
// the "back-references are lookups" design note.
type SubscriptionInfo struct {
	Name    string
	Topic   string
	Created time.Time
	Updated time.Time
}

// Lease is a time-bounded, single-use claim on a message by a subscriber.
type Lease struct {
	Topic        string
	Subscription string
	ID           uint64
	Index        uint64
	TTL          time.Duration
	Leased       time.Time
	Deadline     time.Time
}

// LeasedMessage pairs a Lease with the Message it claims, the unit handed
// to a subscriber stream.
type LeasedMessage struct {
	Lease   Lease
	Message Message
}
