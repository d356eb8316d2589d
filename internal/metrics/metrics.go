// Package metrics defines riftdb's Prometheus series and a Hooks adapter
// that feeds them from the broker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/csaide/riftdb/internal/broker"
)

var (
	MessagesPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "riftdb_messages_published_total",
		Help: "The total number of messages published to a topic.",
	}, []string{"topic"})

	MessagesDelivered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "riftdb_messages_delivered_total",
		Help: "The total number of messages delivered (including redeliveries) to a subscription.",
	}, []string{"topic", "subscription"})

	Acks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "riftdb_acks_total",
		Help: "The total number of leases acknowledged.",
	}, []string{"topic", "subscription"})

	Nacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "riftdb_nacks_total",
		Help: "The total number of leases negatively acknowledged.",
	}, []string{"topic", "subscription"})

	LeaseExpirations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "riftdb_lease_expirations_total",
		Help: "The total number of leases that expired before being acked or nacked.",
	}, []string{"topic", "subscription"})

	FanoutSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "riftdb_fanout_size",
		Help: "The number of subscriptions a published message fanned out to.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(MessagesPublished)
	prometheus.MustRegister(MessagesDelivered)
	prometheus.MustRegister(Acks)
	prometheus.MustRegister(Nacks)
	prometheus.MustRegister(LeaseExpirations)
	prometheus.MustRegister(FanoutSize)
}

// Hooks implements broker.Hooks by recording to the package's Prometheus
// series. The broker package never imports this package directly; cmd/riftd
// wires a Hooks value in via broker.WithHooks, keeping the core engine
// free of an observability dependency.
type Hooks struct{}

var _ broker.Hooks = Hooks{}

func (Hooks) OnPublish(topic string, index uint64, fanout int) {
	MessagesPublished.WithLabelValues(topic).Inc()
	FanoutSize.WithLabelValues(topic).Set(float64(fanout))
}

func (Hooks) OnDeliver(topic, subscription string) {
	MessagesDelivered.WithLabelValues(topic, subscription).Inc()
}

func (Hooks) OnAck(topic, subscription string) {
	Acks.WithLabelValues(topic, subscription).Inc()
}

func (Hooks) OnNack(topic, subscription string) {
	Nacks.WithLabelValues(topic, subscription).Inc()
}

func (Hooks) OnExpire(topic, subscription string, count int) {
	LeaseExpirations.WithLabelValues(topic, subscription).Add(float64(count))
}
