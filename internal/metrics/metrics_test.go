package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistration(t *testing.T) {
	assert.NotNil(t, MessagesPublished)
	assert.NotNil(t, MessagesDelivered)
	assert.NotNil(t, Acks)
	assert.NotNil(t, Nacks)
	assert.NotNil(t, LeaseExpirations)
	assert.NotNil(t, FanoutSize)

	MessagesPublished.WithLabelValues("t").Inc()
	MessagesDelivered.WithLabelValues("t", "s").Inc()
	FanoutSize.WithLabelValues("t").Set(3)
}

func TestHooksRecordsAgainstLabeledSeries(t *testing.T) {
	h := Hooks{}

	h.OnPublish("orders", 1, 2)
	h.OnDeliver("orders", "billing")
	h.OnAck("orders", "billing")
	h.OnNack("orders", "billing")
	h.OnExpire("orders", "billing", 3)

	assert.Equal(t, float64(2), testutil.ToFloat64(FanoutSize.WithLabelValues("orders")))
}
