package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppliesDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutS)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9091", cfg.Metrics.ListenAddr)
}

func TestLeaseTTLZeroWhenUnset(t *testing.T) {
	var cfg Config
	assert.Equal(t, time.Duration(0), cfg.LeaseTTL())
}

func TestLeaseTTLConvertsMillisecondsField(t *testing.T) {
	var cfg Config
	cfg.Broker.LeaseTTLMs = 5000
	assert.Equal(t, 5*time.Second, cfg.LeaseTTL())
}

func TestExpiryTickConvertsMillisecondsField(t *testing.T) {
	var cfg Config
	cfg.Broker.ExpiryTickMs = 250
	assert.Equal(t, 250*time.Millisecond, cfg.ExpiryTick())
}
