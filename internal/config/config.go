// Package config loads riftd's configuration from a file plus environment
// overrides using viper.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is riftd's full configuration tree.
type Config struct {
	Server struct {
		ListenAddr       string `mapstructure:"listen_addr"`
		ShutdownTimeoutS int    `mapstructure:"shutdown_timeout_s"`
	} `mapstructure:"server"`

	Broker struct {
		LeaseTTLMs   int `mapstructure:"lease_ttl_ms"`
		ExpiryTickMs int `mapstructure:"expiry_tick_ms"`
	} `mapstructure:"broker"`

	Metrics struct {
		Enabled    bool   `mapstructure:"enabled"`
		ListenAddr string `mapstructure:"listen_addr"`
	} `mapstructure:"metrics"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// LeaseTTL returns Broker.LeaseTTLMs as a time.Duration, or zero if unset
// (the broker then falls back to its own default).
func (c Config) LeaseTTL() time.Duration {
	return time.Duration(c.Broker.LeaseTTLMs) * time.Millisecond
}

// ExpiryTick returns Broker.ExpiryTickMs as a time.Duration, or zero if
// unset.
func (c Config) ExpiryTick() time.Duration {
	return time.Duration(c.Broker.ExpiryTickMs) * time.Millisecond
}

// Defaults applied before the config file and environment are read.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":9090")
	v.SetDefault("server.shutdown_timeout_s", 10)
	v.SetDefault("broker.lease_ttl_ms", 0)
	v.SetDefault("broker.expiry_tick_ms", 0)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.listen_addr", ":9091")
	v.SetDefault("log.level", "info")
}

// Load reads riftd's configuration from configs/config.{yaml,...} plus
// RIFTD_-prefixed environment variables, which take precedence over the
// file.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("riftd")
	v.AutomaticEnv()

	v.AddConfigPath("configs")
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
