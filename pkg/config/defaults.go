package config

import (
	"strings"
	"time"

	"github.com/marmos91/glusterrpc/internal/bytesize"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/pkg/client"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
// Explicitly set values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
	applyClientDefaults(&cfg.Client)
	applyWatchDefaults(&cfg.Watch)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Listen == "" {
		cfg.Listen = "127.0.0.1:9713"
	}
}

func applyClientDefaults(cfg *ClientConfig) {
	if cfg.GlusterdSocket == "" {
		cfg.GlusterdSocket = gluster.DefaultGlusterdSocket
	}
	if cfg.QuotadSocket == "" {
		cfg.QuotadSocket = gluster.DefaultQuotadSocket
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = client.DefaultTimeout
	}
	if cfg.MaxRecordSize == 0 {
		cfg.MaxRecordSize = bytesize.MiB
	}
}

func applyWatchDefaults(cfg *WatchConfig) {
	if cfg.Interval == 0 {
		cfg.Interval = 15 * time.Second
	}
}

// GetDefaultConfig returns a Config with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
