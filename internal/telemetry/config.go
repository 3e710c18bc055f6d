package telemetry

import "time"

// Config controls tracing of glusterd calls.
type Config struct {
	Enabled bool

	// ServiceName and ServiceVersion populate the trace resource.
	ServiceName    string
	ServiceVersion string

	// Endpoint is the collector's OTLP/gRPC host:port. When empty the
	// exporter falls back to OTEL_EXPORTER_OTLP_ENDPOINT.
	Endpoint string
	Insecure bool

	// SampleRate is the fraction of root spans kept, 0.0 to 1.0.
	SampleRate float64

	// ExportTimeout bounds one batch export; zero keeps the exporter default.
	ExportTimeout time.Duration
}

// DefaultConfig returns tracing disabled, pointed at a local collector.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "glusterrpc",
		ServiceVersion: "dev",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SampleRate:     1.0,
	}
}
