// Package prometheus holds the Prometheus implementations of the
// interfaces in pkg/metrics.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/glusterrpc/pkg/metrics"
)

type rpcMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	bytes    *prometheus.CounterVec
	inFlight prometheus.Gauge
}

// NewRPCMetrics returns RPC metrics registered on the global registry, or
// nil if metrics are not enabled.
func NewRPCMetrics() metrics.RPCMetrics {
	if !metrics.IsEnabled() {
		return nil
	}
	return newRPCMetrics(metrics.GetRegistry())
}

func newRPCMetrics(reg prometheus.Registerer) *rpcMetrics {
	f := promauto.With(reg)
	return &rpcMetrics{
		calls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glusterrpc_calls_total",
				Help: "Total glusterd RPC calls by program, procedure and outcome",
			},
			[]string{"program", "procedure", "outcome"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "glusterrpc_call_duration_milliseconds",
				Help: "Round trip time of glusterd RPC calls in milliseconds",
				Buckets: []float64{
					0.5,   // local socket, idle daemon
					1,     //
					5,     //
					10,    //
					50,    //
					100,   // busy glusterd
					500,   //
					1000,  //
					5000,  // cluster-wide transactions
					30000, // default call timeout
				},
			},
			[]string{"program", "procedure"},
		),
		bytes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glusterrpc_bytes_total",
				Help: "Record payload bytes exchanged with glusterd",
			},
			[]string{"direction"},
		),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "glusterrpc_calls_in_flight",
			Help: "Calls waiting for a reply",
		}),
	}
}

func (m *rpcMetrics) RecordCall(program, procedure, outcome string, duration time.Duration) {
	m.calls.WithLabelValues(program, procedure, outcome).Inc()
	m.duration.WithLabelValues(program, procedure).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *rpcMetrics) RecordBytes(direction string, n int) {
	m.bytes.WithLabelValues(direction).Add(float64(n))
}

func (m *rpcMetrics) SetInFlight(delta int) {
	m.inFlight.Add(float64(delta))
}
