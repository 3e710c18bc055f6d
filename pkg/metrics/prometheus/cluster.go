package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/glusterrpc/pkg/metrics"
)

type clusterMetrics struct {
	peers        *prometheus.GaugeVec
	quotaBytes   *prometheus.GaugeVec
	quotaFiles   *prometheus.GaugeVec
	quotaDirs    *prometheus.GaugeVec
	pollFailures *prometheus.CounterVec
}

// NewClusterMetrics returns cluster gauges registered on the global
// registry, or nil if metrics are not enabled.
func NewClusterMetrics() metrics.ClusterMetrics {
	if !metrics.IsEnabled() {
		return nil
	}
	return newClusterMetrics(metrics.GetRegistry())
}

func newClusterMetrics(reg prometheus.Registerer) *clusterMetrics {
	f := promauto.With(reg)
	return &clusterMetrics{
		peers: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "glusterrpc_peers",
			Help: "Peers reported by glusterd by state",
		}, []string{"state"}), // "total", "connected"
		quotaBytes: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "glusterrpc_quota_used_bytes",
			Help: "Bytes used under the volume root as reported by quotad",
		}, []string{"volume"}),
		quotaFiles: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "glusterrpc_quota_files",
			Help: "Files under the volume root as reported by quotad",
		}, []string{"volume"}),
		quotaDirs: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "glusterrpc_quota_dirs",
			Help: "Directories under the volume root as reported by quotad",
		}, []string{"volume"}),
		pollFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "glusterrpc_poll_failures_total",
			Help: "Failed polls by target",
		}, []string{"target"}),
	}
}

func (m *clusterMetrics) SetPeers(total, connected int) {
	m.peers.WithLabelValues("total").Set(float64(total))
	m.peers.WithLabelValues("connected").Set(float64(connected))
}

func (m *clusterMetrics) SetQuotaUsage(volume string, bytes, files, dirs uint64) {
	m.quotaBytes.WithLabelValues(volume).Set(float64(bytes))
	m.quotaFiles.WithLabelValues(volume).Set(float64(files))
	m.quotaDirs.WithLabelValues(volume).Set(float64(dirs))
}

func (m *clusterMetrics) DeleteQuotaUsage(volume string) {
	m.quotaBytes.DeleteLabelValues(volume)
	m.quotaFiles.DeleteLabelValues(volume)
	m.quotaDirs.DeleteLabelValues(volume)
}

func (m *clusterMetrics) RecordPollFailure(target string) {
	m.pollFailures.WithLabelValues(target).Inc()
}
