// Package watch polls glusterd on an interval and publishes the cluster
// state it sees as metrics.
package watch

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/marmos91/glusterrpc/internal/logger"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/pkg/metrics"
)

// DefaultPollInterval is used when no interval is configured.
const DefaultPollInterval = 15 * time.Second

// Source is the subset of *client.Client the watcher needs.
type Source interface {
	ListPeers(ctx context.Context) ([]gluster.Peer, error)
	QuotaUsage(ctx context.Context, volume string) (gluster.QuotaUsage, error)
}

// Snapshot is the result of one poll.
type Snapshot struct {
	Time      time.Time
	Peers     []gluster.Peer
	Connected int
	Quota     map[string]gluster.QuotaUsage
	Errors    map[string]error // keyed by "peers" or "quota/<volume>"
}

// Watcher polls a Source and records what it sees.
//
// Each poll issues one peer listing and one quota call per volume. Calls
// run sequentially; a failure is logged and counted but does not stop the
// remaining calls of the poll.
type Watcher struct {
	source   Source
	metrics  metrics.ClusterMetrics
	interval time.Duration

	mu      sync.RWMutex
	volumes []string
	last    *Snapshot

	stopCh  chan struct{}
	stopped chan struct{}
}

// New creates a watcher. A nil m disables metric recording.
func New(source Source, m metrics.ClusterMetrics, volumes []string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		source:   source,
		metrics:  m,
		volumes:  append([]string(nil), volumes...),
		interval: interval,
		stopCh:   make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start polls once immediately and then on every tick until Stop is
// called or ctx ends.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		defer close(w.stopped)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		logger.Info("Cluster watcher started", "interval", w.interval, "volumes", w.Volumes())
		w.Poll(ctx)

		for {
			select {
			case <-ctx.Done():
				logger.Debug("Cluster watcher stopping (context cancelled)")
				return
			case <-w.stopCh:
				logger.Debug("Cluster watcher stopping (stop signal)")
				return
			case <-ticker.C:
				w.Poll(ctx)
			}
		}
	}()
}

// Stop signals the polling goroutine and waits for it to exit.
func (w *Watcher) Stop() {
	select {
	case <-w.stopCh:
		return
	default:
		close(w.stopCh)
	}
	<-w.stopped
}

// Done is closed once the polling goroutine has exited.
func (w *Watcher) Done() <-chan struct{} { return w.stopped }

// Last returns the most recent snapshot, or nil before the first poll.
func (w *Watcher) Last() *Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.last
}

// SetVolumes replaces the volumes polled from the next round on. Usage
// series of volumes that are dropped are removed.
func (w *Watcher) SetVolumes(volumes []string) {
	w.mu.Lock()
	previous := w.volumes
	w.volumes = append([]string(nil), volumes...)
	w.mu.Unlock()

	if w.metrics != nil {
		for _, vol := range previous {
			if !slices.Contains(volumes, vol) {
				w.metrics.DeleteQuotaUsage(vol)
			}
		}
	}
	logger.Info("Cluster watcher volumes updated", "volumes", volumes)
}

// Volumes returns the volumes currently polled.
func (w *Watcher) Volumes() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string(nil), w.volumes...)
}

// Poll runs one round of calls and returns its snapshot.
func (w *Watcher) Poll(ctx context.Context) *Snapshot {
	volumes := w.Volumes()
	snap := &Snapshot{
		Time:   time.Now(),
		Quota:  make(map[string]gluster.QuotaUsage, len(volumes)),
		Errors: make(map[string]error),
	}

	peers, err := w.source.ListPeers(ctx)
	if err != nil {
		w.fail(snap, "peers", "peers", err)
	} else {
		snap.Peers = peers
		for _, p := range peers {
			if p.Connected {
				snap.Connected++
			}
		}
		if w.metrics != nil {
			w.metrics.SetPeers(len(peers), snap.Connected)
		}
	}

	for _, vol := range volumes {
		usage, err := w.source.QuotaUsage(ctx, vol)
		if err != nil {
			w.fail(snap, "quota/"+vol, "quota", err, logger.Volume(vol))
			continue
		}
		snap.Quota[vol] = usage
		if w.metrics != nil {
			w.metrics.SetQuotaUsage(vol, usage.Size, usage.FileCount, usage.DirCount)
		}
	}

	w.mu.Lock()
	w.last = snap
	w.mu.Unlock()

	logger.Debug("Cluster poll complete",
		logger.Count(len(snap.Peers)), "connected", snap.Connected, "errors", len(snap.Errors))
	return snap
}

func (w *Watcher) fail(snap *Snapshot, key, target string, err error, attrs ...any) {
	snap.Errors[key] = err
	if w.metrics != nil {
		w.metrics.RecordPollFailure(target)
	}
	logger.Warn("Cluster poll failed", append(attrs, "target", target, logger.Err(err))...)
}
