package commands

import (
	"fmt"
	"time"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/marmos91/glusterrpc/internal/logger"
	"github.com/marmos91/glusterrpc/pkg/config"
	"github.com/marmos91/glusterrpc/pkg/metrics"
	"github.com/marmos91/glusterrpc/pkg/metrics/prometheus"
	"github.com/marmos91/glusterrpc/pkg/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	watchInterval time.Duration
	watchListen   string
)

var watchCmd = &cobra.Command{
	Use:   "watch [volume...]",
	Short: "Poll peers and quota usage and export them as metrics",
	Long: `Poll glusterd for the peer list and quotad for the root quota usage of
each named volume, and serve the results as Prometheus metrics until
interrupted.

Volumes and interval default to the watch section of the config file.
When volumes come from the config file, edits to watch.volumes are
picked up without a restart.

Examples:
  # Export peers only
  glusterctl watch

  # Export peers and quota usage of two volumes every 30 seconds
  glusterctl watch vol0 vol1 --interval 30s --listen :9713`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Poll interval (overrides config)")
	watchCmd.Flags().StringVar(&watchListen, "listen", "", "Metrics listen address (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := cmdutil.Config()

	interval := cfg.Watch.Interval
	if watchInterval > 0 {
		interval = watchInterval
	}
	volumes := cfg.Watch.Volumes
	if len(args) > 0 {
		volumes = args
	}
	listen := cfg.Metrics.Listen
	if watchListen != "" {
		listen = watchListen
	}

	metrics.InitRegistry()

	c, err := cmdutil.NewClient(prometheus.NewRPCMetrics())
	if err != nil {
		return err
	}
	w := watch.New(c, prometheus.NewClusterMetrics(), volumes, interval)
	srv := metrics.NewServer(listen)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return srv.Start(ctx)
	})
	g.Go(func() error {
		w.Start(ctx)
		<-ctx.Done()
		w.Stop()
		return nil
	})
	if path := cmdutil.ConfigPath(); path != "" && len(args) == 0 {
		g.Go(func() error {
			return config.Watch(ctx, path, func(reloaded *config.Config) {
				w.SetVolumes(reloaded.Watch.Volumes)
			})
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("watch stopped: %w", err)
	}
	logger.Info("Watch stopped")
	return nil
}
