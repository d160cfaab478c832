package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/schedule"
	"git.home.luguber.info/inful/sitegen/internal/server"
	"git.home.luguber.info/inful/sitegen/internal/site"
	"git.home.luguber.info/inful/sitegen/internal/watch"
)

// ServeCmd implements the 'serve' command: build once, then keep the site
// fresh while serving it locally.
type ServeCmd struct {
	Output string `short:"o" help:"Output directory for generated site (default ./site)"`
	Addr   string `help:"Listen address, overrides serve.addr"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ConfigureLogging(cfg, root.Verbose)

	if s.Addr != "" {
		cfg.Serve.Addr = s.Addr
	}
	outputDir := ResolveOutputDir(s.Output, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var reg *prom.Registry
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Serve.Metrics {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	generator := site.NewGenerator(cfg, outputDir, recorder)

	// Serialize rebuilds from the watcher, the scheduler, and the initial build.
	var buildMu sync.Mutex
	rebuild := func() {
		buildMu.Lock()
		defer buildMu.Unlock()
		result, err := generator.Build(ctx)
		RecordBuild(ctx, cfg, result, err)
		if err != nil {
			// Serve mode keeps running on failed rebuilds.
			slog.Error("Rebuild failed", "error", err)
			return
		}
		PublishBuildEvent(cfg, result)
	}

	rebuild()

	watcher, err := watch.New(cfg.Content.Directory, cfg.Daemon.WatchDebounceDuration(), rebuild)
	if err != nil {
		return err
	}
	go func() {
		if err := watcher.Start(ctx); err != nil {
			slog.Warn("Content watcher stopped", "error", err)
		}
	}()

	if interval := cfg.Daemon.RebuildIntervalDuration(); interval > 0 {
		scheduler, err := schedule.NewScheduler()
		if err != nil {
			return err
		}
		if _, err := scheduler.PeriodicRebuild(interval, rebuild); err != nil {
			return err
		}
		scheduler.Start(ctx)
		defer func() {
			if err := scheduler.Stop(context.Background()); err != nil {
				slog.Warn("Scheduler shutdown failed", "error", err)
			}
		}()
	}

	return server.New(cfg.Serve, outputDir, reg).Run(ctx)
}
