package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/dijkstep/internal/config"
	"github.com/katalvlaran/dijkstep/internal/metrics"
)

func main() {
	cfgPath := flag.String("scenario", "scenarios/cube.yaml", "Path to scenario YAML")
	mode := flag.String("mode", "", "Override playback mode: step or auto")
	interval := flag.Duration("interval", 0, "Override auto-play interval")
	dotPath := flag.String("dot", "", "Override DOT snapshot path")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (disabled when empty)")
	watch := flag.Bool("watch", false, "Restart the run whenever the scenario file changes")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── Load scenario ────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load scenario", "err", err)
		os.Exit(1)
	}
	overrides := playbackOverrides{mode: *mode, interval: *interval, dotPath: *dotPath}
	if err := overrides.validate(); err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	reloads := make(chan *config.Scenario, 1)
	if *watch {
		loader.OnChange(func(s *config.Scenario) {
			// Keep only the newest scenario.
			select {
			case <-reloads:
			default:
			}
			reloads <- s
		})
		loader.OnError(func(err error) {
			metrics.ReloadFailures.Inc()
			slog.Warn("hot-reload skipped: scenario invalid", "err", err)
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			slog.Warn("scenario watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	// ── Metrics server ───────────────────────────────────────────────────────
	var srv *http.Server
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{
			Addr:         *metricsAddr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			slog.Info("metrics server starting", "addr", *metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server error", "err", err)
				cancel()
			}
		}()
	}

	// ── Playback ─────────────────────────────────────────────────────────────
	p := &player{
		overrides: overrides,
		reloads:   reloads,
		keep:      *watch,
		enter:     readLines(bufio.NewScanner(os.Stdin)),
	}
	if err := p.loop(ctx, loader.Config()); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("playback failed", "err", err)
		shutdown(srv)
		os.Exit(1)
	}

	shutdown(srv)
	slog.Info("goodbye")
}

func shutdown(srv *http.Server) {
	if srv == nil {
		return
	}
	shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
}

// readLines forwards one signal per input line. The channel closes on EOF.
func readLines(sc *bufio.Scanner) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		for sc.Scan() {
			out <- struct{}{}
		}
	}()
	return out
}
