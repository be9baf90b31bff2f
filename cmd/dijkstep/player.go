package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dijkstep/builder"
	"github.com/katalvlaran/dijkstep/dijkstra"
	"github.com/katalvlaran/dijkstep/internal/config"
	"github.com/katalvlaran/dijkstep/internal/metrics"
	"github.com/katalvlaran/dijkstep/playback"
	"github.com/katalvlaran/dijkstep/wgraph"
)

// playbackOverrides are command-line values that win over the scenario.
type playbackOverrides struct {
	mode     string
	interval time.Duration
	dotPath  string
}

func (o playbackOverrides) validate() error {
	switch o.mode {
	case "", config.ModeStep, config.ModeAuto:
	default:
		return fmt.Errorf("mode %q: want %s or %s", o.mode, config.ModeStep, config.ModeAuto)
	}
	if o.interval < 0 {
		return fmt.Errorf("interval %s is negative", o.interval)
	}
	return nil
}

func (o playbackOverrides) apply(pc config.PlaybackConf) (mode string, interval time.Duration, dot string) {
	mode, interval, dot = pc.Mode, pc.Interval(), pc.DotPath
	if o.mode != "" {
		mode = o.mode
	}
	if o.interval > 0 {
		interval = o.interval
	}
	if o.dotPath != "" {
		dot = o.dotPath
	}
	return mode, interval, dot
}

// player drives one stepper at a time, restarting on scenario reloads.
type player struct {
	overrides playbackOverrides
	reloads   <-chan *config.Scenario
	keep      bool // wait for reloads after a run finishes
	enter     <-chan struct{}
}

func (p *player) loop(ctx context.Context, sc *config.Scenario) error {
	for {
		next, err := p.run(ctx, sc)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		sc = next
	}
}

// run plays sc to completion. It returns the scenario to play next when a
// reload arrives, or nil when there is nothing more to do.
func (p *player) run(ctx context.Context, sc *config.Scenario) (*config.Scenario, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID, "scenario", sc.Name)

	g, err := sc.Build()
	if err != nil {
		return nil, err
	}
	label, err := sc.LabelFn()
	if err != nil {
		return nil, err
	}
	hl, err := playback.New(g)
	if err != nil {
		return nil, err
	}

	s, err := dijkstra.NewStepper(g, sc.Start,
		dijkstra.WithObserver(metrics.Observer()),
		dijkstra.WithObserver(hl.Observer(func(err error) {
			log.Warn("highlight failed", "err", err)
		})),
	)
	if err != nil {
		return nil, err
	}

	mode, interval, dotPath := p.overrides.apply(sc.Playback)
	log.Info("run started",
		"vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"start", label(sc.Start), "mode", mode, "interval", interval)
	if mode == config.ModeStep {
		fmt.Fprintln(os.Stderr, "press Enter to advance")
	}

	var tick <-chan time.Time
	if mode == config.ModeAuto {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}
	enter := p.input(mode)

	for !s.Done() {
		select {
		case <-ctx.Done():
			metrics.RunsAbandoned.Inc()
			return nil, ctx.Err()
		case next := <-p.reloads:
			metrics.RunsAbandoned.Inc()
			log.Info("scenario reloaded, restarting run", "steps", s.Steps())
			return next, nil
		case _, ok := <-enter:
			if !ok {
				// Input closed: play the rest without waiting.
				enter = nil
				if tick == nil {
					tick = closedTick()
				}
				continue
			}
		case <-tick:
		}

		ev, err := s.Advance()
		if err != nil {
			return nil, err
		}
		logEvent(log, s, ev, label)
		if dotPath != "" {
			if err := writeDot(dotPath, hl, g, label); err != nil {
				log.Warn("dot snapshot failed", "path", dotPath, "err", err)
			}
		}
	}

	logSummary(log, s, label)
	if !p.keep {
		return nil, nil
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case next := <-p.reloads:
		return next, nil
	}
}

// input returns the Enter presses that pace mode; auto mode ignores them.
func (p *player) input(mode string) <-chan struct{} {
	if mode == config.ModeAuto {
		return nil
	}
	return p.enter
}

// closedTick returns a channel that is always ready.
func closedTick() <-chan time.Time {
	c := make(chan time.Time)
	close(c)
	return c
}

func logEvent(log *slog.Logger, s *dijkstra.Stepper, ev dijkstra.Event, label builder.LabelFn) {
	attrs := []any{"step", s.Steps(), "kind", ev.Kind.String(), "state", s.State().String()}
	switch ev.Kind {
	case dijkstra.VertexSelected, dijkstra.VertexFinalized:
		d, _ := s.DistanceTo(ev.Vertex)
		attrs = append(attrs, "vertex", label(ev.Vertex), "dist", formatDist(d))
	case dijkstra.EdgeExamined:
		e, _ := s.Graph().EdgeAt(ev.Edge)
		attrs = append(attrs, "edge", ev.Edge.String(), "to", label(e.To), "weight", e.Weight)
	case dijkstra.RelaxationResult:
		e, _ := s.Graph().EdgeAt(ev.Edge)
		d, _ := s.DistanceTo(e.To)
		attrs = append(attrs, "edge", ev.Edge.String(), "improved", ev.Improved,
			"new_best", ev.NewBest.String(), "prev_best", ev.PrevBest.String(),
			"to", label(e.To), "dist", formatDist(d))
	}
	log.Info("step", attrs...)
}

func logSummary(log *slog.Logger, s *dijkstra.Stepper, label builder.LabelFn) {
	for v := 0; v < s.Graph().VertexCount(); v++ {
		d, _ := s.DistanceTo(v)
		path, _ := s.PathTo(v)
		hops := make([]string, 0, len(path))
		for _, loc := range path {
			e, _ := s.Graph().EdgeAt(loc)
			hops = append(hops, label(e.To))
		}
		log.Info("shortest path", "vertex", label(v), "dist", formatDist(d), "via", hops)
	}
	log.Info("run finished", "steps", s.Steps())
}

func formatDist(d int64) string {
	if d == dijkstra.Infinity {
		return "inf"
	}
	return fmt.Sprintf("%d", d)
}

// writeDot replaces path with the current highlight snapshot.
func writeDot(path string, hl *playback.Highlighter, g *wgraph.Graph, label builder.LabelFn) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := hl.Dot(label).Fprint(g, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
