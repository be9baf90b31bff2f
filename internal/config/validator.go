package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dijkstep/builder"
)

var topologyKinds = map[string]bool{
	"cycle": true, "path": true, "star": true, "wheel": true,
	"complete": true, "grid": true, "platonic": true, "random": true,
}

// Validate checks the scenario for:
//   - Exactly one graph source (edges or topology)
//   - Edge endpoints inside [0, vertices) and non-negative weights
//   - A known topology kind, solid and label scheme
//   - A known playback mode with a positive interval
//
// Constructor-specific limits (minimum sizes, probability range) are left
// to Build, which reports them through the builder sentinels.
func Validate(cfg *Scenario) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string
	g := cfg.Graph

	if g.DefaultWeight != nil && *g.DefaultWeight < 0 {
		errs = append(errs, fmt.Sprintf("graph.default_weight: %d is negative", *g.DefaultWeight))
	}

	switch {
	case g.Topology != nil && (len(g.Edges) > 0 || g.Vertices > 0):
		errs = append(errs, "graph: only one of topology or vertices/edges may be set")
	case g.Topology != nil:
		validateTopology(g.Topology, &errs)
	default:
		if g.Vertices <= 0 {
			errs = append(errs, "graph.vertices: must be positive")
		}
		for i, e := range g.Edges {
			if e.From < 0 || e.From >= g.Vertices || e.To < 0 || e.To >= g.Vertices {
				errs = append(errs, fmt.Sprintf("graph.edges[%d]: %d→%d outside [0,%d)", i, e.From, e.To, g.Vertices))
			}
			if e.Weight != nil && *e.Weight < 0 {
				errs = append(errs, fmt.Sprintf("graph.edges[%d]: weight %d is negative", i, *e.Weight))
			}
		}
		if cfg.Start < 0 || (g.Vertices > 0 && cfg.Start >= g.Vertices) {
			errs = append(errs, fmt.Sprintf("start: %d outside [0,%d)", cfg.Start, g.Vertices))
		}
	}

	if _, err := builder.LabelScheme(cfg.Labels.Scheme); err != nil {
		errs = append(errs, fmt.Sprintf("labels.scheme: unknown %q", cfg.Labels.Scheme))
	}

	switch cfg.Playback.Mode {
	case ModeStep, ModeAuto:
	default:
		errs = append(errs, fmt.Sprintf("playback.mode: unknown %q", cfg.Playback.Mode))
	}
	if cfg.Playback.IntervalMs < 0 {
		errs = append(errs, fmt.Sprintf("playback.interval_ms: %d is negative", cfg.Playback.IntervalMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateTopology(t *TopologyConf, errs *[]string) {
	if !topologyKinds[t.Kind] {
		*errs = append(*errs, fmt.Sprintf("graph.topology.kind: unknown %q", t.Kind))
		return
	}
	if t.Kind == "platonic" {
		if _, ok := builder.ParsePlatonicName(t.Solid); !ok {
			*errs = append(*errs, fmt.Sprintf("graph.topology.solid: unknown %q", t.Solid))
		}
	}
	if w := t.Weights; w != nil && (w.Min < 0 || w.Max < w.Min) {
		*errs = append(*errs, fmt.Sprintf("graph.topology.weights: need 0 ≤ min ≤ max, got [%d,%d]", w.Min, w.Max))
	}
}
