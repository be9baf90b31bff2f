// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a fresh draft, then freezes the draft into a *wgraph.Graph.
//   - Constructors compose as a disjoint union: each one appends its own
//     vertices after the ones already present.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/wgraph"
)

// Constructor applies a deterministic topology to the draft using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate vertices through d.addVertices and address them by the
//     returned base offset.
//   - Emit links in a stable, documented order.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and freezes the result.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*wgraph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft(cfg.directed)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := d.freeze()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	return g, nil
}

// Build is BuildGraph with default options.
func Build(cons ...Constructor) (*wgraph.Graph, error) {
	return BuildGraph(nil, cons...)
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Vertex numbering is local to each constructor and shifted by the number of
// vertices already in the draft.

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3): i—(i+1)%n.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2): i—i+1.
//func Path(n int) Constructor

// Star builds a star with hub 0 and leaves 1..n-1 (n ≥ 2).
//func Star(n int) Constructor

// Wheel builds a wheel W_n: hub 0 plus ring 1..n-1 (n ≥ 4).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid, vertex r*cols+c.
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse graph (seeded).
//func RandomSparse(n int, p float64) Constructor

// PlatonicSolid builds a fixed Platonic topology; optionally adds a hub.
//func PlatonicSolid(name PlatonicName, withCenter bool) Constructor
