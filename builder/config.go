// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil                       (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn           (DefaultEdgeWeight on every edge)
//   • directed = false                     (paired edges, PrincipalForm works)

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// directed emits one unpaired arc per link instead of a paired couple.
	directed bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
