// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible link independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ identical graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := d.addVertices(n)

		// 2) Bernoulli trial per admissible pair.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			j0 := i + 1
			if d.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := d.link(base+i, base+j, cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}
		return nil
	}
}
