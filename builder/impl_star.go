// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local vertex 0 is the hub; leaves are 1..n-1.
//   • Emits spokes hub — leaf in ascending leaf order; mirrored when directed.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := d.addVertices(n)
		for i := 1; i < n; i++ {
			if err := d.mirror(hub, hub+i, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}
		return nil
	}
}
