// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Allocates n vertices at the draft's current offset.
//   • Emits links in stable order i — (i+1)%n for i=0..n-1.
//   • In directed mode the ring is oriented (no mirror arcs).
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if err := d.link(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		return nil
	}
}
