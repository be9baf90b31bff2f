// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits links i — i+1 for i=0..n-2; oriented forward in directed mode.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := d.link(base+i, base+i+1, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		return nil
	}
}
