// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once in lexicographic
//     order, mirrored to j→i when directed.
//
// Complexity:
//   • Time: O(n²) links.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := d.mirror(base+i, base+j, cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		return nil
	}
}
