// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = hub + Cₙ₋₁; local vertex 0 is the hub, the ring is 1..n-1.
//   • Therefore n ≥ 4 (the ring must be a valid cycle: n-1 ≥ 3).
//
// Emission order:
//   1. Ring links i — i+1 (wrapping n-1 — 1), mirrored when directed.
//   2. Spokes hub — i for i=1..n-1, mirrored when directed.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel graph W_n.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		hub := d.addVertices(n)
		ring := n - 1

		// 1) Outer ring over local indices 1..n-1.
		for i := 0; i < ring; i++ {
			u, v := hub+1+i, hub+1+(i+1)%ring
			if err := d.mirror(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: ring: %w", methodWheel, err)
			}
		}

		// 2) Spokes in ascending ring order.
		for i := 1; i < n; i++ {
			if err := d.mirror(hub, hub+i, cfg.weight()); err != nil {
				return fmt.Errorf("%s: spoke: %w", methodWheel, err)
			}
		}
		return nil
	}
}
