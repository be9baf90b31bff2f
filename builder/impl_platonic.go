// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter) constructor.
//
// Canonical model:
//   • Build one of the five Platonic solids using a canonical, deterministic edge set.
//   • Optionally add a central hub with spokes to all shell vertices.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices occupy local indices 0..n-1; the hub (if any) is local n.
//   • Shell links follow the order in variants_platonic.go, mirrored when directed.
//   • Spokes follow ascending shell index, mirrored when directed.
//
// Complexity:
//   • Time: O(V+E) for the selected solid (V≤20, E≤30).

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Lookup canonical vertex count and shell edges.
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		// 2) Allocate the shell (and hub) in one block so the hub index is base+n.
		total := n
		if withCenter {
			total++
		}
		base := d.addVertices(total)

		// 3) Shell links in dataset order.
		for _, ch := range edges {
			if err := d.mirror(base+ch.U, base+ch.V, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
			}
		}

		// 4) Optional stellation.
		if withCenter {
			hub := base + n
			for i := 0; i < n; i++ {
				if err := d.mirror(hub, base+i, cfg.weight()); err != nil {
					return fmt.Errorf("%s: spoke: %w", methodPlatonicSolid, err)
				}
			}
		}
		return nil
	}
}
