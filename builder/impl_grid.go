// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Cell (r,c) is local vertex r*cols+c (row-major); GridIndex computes it.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom where present,
//     mirrored when directed.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridIndex maps a cell to its local vertex index in a grid with cols columns.
func GridIndex(r, c, cols int) int {
	return r*cols + c
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := d.addVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + GridIndex(r, c, cols)

				// Right neighbor (r, c+1).
				if c+1 < cols {
					if err := d.mirror(u, base+GridIndex(r, c+1, cols), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				// Bottom neighbor (r+1, c).
				if r+1 < rows {
					if err := d.mirror(u, base+GridIndex(r+1, c, cols), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}
		return nil
	}
}
