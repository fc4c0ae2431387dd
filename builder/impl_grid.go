// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices); rows·cols ≤ g.Order().
//   • Cell (r,c) is vertex r·cols + c (row-major).
//   • For each cell emit Right then Bottom neighbour where present.
//
// Complexity: O(rows·cols) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// Grid returns a Constructor that builds the rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := atLeast(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if err := fits(methodGrid, g, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := link(methodGrid, g, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
