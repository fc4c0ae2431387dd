// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); n ≤ g.Order().
//   • Emits edges {i,i+1} for i = 0..n-2.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// Path returns a Constructor that builds P_n on vertices 0..n-1.
func Path(n int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := fits(methodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
