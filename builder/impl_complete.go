// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); n ≤ g.Order() (else ErrTooManyVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// Complete returns a Constructor that builds K_n on vertices 0..n-1.
func Complete(n int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := fits(methodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(methodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
