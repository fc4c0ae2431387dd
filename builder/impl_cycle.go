// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); n ≤ g.Order().
//   • Emits edges {i,i+1} for i = 0..n-2, then closes the ring with {0,n-1}.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// Cycle returns a Constructor that builds C_n on vertices 0..n-1.
func Cycle(n int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := fits(methodCycle, g, n); err != nil {
			return err
		}

		return ring(methodCycle, g, 0, n)
	}
}

// ring links first, first+1, …, first+size-1 and closes back to first.
func ring(method string, g *bitgraph.Graph, first, size int) error {
	last := first + size - 1
	for i := first; i < last; i++ {
		if err := link(method, g, i, i+1); err != nil {
			return err
		}
	}

	return link(method, g, first, last)
}
