// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices); n1+n2 ≤ g.Order().
//   • Left side 0..n1-1, right side n1..n1+n2-1; every cross pair is linked,
//     left index ascending, then right index ascending.
//
// Complexity: O(n1·n2) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := atLeast(methodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		if err := fits(methodCompleteBipartite, g, n1+n2); err != nil {
			return err
		}
		for u := 0; u < n1; u++ {
			for v := n1; v < n1+n2; v++ {
				if err := link(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
