// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); n ≤ g.Order().
//   • Hub is vertex HubVertex (0); leaves 1..n-1 in ascending order.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// Star returns a Constructor that builds K_{1,n-1} with hub 0.
func Star(n int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := fits(methodStar, g, n); err != nil {
			return err
		}

		return spokes(methodStar, g, n)
	}
}

// spokes links the hub to every vertex 1..n-1.
func spokes(method string, g *bitgraph.Graph, n int) error {
	for leaf := HubVertex + 1; leaf < n; leaf++ {
		if err := link(method, g, HubVertex, leaf); err != nil {
			return err
		}
	}

	return nil
}
