// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); n ≤ g.Order().
//   • Rim: ring over 1..n-1. Hub: vertex 0 joined to every rim vertex.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/colorgame/bitgraph"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *bitgraph.Graph, _ builderConfig) error {
		if err := atLeast(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := fits(methodWheel, g, n); err != nil {
			return err
		}
		if err := ring(methodWheel, g, HubVertex+1, n-1); err != nil {
			return err
		}

		return spokes(methodWheel, g, n)
	}
}
