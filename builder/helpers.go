// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// helpers.go — shared validation and edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// fits checks that a topology of size vertices can be laid onto g.
func fits(method string, g *bitgraph.Graph, size int) error {
	if size > g.Order() {
		return fmt.Errorf("%s: size=%d > order=%d: %w", method, size, g.Order(), ErrTooManyVertices)
	}

	return nil
}

// atLeast checks a size parameter against its minimum.
func atLeast(method, name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, min, ErrTooFewVertices)
	}

	return nil
}

// link adds {u,v} unless it is already present.
func link(method string, g *bitgraph.Graph, u, v int) error {
	if g.HasEdge(u, v) {
		return nil
	}
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return nil
}
