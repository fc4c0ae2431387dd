// SPDX-License-Identifier: MIT
// Package: colorgame/game
//
// chromatic.go — palette search for the game chromatic number.

package game

import (
	"fmt"

	"github.com/katalvlaran/colorgame/bitgraph"
	"github.com/katalvlaran/colorgame/coloring"
)

const methodGameChromaticNumber = "GameChromaticNumber"

// StartingPalette returns a lower bound on the game chromatic number of g from
// its small cliques: 4 with a K4, 3 with a triangle, 2 with any edge, else 1.
// With fewer colors than a clique has vertices Alice cannot win.
func StartingPalette(g *bitgraph.Graph) int {
	switch {
	case bitgraph.HasK4(g):
		return 4
	case bitgraph.HasTriangle(g):
		return 3
	case g.EdgeCount() > 0:
		return 2
	default:
		return 1
	}
}

// GameChromaticNumber plays k = StartingPalette(g), k+1, … and returns the
// first k Alice wins. MaxDegree+1 colors always suffice, so the scan stops there,
// or at coloring.MaxPalette if that is smaller.
//
// Errors: coloring.ErrNilGraph, ErrPaletteExhausted.
func GameChromaticNumber(g *bitgraph.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodGameChromaticNumber, coloring.ErrNilGraph)
	}
	o := resolve(opts)
	upper := min(g.MaxDegree()+1, coloring.MaxPalette)
	for k := StartingPalette(g); k <= upper; k++ {
		res, err := PlayOptimally(g, k, opts...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodGameChromaticNumber, err)
		}
		if res.Winner == AliceWins {
			o.Logger.Debug().Int("k", k).Msg("game-chromatic-number")
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s: up to k=%d: %w", methodGameChromaticNumber, upper, ErrPaletteExhausted)
}
