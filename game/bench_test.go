// SPDX-License-Identifier: MIT
// Package: colorgame/game

package game_test

import (
	"testing"

	"github.com/katalvlaran/colorgame/builder"
	"github.com/katalvlaran/colorgame/game"
)

func BenchmarkPlayOptimally_Cycle7K3(b *testing.B) {
	g, err := builder.CycleGraph(7)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := game.PlayOptimally(g, 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGameChromaticNumber_Grid2x3(b *testing.B) {
	g, err := builder.BuildGraph(6, nil, builder.Grid(2, 3))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := game.GameChromaticNumber(g); err != nil {
			b.Fatal(err)
		}
	}
}
