// SPDX-License-Identifier: MIT
// Package: colorgame/game

package game_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/colorgame/builder"
	"github.com/katalvlaran/colorgame/game"
)

// ExampleResult_WriteGameplay plays the 4-cycle with two colors: whatever
// Alice colors, Bob takes the opposite corner with the other color.
func ExampleResult_WriteGameplay() {
	g, _ := builder.CycleGraph(4)
	res, err := game.PlayOptimally(g, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = res.WriteGameplay(os.Stdout)
	// Output:
	// R0 Alice, v = 0, c = 0
	// R1   Bob, v = 2, c = 1
	// Bob WINS!
}

func ExampleGameChromaticNumber() {
	g, _ := builder.CycleGraph(4)
	k, err := game.GameChromaticNumber(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(k)
	// Output: 3
}
