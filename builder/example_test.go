// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// example_test.go — runnable examples for the builder package.

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/colorgame/builder"
)

// ExampleBuildGraph composes a 5-cycle with the spokes of a star, which
// yields the wheel W_5 on the same vertex set.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(5, nil, builder.Cycle(5), builder.Star(5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.EdgeCount(), g.Degree(0), g.Degree(2))
	// Output:
	// 7 4 3
}
