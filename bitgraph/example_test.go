package bitgraph_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// ExampleOnes walks the neighbourhood of a hub vertex.
func ExampleOnes() {
	g, _ := bitgraph.New(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 3)

	fmt.Println(slices.Collect(bitgraph.Ones(g.Neighbors(0))))
	fmt.Println(bitgraph.HasTriangle(g))

	// Output:
	// [1 3]
	// false
}
