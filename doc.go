// Package colorgame decides the vertex coloring game on small graphs.
//
// 🚀 What is colorgame?
//
//	A compact toolkit for the two-player coloring game on graphs of up to 64
//	vertices:
//		• bitgraph: one adjacency bitmask per vertex, clique probes
//		• builder:  canonical topologies (complete, cycle, star, path, wheel, grid, G(n,p))
//		• graph6:   graph6 / digraph6 / sparse6 decoding, graph6 encoding
//		• coloring: incremental legality state with O(1) "may u take c?" queries
//		• game:     minimax with alpha-beta, optimal play, game chromatic number
//		• batch:    corpus driver with resumable, ordered "<g6> <k>" output
//
// 🎲 The game
//
//	Alice and Bob alternately color an uncolored vertex with a color that no
//	colored neighbour uses. Alice wins if the whole graph gets colored; Bob
//	wins as soon as some vertex has no legal color left. The game chromatic
//	number is the smallest palette for which Alice has a winning strategy.
//
// 🏁 Quick start
//
//	g, _ := graph6.Decode("Cl")            // the 4-cycle
//	res, _ := game.PlayOptimally(g, 2)     // Bob wins
//	k, _ := game.GameChromaticNumber(g)    // 3
//
// The command in cmd/colorgame wraps the same entry points.
package colorgame
