// Package game decides the vertex coloring game on a bitgraph.Graph by
// exhaustive minimax search with alpha-beta pruning.
//
// Two players alternate. Alice (the maximizer) moves first; each move colors
// one uncolored vertex with a color no colored neighbour is using. Alice wins
// when every vertex is colored; Bob (the minimizer) wins as soon as some
// uncolored vertex has no legal color left.
//
// The package offers:
//
//   - Search(pos, maximizing, opts...): evaluate one Position and return the best
//     move for the side to play. Terminal positions score +(level+1) when Alice
//     has won and -(level+1) when Bob has, level being the ply depth below the
//     searched position. Moves are generated lowest vertex first, then lowest
//     color; ties keep the first move found.
//   - PlayOptimally(g, k, opts...): play a whole game, re-searching from scratch
//     at every ply, and report the winner with the move log.
//   - GameChromaticNumber(g, opts...): the smallest k for which Alice wins,
//     starting from the clique lower bound of StartingPalette.
//
// Search mutates the Position in place and restores it before returning. It is
// single threaded and does not poll any context; callers needing a deadline run
// it under their own supervision (see package batch).
//
// Complexity: exponential in n in the worst case; each node costs O(n·k) for the
// terminal checks plus O(deg(u)) per applied move.
package game
