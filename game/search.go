// SPDX-License-Identifier: MIT
// Package: colorgame/game
//
// search.go — minimax with alpha-beta pruning over a mutable Position.
//
// Node protocol:
//  1. Terminal test, in this order: complete and conflict-free scores
//     +(level+1); dead end or conflict scores -(level+1).
//  2. Children: uncolored vertices ascending, then allowed colors ascending.
//     Each child is Play → recurse → Undo, so siblings see the parent intact.
//  3. Best move changes only on strict improvement (first found wins ties).
//  4. A cutoff abandons every remaining child of the node, not just the
//     remaining colors of the current vertex.

package game

import (
	"math"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// searcher holds the position being explored and the effort counters.
type searcher struct {
	pos   *Position
	stats Stats
}

// Search evaluates pos for the side to play (maximizing is Alice) with a full
// window at level 0. pos is restored exactly before Search returns.
func Search(pos *Position, maximizing bool, opts ...Option) Evaluation {
	o := resolve(opts)
	s := &searcher{pos: pos}
	m, v, ok := s.minimax(maximizing, math.MinInt, math.MaxInt, 0)

	o.Logger.Trace().
		Bool("maximizing", maximizing).
		Int("value", v).
		Int64("nodes", s.stats.Nodes).
		Int64("cutoffs", s.stats.Cutoffs).
		Msg("search-finished")

	return Evaluation{Move: m, Value: v, HasMove: ok, Stats: s.stats}
}

func (s *searcher) minimax(maximizing bool, alpha, beta, level int) (Move, int, bool) {
	s.stats.Nodes++
	if s.pos.AliceWon() {
		return Move{}, level + 1, false
	}
	if s.pos.BobWon() {
		return Move{}, -(level + 1), false
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	var (
		bestMove Move
		found    bool
	)

children:
	for u := range s.pos.Uncolored.Vertices() {
		for c := range bitgraph.Ones(s.pos.State.AllowedColors(u)) {
			m := Move{Vertex: u, Color: c}
			s.pos.Play(m)
			_, v, _ := s.minimax(!maximizing, alpha, beta, level+1)
			s.pos.Undo(m)

			if maximizing {
				if v > best {
					best, bestMove, found = v, m, true
				}
				if v >= beta {
					s.stats.Cutoffs++
					break children
				}
				alpha = max(alpha, v)
			} else {
				if v < best {
					best, bestMove, found = v, m, true
				}
				if v <= alpha {
					s.stats.Cutoffs++
					break children
				}
				beta = min(beta, v)
			}
		}
	}

	return bestMove, best, found
}
