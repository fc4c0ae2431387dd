// SPDX-License-Identifier: MIT
// Package: colorgame/coloring
//
// invariants.go — full consistency recheck of a State.
//
// Assign and Unassign never call this; tests run it after every mutation.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// CheckInvariants recomputes everything derivable from the color slots and
// compares it with the maintained counters:
//
//   - every present color lies in [0, k);
//   - colored count equals the number of present slots and lies in [0, n];
//   - 0 ≤ attack[u][c] ≤ deg(u), and attack[u][c] equals the number of
//     neighbours of u colored c.
//
// The first violation is returned wrapped in ErrInvariant.
// Complexity: O(n·k + m).
func (s *State) CheckInvariants() error {
	n := s.g.Order()
	present := 0
	for u, slot := range s.color {
		if c, ok := slot.Get(); ok {
			if c >= s.k {
				return fmt.Errorf("vertex %d has color %d, k=%d: %w", u, c, s.k, ErrInvariant)
			}
			present++
		}
	}
	if present != s.colored || s.colored < 0 || s.colored > n {
		return fmt.Errorf("colored=%d, present=%d, n=%d: %w", s.colored, present, n, ErrInvariant)
	}

	recount := make([]int, n*s.k)
	for u, slot := range s.color {
		c, ok := slot.Get()
		if !ok {
			continue
		}
		for w := range bitgraph.Ones(s.g.Neighbors(u)) {
			recount[w*s.k+c]++
		}
	}
	for u := 0; u < n; u++ {
		deg := s.g.Degree(u)
		for c := 0; c < s.k; c++ {
			a := int(s.attack[u*s.k+c])
			if a > deg {
				return fmt.Errorf("attack[%d][%d]=%d > deg=%d: %w", u, c, a, deg, ErrInvariant)
			}
			if a != recount[u*s.k+c] {
				return fmt.Errorf("attack[%d][%d]=%d, recount=%d: %w", u, c, a, recount[u*s.k+c], ErrInvariant)
			}
		}
	}

	return nil
}
