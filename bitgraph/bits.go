// SPDX-License-Identifier: MIT
// Package: colorgame/bitgraph
//
// bits.go — set-bit traversal shared by the coloring state and the search.

package bitgraph

import (
	"iter"
	"math/bits"
)

// Ones yields the positions of the set bits of mask in ascending order.
//
// Each step isolates the lowest set bit with mask & -mask, reports its index and
// clears it. The sequence is finite and works on its own copy of mask; ranging
// over it twice traverses the same bits again.
func Ones(mask uint64) iter.Seq[int] {
	return func(yield func(int) bool) {
		for m := mask; m != 0; {
			low := m & -m
			m ^= low
			if !yield(bits.TrailingZeros64(low)) {
				return
			}
		}
	}
}
