// SPDX-License-Identifier: MIT
// Package: colorgame/coloring
//
// uncolored.go — bitmask of vertices that have no color yet.

package coloring

import (
	"iter"
	"math/bits"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// Uncolored mirrors the set of uncolored vertices as a bitmask. It performs no
// validation; the caller pairs Remove with Assign and Add with Unassign.
type Uncolored uint64

// NewUncolored returns the set {0,…,n-1}. n must be in [0, 64].
func NewUncolored(n int) Uncolored {
	if n <= 0 {
		return 0
	}

	return Uncolored(^uint64(0) >> uint(bitgraph.MaxVertices-n))
}

// Remove clears bit u.
func (s *Uncolored) Remove(u int) { *s &^= 1 << uint(u) }

// Add sets bit u.
func (s *Uncolored) Add(u int) { *s |= 1 << uint(u) }

// Has reports whether u is in the set.
func (s Uncolored) Has(u int) bool { return s&(1<<uint(u)) != 0 }

// Len returns the number of uncolored vertices.
func (s Uncolored) Len() int { return bits.OnesCount64(uint64(s)) }

// Mask returns the raw bitmask.
func (s Uncolored) Mask() uint64 { return uint64(s) }

// Vertices yields the members in ascending order from a snapshot of the set.
func (s Uncolored) Vertices() iter.Seq[int] { return bitgraph.Ones(uint64(s)) }
