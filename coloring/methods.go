// SPDX-License-Identifier: MIT
// Package: colorgame/coloring
//
// methods.go — Assign/Unassign and legality queries.

package coloring

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/colorgame/bitgraph"
)

const (
	methodAssign   = "Assign"
	methodUnassign = "Unassign"
)

// Assign colors the uncolored vertex u with c and marks c as attacked on every
// neighbour of u.
//
// Panics (wrapping a sentinel) if u or c is out of range or u is already colored.
// Complexity: O(deg(u)).
func (s *State) Assign(u, c int) {
	s.checkArgs(methodAssign, u, c)
	if s.color[u].ok {
		panic(fmt.Errorf("%s(%d,%d): has %s: %w", methodAssign, u, c, s.color[u], ErrAlreadyColored))
	}

	s.color[u] = ColorOf(c)
	s.colored++
	for w := range bitgraph.Ones(s.g.Neighbors(u)) {
		s.attack[w*s.k+c]++
	}
}

// Unassign removes color c from u and releases c on every neighbour of u.
// It is the exact inverse of Assign(u, c).
//
// Panics (wrapping a sentinel) if u or c is out of range or u is not colored c.
// Complexity: O(deg(u)).
func (s *State) Unassign(u, c int) {
	s.checkArgs(methodUnassign, u, c)
	if got, ok := s.color[u].Get(); !ok || got != c {
		panic(fmt.Errorf("%s(%d,%d): has %s: %w", methodUnassign, u, c, s.color[u], ErrColorMismatch))
	}

	s.color[u] = NoColor
	s.colored--
	for w := range bitgraph.Ones(s.g.Neighbors(u)) {
		s.attack[w*s.k+c]--
	}
}

// Graph returns the underlying graph.
func (s *State) Graph() *bitgraph.Graph { return s.g }

// Palette returns the palette size k.
func (s *State) Palette() int { return s.k }

// ColoredCount returns the number of colored vertices.
func (s *State) ColoredCount() int { return s.colored }

// Color returns the color slot of u.
func (s *State) Color(u int) Color {
	s.checkVertex("Color", u)

	return s.color[u]
}

// AttackCount returns how many colored neighbours of u use color c.
func (s *State) AttackCount(u, c int) int {
	s.checkArgs("AttackCount", u, c)

	return int(s.attack[u*s.k+c])
}

// AllowedColors returns the mask of colors c in [0,k) whose attack count on u is zero.
func (s *State) AllowedColors(u int) uint64 {
	s.checkVertex("AllowedColors", u)
	row := s.attack[u*s.k : (u+1)*s.k]
	var allowed uint64
	for c, a := range row {
		if a == 0 {
			allowed |= 1 << uint(c)
		}
	}

	return allowed
}

// IsAllowed reports whether c is currently legal for u.
func (s *State) IsAllowed(u, c int) bool {
	s.checkArgs("IsAllowed", u, c)

	return s.attack[u*s.k+c] == 0
}

// HasFreeColor reports whether at least one color is legal for u.
func (s *State) HasFreeColor(u int) bool {
	s.checkVertex("HasFreeColor", u)
	for _, a := range s.attack[u*s.k : (u+1)*s.k] {
		if a == 0 {
			return true
		}
	}

	return false
}

// IsComplete reports whether every vertex is colored.
func (s *State) IsComplete() bool { return s.colored == s.g.Order() }

// IsDeadend reports whether some uncolored vertex has no legal color left.
func (s *State) IsDeadend() bool {
	for u, slot := range s.color {
		if !slot.ok && !s.HasFreeColor(u) {
			return true
		}
	}

	return false
}

// HasConflict reports whether some colored vertex shares its color with a
// colored neighbour. It rechecks the color slots directly rather than trusting
// the attack counts.
func (s *State) HasConflict() bool {
	for u, slot := range s.color {
		if c, ok := slot.Get(); ok && s.NeighborHasColor(u, c) {
			return true
		}
	}

	return false
}

// NeighborHasColor reports whether some neighbour of u is colored c.
func (s *State) NeighborHasColor(u, c int) bool {
	s.checkArgs("NeighborHasColor", u, c)
	for w := range bitgraph.Ones(s.g.Neighbors(u)) {
		if got, ok := s.color[w].Get(); ok && got == c {
			return true
		}
	}

	return false
}

// Clone returns an independent copy sharing only the read-only graph.
func (s *State) Clone() *State {
	out := &State{
		g:       s.g,
		k:       s.k,
		color:   make([]Color, len(s.color)),
		attack:  make([]uint8, len(s.attack)),
		colored: s.colored,
	}
	copy(out.color, s.color)
	copy(out.attack, s.attack)

	return out
}

// Equal reports whether s and o describe the same coloring of the same graph:
// identical color slots, attack counts and colored count.
func (s *State) Equal(o *State) bool {
	if s.g != o.g || s.k != o.k || s.colored != o.colored {
		return false
	}
	for u := range s.color {
		if s.color[u] != o.color[u] {
			return false
		}
	}
	for i := range s.attack {
		if s.attack[i] != o.attack[i] {
			return false
		}
	}

	return true
}

// String renders the color slots followed by the attack rows:
//
//	c(0) = 0
//	c(1) = UNASSIGNED
//	attack[0] = 0 0
//	attack[1] = 1 0
func (s *State) String() string {
	var sb strings.Builder
	for u, slot := range s.color {
		fmt.Fprintf(&sb, "c(%d) = %s\n", u, slot)
	}
	for u := range s.color {
		fmt.Fprintf(&sb, "attack[%d] =", u)
		for _, a := range s.attack[u*s.k : (u+1)*s.k] {
			fmt.Fprintf(&sb, " %d", a)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (s *State) checkVertex(method string, u int) {
	if u < 0 || u >= len(s.color) {
		panic(fmt.Errorf("%s(%d): n=%d: %w", method, u, len(s.color), ErrVertexOutOfRange))
	}
}

func (s *State) checkArgs(method string, u, c int) {
	s.checkVertex(method, u)
	if c < 0 || c >= s.k {
		panic(fmt.Errorf("%s(%d,%d): k=%d: %w", method, u, c, s.k, ErrColorOutOfRange))
	}
}
