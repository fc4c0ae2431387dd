// SPDX-License-Identifier: MIT
// Package: colorgame/coloring
//
// types.go — Color slot, State, sentinel errors and the New constructor.

package coloring

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// MaxPalette is the largest palette size (k < 64), so every allowed-color mask
// fits in a uint64.
const MaxPalette = bitgraph.MaxVertices - 1

// Sentinel errors for coloring operations.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrPaletteSize indicates a palette size outside [1, MaxPalette].
	ErrPaletteSize = errors.New("coloring: palette size out of range")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("coloring: vertex out of range")

	// ErrColorOutOfRange indicates a color index outside [0, k).
	ErrColorOutOfRange = errors.New("coloring: color out of range")

	// ErrAlreadyColored indicates Assign on a vertex that already has a color.
	ErrAlreadyColored = errors.New("coloring: vertex already colored")

	// ErrColorMismatch indicates Unassign with a color the vertex does not have.
	ErrColorMismatch = errors.New("coloring: vertex does not have this color")

	// ErrInvariant indicates an internal consistency check failed.
	ErrInvariant = errors.New("coloring: invariant violated")
)

// Color is the color slot of one vertex: either absent or a palette index.
// The zero value is NoColor.
type Color struct {
	c  uint8
	ok bool
}

// NoColor is the absent color.
var NoColor Color

// ColorOf returns the present color c. It does not check c against a palette.
func ColorOf(c int) Color { return Color{c: uint8(c), ok: true} }

// Get returns the palette index and whether the slot holds a color.
func (c Color) Get() (int, bool) { return int(c.c), c.ok }

// IsSet reports whether the slot holds a color.
func (c Color) IsSet() bool { return c.ok }

// String renders the slot as its index or "UNASSIGNED".
func (c Color) String() string {
	if !c.ok {
		return "UNASSIGNED"
	}

	return strconv.Itoa(int(c.c))
}

// State is a partial coloring of one graph with a fixed palette size.
//
// It is mutated only through Assign and Unassign, is not safe for concurrent
// use, and must not outlive the game it was created for.
type State struct {
	g       *bitgraph.Graph
	k       int
	color   []Color // color[u]
	attack  []uint8 // attack[u*k+c]: colored neighbours of u using c
	colored int
}

// New returns an empty coloring of g with palette {0,…,k-1}.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrPaletteSize if k < 1 or k > MaxPalette.
func New(g *bitgraph.Graph, k int) (*State, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 || k > MaxPalette {
		return nil, fmt.Errorf("New: k=%d not in [1,%d]: %w", k, MaxPalette, ErrPaletteSize)
	}

	n := g.Order()

	return &State{
		g:      g,
		k:      k,
		color:  make([]Color, n),
		attack: make([]uint8, n*k),
	}, nil
}
