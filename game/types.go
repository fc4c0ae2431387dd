// SPDX-License-Identifier: MIT
// Package: colorgame/game
//
// types.go — moves, outcomes, positions and search results.

package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/colorgame/coloring"
)

// ErrPaletteExhausted reports that no palette up to coloring.MaxPalette lets Alice win.
var ErrPaletteExhausted = errors.New("game: palette exhausted")

// Move is one ply: color Vertex with Color.
type Move struct {
	Vertex int
	Color  int
}

// String returns "v = X, c = Y".
func (m Move) String() string { return fmt.Sprintf("v = %d, c = %d", m.Vertex, m.Color) }

// Victory is the outcome of a finished game.
type Victory int

const (
	// BobWins means some vertex was left without a legal color.
	BobWins Victory = iota
	// AliceWins means the graph ended fully and properly colored.
	AliceWins
)

// String returns the winner's name.
func (v Victory) String() string {
	if v == AliceWins {
		return "Alice"
	}

	return "Bob"
}

// Position is a search node: the coloring plus the cache of uncolored vertices.
// Play and Undo keep both halves in lockstep.
type Position struct {
	State     *coloring.State
	Uncolored coloring.Uncolored
}

// NewPosition wraps state, deriving the uncolored set from its color slots.
func NewPosition(state *coloring.State) *Position {
	n := state.Graph().Order()
	un := coloring.NewUncolored(n)
	for u := 0; u < n; u++ {
		if state.Color(u).IsSet() {
			un.Remove(u)
		}
	}

	return &Position{State: state, Uncolored: un}
}

// Play applies m to the position.
// Panics (via coloring.State.Assign) if m is not applicable.
func (p *Position) Play(m Move) {
	p.State.Assign(m.Vertex, m.Color)
	p.Uncolored.Remove(m.Vertex)
}

// Undo reverts a previous Play(m).
func (p *Position) Undo(m Move) {
	p.State.Unassign(m.Vertex, m.Color)
	p.Uncolored.Add(m.Vertex)
}

// AliceWon reports a complete, conflict-free coloring.
func (p *Position) AliceWon() bool { return p.State.IsComplete() && !p.State.HasConflict() }

// BobWon reports a dead end or a conflict.
func (p *Position) BobWon() bool { return p.State.IsDeadend() || p.State.HasConflict() }

// Stats counts search effort.
type Stats struct {
	// Nodes is the number of positions visited, terminal ones included.
	Nodes int64
	// Cutoffs is the number of alpha-beta cutoffs taken.
	Cutoffs int64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Cutoffs += o.Cutoffs
}

// Evaluation is the result of Search.
type Evaluation struct {
	// Move is the best move for the side to play; valid only if HasMove.
	Move Move
	// Value is the game-theoretic score: positive for Alice, negative for Bob,
	// with magnitude one more than the ply depth at which the game ends.
	Value int
	// HasMove is false when the searched position is already terminal.
	HasMove bool
	Stats   Stats
}

// Result is the record of one optimally played game.
type Result struct {
	Winner  Victory
	Moves   []Move
	Palette int
	Stats   Stats
}
