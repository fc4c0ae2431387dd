// SPDX-License-Identifier: MIT
// Package: colorgame/game
//
// play.go — PlayOptimally driver and the gameplay transcript.

package game

import (
	"fmt"
	"io"

	"github.com/katalvlaran/colorgame/bitgraph"
	"github.com/katalvlaran/colorgame/coloring"
)

const methodPlayOptimally = "PlayOptimally"

// PlayOptimally plays the k-color game on g with both sides searching
// exhaustively at every ply. Each chosen move becomes permanent; the game stops
// after n plies or as soon as a dead end or conflict appears.
//
// Errors: coloring.ErrNilGraph, coloring.ErrPaletteSize (k outside [1,63]).
func PlayOptimally(g *bitgraph.Graph, k int, opts ...Option) (*Result, error) {
	o := resolve(opts)
	state, err := coloring.New(g, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPlayOptimally, err)
	}
	pos := NewPosition(state)
	res := &Result{Palette: k, Moves: make([]Move, 0, g.Order())}
	log := o.Logger.With().Int("k", k).Int("n", g.Order()).Logger()

	maximizing := true
	for ply := 0; ply < g.Order(); ply++ {
		ev := Search(pos, maximizing)
		res.Stats.add(ev.Stats)
		if !ev.HasMove {
			break
		}
		pos.Play(ev.Move)
		res.Moves = append(res.Moves, ev.Move)

		log.Debug().
			Int("round", ply).
			Str("player", player(ply)).
			Int("vertex", ev.Move.Vertex).
			Int("color", ev.Move.Color).
			Int("value", ev.Value).
			Int64("nodes", ev.Stats.Nodes).
			Msg("ply-applied")

		maximizing = !maximizing
		if state.HasConflict() || state.IsDeadend() {
			break
		}
	}

	res.Winner = BobWins
	if pos.AliceWon() {
		res.Winner = AliceWins
	}
	log.Info().
		Str("winner", res.Winner.String()).
		Int("plies", len(res.Moves)).
		Int64("nodes", res.Stats.Nodes).
		Int64("cutoffs", res.Stats.Cutoffs).
		Msg("game-finished")

	return res, nil
}

// player names the side moving at round r; Alice takes the even rounds.
func player(r int) string {
	if r%2 == 0 {
		return AliceWins.String()
	}

	return BobWins.String()
}

// WriteGameplay writes one line per ply, "R<round> <player>, v = X, c = Y" with
// the player right-aligned to five columns, then "Alice WINS!" or "Bob WINS!".
func (r *Result) WriteGameplay(w io.Writer) error {
	for i, m := range r.Moves {
		if _, err := fmt.Fprintf(w, "R%d %5s, %s\n", i, player(i), m); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s WINS!\n", r.Winner)

	return err
}
