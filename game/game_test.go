// SPDX-License-Identifier: MIT
// Package: colorgame/game
//
// game_test.go — search and driver behaviour on small canonical graphs.

package game_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/colorgame/bitgraph"
	"github.com/katalvlaran/colorgame/builder"
	"github.com/katalvlaran/colorgame/coloring"
	"github.com/katalvlaran/colorgame/game"
)

// GameSuite groups end-to-end games and search properties.
type GameSuite struct {
	suite.Suite
}

func (s *GameSuite) graph(g *bitgraph.Graph, err error) *bitgraph.Graph {
	s.T().Helper()
	require.NoError(s.T(), err)

	return g
}

func (s *GameSuite) play(g *bitgraph.Graph, k int) *game.Result {
	s.T().Helper()
	res, err := game.PlayOptimally(g, k)
	require.NoError(s.T(), err)

	return res
}

// TestPath4: P4 with four colors is an Alice win.
func (s *GameSuite) TestPath4() {
	g := s.graph(builder.PathGraph(4))
	res := s.play(g, 4)
	s.Equal(game.AliceWins, res.Winner)
	s.Len(res.Moves, 4)
	s.Equal(4, res.Palette)
}

// TestStarsTwoColors: Alice colors the hub and every leaf is forced.
func (s *GameSuite) TestStarsTwoColors() {
	for n := 3; n <= 7; n++ {
		g := s.graph(builder.StarGraph(n))
		res := s.play(g, 2)
		s.Equal(game.AliceWins, res.Winner, "star n=%d", n)
		s.Equal(game.Move{Vertex: 0, Color: 0}, res.Moves[0], "hub first, n=%d", n)
	}
}

// TestCycle4: Bob wins with two colors by answering across the diagonal;
// three colors always suffice for maximum degree two.
func (s *GameSuite) TestCycle4() {
	g := s.graph(builder.CycleGraph(4))

	res := s.play(g, 2)
	s.Equal(game.BobWins, res.Winner)
	s.Len(res.Moves, 2)

	res = s.play(g, 3)
	s.Equal(game.AliceWins, res.Winner)
	s.Len(res.Moves, 4)
}

// TestTriangleTwoColors: a clique larger than the palette dead-ends at once.
func (s *GameSuite) TestTriangleTwoColors() {
	g := s.graph(builder.CompleteGraph(3))
	res := s.play(g, 2)
	s.Equal(game.BobWins, res.Winner)
	s.Equal([]game.Move{{Vertex: 0, Color: 0}, {Vertex: 1, Color: 1}}, res.Moves)
}

// TestSearchRestoresPosition: the position after Search equals the one before.
func (s *GameSuite) TestSearchRestoresPosition() {
	g := s.graph(builder.BuildGraph(7, []builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(7, 0.4)))
	st, err := coloring.New(g, 3)
	s.Require().NoError(err)
	pos := game.NewPosition(st)
	pos.Play(game.Move{Vertex: 2, Color: 1})

	before := st.Clone()
	un := pos.Uncolored
	ev := game.Search(pos, false)

	s.True(st.Equal(before))
	s.Equal(un, pos.Uncolored)
	s.NoError(st.CheckInvariants())
	s.True(ev.HasMove)
	s.Positive(ev.Stats.Nodes)
}

// TestSearchValue: a forced Alice win in n plies scores n+1.
func (s *GameSuite) TestSearchValue() {
	g := s.graph(builder.StarGraph(3))
	st, err := coloring.New(g, 2)
	s.Require().NoError(err)

	ev := game.Search(game.NewPosition(st), true)
	s.True(ev.HasMove)
	s.Equal(4, ev.Value)
	s.Equal(game.Move{Vertex: 0, Color: 0}, ev.Move)
}

// TestSearchTerminal: terminal positions return ±1 without a move.
func (s *GameSuite) TestSearchTerminal() {
	k3 := s.graph(builder.CompleteGraph(3))

	full, err := coloring.New(k3, 3)
	s.Require().NoError(err)
	for u := 0; u < 3; u++ {
		full.Assign(u, u)
	}
	ev := game.Search(game.NewPosition(full), true)
	s.False(ev.HasMove)
	s.Equal(1, ev.Value)

	dead, err := coloring.New(k3, 2)
	s.Require().NoError(err)
	dead.Assign(0, 0)
	dead.Assign(1, 1)
	ev = game.Search(game.NewPosition(dead), true)
	s.False(ev.HasMove)
	s.Equal(-1, ev.Value)

	// A conflict is a Bob win even while a free color remains elsewhere.
	star := s.graph(builder.StarGraph(3))
	bad, err := coloring.New(star, 2)
	s.Require().NoError(err)
	bad.Assign(0, 0)
	bad.Assign(1, 0)
	ev = game.Search(game.NewPosition(bad), true)
	s.False(ev.HasMove)
	s.Equal(-1, ev.Value)
}

// TestNewPositionSkipsColored: pre-colored vertices are not in the uncolored set.
func (s *GameSuite) TestNewPositionSkipsColored() {
	g := s.graph(builder.PathGraph(3))
	st, err := coloring.New(g, 2)
	s.Require().NoError(err)
	st.Assign(1, 0)

	pos := game.NewPosition(st)
	s.Equal(2, pos.Uncolored.Len())
	s.False(pos.Uncolored.Has(1))
}

// TestErrors: invalid palettes and graphs surface coloring sentinels.
func (s *GameSuite) TestErrors() {
	g := s.graph(builder.PathGraph(3))
	_, err := game.PlayOptimally(g, 0)
	s.ErrorIs(err, coloring.ErrPaletteSize)
	_, err = game.PlayOptimally(g, coloring.MaxPalette+1)
	s.ErrorIs(err, coloring.ErrPaletteSize)
	_, err = game.PlayOptimally(nil, 2)
	s.ErrorIs(err, coloring.ErrNilGraph)
	_, err = game.GameChromaticNumber(nil)
	s.ErrorIs(err, coloring.ErrNilGraph)
}

// TestLogging: the driver emits per-ply and per-game events.
func (s *GameSuite) TestLogging() {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := s.graph(builder.StarGraph(4))

	res, err := game.PlayOptimally(g, 2, game.WithLogger(l))
	s.Require().NoError(err)
	s.Equal(game.AliceWins, res.Winner)
	s.Contains(buf.String(), "ply-applied")
	s.Contains(buf.String(), "game-finished")
	s.Contains(buf.String(), `"winner":"Alice"`)
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}
