// SPDX-License-Identifier: MIT
// Package: colorgame/game

package game_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colorgame/bitgraph"
	"github.com/katalvlaran/colorgame/builder"
	"github.com/katalvlaran/colorgame/game"
)

func TestStartingPalette(t *testing.T) {
	edgeless, err := bitgraph.New(4)
	require.NoError(t, err)
	assert.Equal(t, 1, game.StartingPalette(edgeless))

	p, err := builder.PathGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 2, game.StartingPalette(p))

	w, err := builder.BuildGraph(5, nil, builder.Wheel(5))
	require.NoError(t, err)
	assert.Equal(t, 3, game.StartingPalette(w))

	k, err := builder.CompleteGraph(6)
	require.NoError(t, err)
	assert.Equal(t, 4, game.StartingPalette(k))
}

func TestGameChromaticNumber(t *testing.T) {
	edgeless, err := bitgraph.New(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		g    func() (*bitgraph.Graph, error)
		want int
	}{
		{"Edgeless3", func() (*bitgraph.Graph, error) { return edgeless, nil }, 1},
		{"K3", func() (*bitgraph.Graph, error) { return builder.CompleteGraph(3) }, 3},
		{"K4", func() (*bitgraph.Graph, error) { return builder.CompleteGraph(4) }, 4},
		{"K5", func() (*bitgraph.Graph, error) { return builder.CompleteGraph(5) }, 5},
		{"C4", func() (*bitgraph.Graph, error) { return builder.CycleGraph(4) }, 3},
		{"P4", func() (*bitgraph.Graph, error) { return builder.PathGraph(4) }, 3},
		{"Star5", func() (*bitgraph.Graph, error) { return builder.StarGraph(5) }, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.g()
			require.NoError(t, err)
			k, err := game.GameChromaticNumber(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k)
		})
	}
}

func TestWriteGameplay(t *testing.T) {
	g, err := builder.StarGraph(3)
	require.NoError(t, err)
	res, err := game.PlayOptimally(g, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteGameplay(&buf))
	assert.Equal(t, "R0 Alice, v = 0, c = 0\n"+
		"R1   Bob, v = 1, c = 1\n"+
		"R2 Alice, v = 2, c = 1\n"+
		"Alice WINS!\n", buf.String())

	lost := &game.Result{Winner: game.BobWins}
	buf.Reset()
	require.NoError(t, lost.WriteGameplay(&buf))
	assert.Equal(t, "Bob WINS!\n", buf.String())
}

func TestVictoryString(t *testing.T) {
	assert.Equal(t, "Alice", game.AliceWins.String())
	assert.Equal(t, "Bob", game.BobWins.String())
	assert.Equal(t, "v = 3, c = 1", game.Move{Vertex: 3, Color: 1}.String())
}
