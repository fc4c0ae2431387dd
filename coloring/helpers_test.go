package coloring_test

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colorgame/bitgraph"
	"github.com/katalvlaran/colorgame/coloring"
)

// mustGraph builds a graph on n vertices from an edge list.
func mustGraph(t testing.TB, n int, edges ...[2]int) *bitgraph.Graph {
	t.Helper()
	g, err := bitgraph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// chordedSquarePendant is the 5-vertex fixture: 4-cycle 0-1-2-3 with chord
// {0,2} and pendant {2,4}. Degrees: 3 2 4 2 1.
func chordedSquarePendant(t testing.TB) *bitgraph.Graph {
	return mustGraph(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4})
}

// assign applies Assign and rechecks every invariant.
func assign(t testing.TB, s *coloring.State, u, c int) {
	t.Helper()
	s.Assign(u, c)
	require.NoError(t, s.CheckInvariants(), "after Assign(%d,%d)", u, c)
}

// unassign applies Unassign and rechecks every invariant.
func unassign(t testing.TB, s *coloring.State, u, c int) {
	t.Helper()
	s.Unassign(u, c)
	require.NoError(t, s.CheckInvariants(), "after Unassign(%d,%d)", u, c)
}

// popcount is bits.OnesCount64 spelled for readability in assertions.
func popcount(m uint64) int { return bits.OnesCount64(m) }

// requirePanicsIs asserts that fn panics with an error wrapping target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}
