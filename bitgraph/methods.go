// SPDX-License-Identifier: MIT
// Package: colorgame/bitgraph
//
// methods.go — edge insertion and read-only queries.

package bitgraph

import (
	"fmt"
	"math/bits"
	"strings"
)

const methodAddEdge = "AddEdge"

// AddEdge inserts the undirected edge {u,v}, setting bit v in adj[u] and bit u
// in adj[v], and increments the edge count.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is not a vertex.
//   - ErrSelfLoop if u == v.
//   - ErrDuplicateEdge if {u,v} is already present (no double counting).
func (g *Graph) AddEdge(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("%s(%d,%d): n=%d: %w", methodAddEdge, u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, u, v, ErrSelfLoop)
	}
	if g.adj[u]&(1<<uint(v)) != 0 {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, u, v, ErrDuplicateEdge)
	}

	g.adj[u] |= 1 << uint(v)
	g.adj[v] |= 1 << uint(u)
	g.m++

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.m }

// Neighbors returns the adjacency mask of u. It panics if u is not a vertex.
func (g *Graph) Neighbors(u int) uint64 {
	g.mustValid(u)

	return g.adj[u]
}

// Degree returns popcount(Neighbors(u)). It panics if u is not a vertex.
func (g *Graph) Degree(u int) int {
	g.mustValid(u)

	return bits.OnesCount64(g.adj[u])
}

// MaxDegree returns the largest vertex degree (0 for an edgeless graph).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, a := range g.adj {
		if d := bits.OnesCount64(a); d > best {
			best = d
		}
	}

	return best
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}

	return g.adj[u]&(1<<uint(v)) != 0
}

// Mask returns the mask with the low Order() bits set (the full vertex set).
func (g *Graph) Mask() uint64 {
	return ^uint64(0) >> uint(MaxVertices-g.n)
}

// Edges returns every edge once as a (u,v) pair with u < v, sorted by (u,v).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		// Only neighbours above u, so each edge is emitted from its lower endpoint.
		for v := range Ones(g.adj[u] &^ (uint64(1)<<uint(u+1) - 1)) {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	adj := make([]uint64, g.n)
	copy(adj, g.adj)

	return &Graph{n: g.n, adj: adj, m: g.m}
}

// String renders the graph as
//
//	n = 3, m = 2
//	0: 1
//	1: 0 2
//	2: 1
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n = %d, m = %d\n", g.n, g.m)
	for u := 0; u < g.n; u++ {
		fmt.Fprintf(&sb, "%d:", u)
		for v := range Ones(g.adj[u]) {
			fmt.Fprintf(&sb, " %d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Graph) valid(u int) bool { return u >= 0 && u < g.n }

func (g *Graph) mustValid(u int) {
	if !g.valid(u) {
		panic(fmt.Errorf("bitgraph: vertex %d, n=%d: %w", u, g.n, ErrVertexOutOfRange))
	}
}
