// SPDX-License-Identifier: MIT
// Package: colorgame/bitgraph
//
// types.go — Graph type, sentinel errors and the New constructor.

package bitgraph

import "errors"

// MaxVertices is the largest supported vertex count: one bit per vertex in a uint64.
const MaxVertices = 64

// Sentinel errors for bitgraph operations.
var (
	// ErrVertexCount indicates a vertex count outside [1, MaxVertices].
	ErrVertexCount = errors.New("bitgraph: vertex count out of range")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("bitgraph: vertex out of range")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("bitgraph: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge is already present.
	ErrDuplicateEdge = errors.New("bitgraph: edge already present")
)

// Graph is an undirected simple graph on n ≤ 64 vertices.
//
// adj[u] has bit v set iff {u,v} is an edge. The zero value is not usable;
// construct with New.
type Graph struct {
	n   int      // vertex count
	adj []uint64 // adjacency masks, len(adj) == n
	m   int      // edge count
}

// New returns an edgeless graph on n vertices labelled 0..n-1.
//
// Errors:
//   - ErrVertexCount if n < 1 or n > MaxVertices.
func New(n int) (*Graph, error) {
	if n < 1 || n > MaxVertices {
		return nil, ErrVertexCount
	}

	return &Graph{n: n, adj: make([]uint64, n)}, nil
}
