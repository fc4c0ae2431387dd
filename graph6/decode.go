// SPDX-License-Identifier: MIT
// Package: colorgame/graph6
//
// decode.go — Decode for graph6, digraph6 and sparse6 records.

package graph6

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// Format identifies the encoding of a record.
type Format int

const (
	// Graph6 is the undirected upper-triangle encoding.
	Graph6 Format = iota
	// Digraph6 is the full-matrix encoding, prefixed with '&'.
	Digraph6
	// Sparse6 is the edge-list encoding, prefixed with ':'.
	Sparse6
)

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case Digraph6:
		return "digraph6"
	case Sparse6:
		return "sparse6"
	default:
		return "graph6"
	}
}

var headers = []string{">>graph6<<", ">>digraph6<<", ">>sparse6<<"}

// Detect reports the format of s after whitespace and ">>...<<" headers are stripped.
func Detect(s string) Format {
	s = trim(s)
	switch {
	case strings.HasPrefix(s, "&"):
		return Digraph6
	case strings.HasPrefix(s, ":"):
		return Sparse6
	default:
		return Graph6
	}
}

// Decode parses one record into a BitGraph. Surrounding whitespace and an
// optional ">>graph6<<"-style header are ignored. Digraph6 arcs become
// undirected edges; repeated sparse6 edges collapse into one.
//
// Errors: ErrTruncated, ErrInvalidByte, ErrEmpty, ErrTooManyVertices, ErrSelfLoop.
func Decode(s string) (*bitgraph.Graph, error) {
	s = trim(s)
	f := Detect(s)
	data := []byte(s)
	if f != Graph6 {
		data = data[1:]
	}
	for i, b := range data {
		if b < bias6 || b > maxByte {
			return nil, fmt.Errorf("Decode: byte %q at %d: %w", b, i, ErrInvalidByte)
		}
	}

	n, body, err := readSize(data)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("Decode: %w", ErrEmpty)
	}
	if n > bitgraph.MaxVertices {
		return nil, fmt.Errorf("Decode: n=%d > %d: %w", n, bitgraph.MaxVertices, ErrTooManyVertices)
	}
	g, err := bitgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	r := &bitReader{body: body}
	switch f {
	case Digraph6:
		err = decodeDigraph(g, r)
	case Sparse6:
		err = decodeSparse(g, r)
	default:
		err = decodeGraph(g, r)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode %s: %w", f, err)
	}

	return g, nil
}

func trim(s string) string {
	s = strings.TrimSpace(s)
	for _, h := range headers {
		if strings.HasPrefix(s, h) {
			return strings.TrimSpace(s[len(h):])
		}
	}

	return s
}

// readSize parses N(n) and returns n with the remaining body bytes.
func readSize(data []byte) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("size: %w", ErrTruncated)
	}
	if data[0] != maxByte {
		return int(data[0] - bias6), data[1:], nil
	}
	width := 3
	rest := data[1:]
	if len(rest) > 0 && rest[0] == maxByte {
		width = 6
		rest = rest[1:]
	}
	if len(rest) < width {
		return 0, nil, fmt.Errorf("size: need %d bytes, have %d: %w", width, len(rest), ErrTruncated)
	}
	n := 0
	for _, b := range rest[:width] {
		n = n<<6 | int(b-bias6)
	}

	return n, rest[width:], nil
}

// decodeGraph reads the upper triangle: j = 1..n-1, i = 0..j-1.
func decodeGraph(g *bitgraph.Graph, r *bitReader) error {
	n := g.Order()
	if need := n * (n - 1) / 2; r.remaining() < need {
		return fmt.Errorf("body: need %d bits, have %d: %w", need, r.remaining(), ErrTruncated)
	}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if r.bit() == 1 {
				if err := g.AddEdge(i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// decodeDigraph reads the n×n matrix row by row and keeps each arc as an edge.
func decodeDigraph(g *bitgraph.Graph, r *bitReader) error {
	n := g.Order()
	if need := n * n; r.remaining() < need {
		return fmt.Errorf("body: need %d bits, have %d: %w", need, r.remaining(), ErrTruncated)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if r.bit() == 0 {
				continue
			}
			if i == j {
				return fmt.Errorf("arc (%d,%d): %w", i, j, ErrSelfLoop)
			}
			if g.HasEdge(i, j) {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// decodeSparse reads (b, x) records: b advances the current vertex v, and x
// either jumps v forward or names the other end of an edge to v.
func decodeSparse(g *bitgraph.Graph, r *bitReader) error {
	n := g.Order()
	k := bits.Len(uint(n - 1))
	v := 0
	for r.remaining() >= 1+k {
		b := r.bit()
		x := int(r.bits(k))
		if b == 1 {
			v++
		}
		if v >= n {
			break
		}
		if x > v {
			v = x
			continue
		}
		if x == v {
			return fmt.Errorf("edge (%d,%d): %w", x, v, ErrSelfLoop)
		}
		if g.HasEdge(x, v) {
			continue
		}
		if err := g.AddEdge(x, v); err != nil {
			return err
		}
	}

	return nil
}
