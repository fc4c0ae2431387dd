// SPDX-License-Identifier: MIT
// Package: colorgame/graph6

package graph6

import (
	"github.com/katalvlaran/colorgame/bitgraph"
)

// Encode returns the graph6 record of g, without header or newline.
// Decode(Encode(g)) reproduces g. A nil graph encodes as "".
func Encode(g *bitgraph.Graph) string {
	if g == nil {
		return ""
	}
	n := g.Order()
	out := make([]byte, 0, 4+(n*(n-1)/2+5)/6)
	if n <= smallN {
		out = append(out, byte(n)+bias6)
	} else {
		out = append(out, maxByte,
			byte(n>>12&0x3f)+bias6, byte(n>>6&0x3f)+bias6, byte(n&0x3f)+bias6)
	}

	w := &bitWriter{out: out}
	for j := 1; j < n; j++ {
		adj := g.Neighbors(j)
		for i := 0; i < j; i++ {
			w.put(adj&(1<<uint(i)) != 0)
		}
	}

	return string(w.flush())
}
