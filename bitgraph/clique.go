// SPDX-License-Identifier: MIT
// Package: colorgame/bitgraph
//
// clique.go — k-subset enumeration and clique-existence predicates.
//
// These are heuristics for an outer palette loop: the clique number is a lower
// bound on the chromatic number, hence on the game chromatic number, so a
// caller can skip palettes that are certainly too small.

package bitgraph

// NextCombination advances c, a strictly increasing k-tuple over {0,…,n-1},
// to its lexicographic successor in place. It returns false, leaving c equal to
// the last tuple {n-k,…,n-1}, when no successor exists.
//
// Example (n=4, k=2): {0,1} → {0,2} → {0,3} → {1,2} → {1,3} → {2,3} → false.
func NextCombination(c []int, n int) bool {
	k := len(c)
	if k == 0 || k > n {
		return false
	}
	if c[k-1] < n-1 {
		c[k-1]++
		return true
	}

	// Rightmost position that can still move up.
	j := k - 2
	for ; j >= 0; j-- {
		if c[j] < n-k+j {
			break
		}
	}
	if j < 0 {
		return false
	}

	c[j]++
	for ; j < k-1; j++ {
		c[j+1] = c[j] + 1
	}

	return true
}

// HasClique reports whether g contains k pairwise adjacent vertices.
// k ≤ 1 is trivially true for a non-empty graph; k > Order() is false.
//
// Subsets are enumerated lexicographically with NextCombination.
func HasClique(g *Graph, k int) bool {
	if k <= 1 {
		return g.n >= 1
	}
	if k > g.n {
		return false
	}

	c := make([]int, k)
	for i := range c {
		c[i] = i
	}
	for {
		if g.isClique(c) {
			return true
		}
		if !NextCombination(c, g.n) {
			return false
		}
	}
}

// HasTriangle reports whether g contains K3.
func HasTriangle(g *Graph) bool { return HasClique(g, 3) }

// HasK4 reports whether g contains K4.
func HasK4(g *Graph) bool { return HasClique(g, 4) }

// isClique tests pairwise adjacency of the vertices in c.
func (g *Graph) isClique(c []int) bool {
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if g.adj[c[i]]&(1<<uint(c[j])) == 0 {
				return false
			}
		}
	}

	return true
}
