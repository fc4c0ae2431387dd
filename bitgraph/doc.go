// Package bitgraph provides a compact, immutable-by-convention undirected simple
// graph on at most 64 vertices, with one uint64 adjacency mask per vertex.
//
// What:
//
//   - Graph: vertex count, per-vertex adjacency masks, edge count.
//   - Ones: lazy ascending traversal of the set bits of a mask.
//   - NextCombination, HasClique, HasTriangle, HasK4: k-subset enumeration and
//     clique-existence predicates used to pick a starting palette size.
//
// Why:
//
//   - The coloring game search queries neighbourhoods millions of times per
//     second; a word-sized neighbourhood makes "neighbours of u", "is (u,v) an
//     edge" and "deg(u)" single instructions.
//
// Invariants:
//
//   - 1 ≤ Order() ≤ MaxVertices.
//   - No self-loops; bit v of Neighbors(u) is set iff bit u of Neighbors(v) is set.
//   - EdgeCount() equals half the sum of all degrees.
//
// A Graph is populated with AddEdge and then treated as read-only; the coloring
// and game packages never mutate it.
//
// Complexity:
//
//   - AddEdge, HasEdge, Degree, Neighbors: O(1).
//   - HasClique(g, k): O(C(n,k)·k²).
//
// Errors:
//
//   - ErrVertexCount       n outside [1, MaxVertices]
//   - ErrVertexOutOfRange  vertex index outside [0, n)
//   - ErrSelfLoop          u == v
//   - ErrDuplicateEdge     edge already present
package bitgraph
