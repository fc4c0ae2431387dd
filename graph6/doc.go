// Package graph6 reads and writes the compact ASCII graph encodings of the
// nauty suite (graph6, digraph6 and sparse6) for graphs of up to
// bitgraph.MaxVertices vertices.
//
// Every byte of an encoding carries six bits offset by 63, so the text stays in
// the printable range [63,126]. A record starts with an optional format prefix
// (':' for sparse6, '&' for digraph6, none for graph6), then the vertex count N(n):
//
//	n ≤ 62        one byte            n+63
//	n ≤ 258047    '~' + three bytes   18-bit big-endian n
//	otherwise     "~~" + six bytes    36-bit big-endian n
//
// and finally the body. graph6 stores the upper triangle of the adjacency matrix
// column by column; digraph6 stores the full matrix row by row and is
// symmetrised on decode; sparse6 stores an edge list.
//
// Decode accepts all three. Encode emits graph6.
package graph6
