// SPDX-License-Identifier: MIT
// Package: colorgame/graph6
//
// errors.go — sentinel errors for decoding.

package graph6

import "errors"

var (
	// ErrTruncated indicates the record ended before the header or body was complete.
	ErrTruncated = errors.New("graph6: truncated input")

	// ErrInvalidByte indicates a byte outside the printable range [63,126].
	ErrInvalidByte = errors.New("graph6: byte out of range")

	// ErrEmpty indicates a record describing a graph with zero vertices.
	ErrEmpty = errors.New("graph6: graph has no vertices")

	// ErrTooManyVertices indicates n exceeds bitgraph.MaxVertices.
	ErrTooManyVertices = errors.New("graph6: too many vertices")

	// ErrSelfLoop indicates a loop in a digraph6 or sparse6 record.
	ErrSelfLoop = errors.New("graph6: self-loop not supported")
)
