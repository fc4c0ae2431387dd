// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: n=%d < min=%d: %w".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, rows, ...) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that a topology does not fit into the target
// graph (its size exceeds g.Order(), or BuildGraph's n exceeds 64).
var ErrTooManyVertices = errors.New("builder: topology larger than graph")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied (nil
// constructor, or an unexpected bitgraph failure).
var ErrConstructFailed = errors.New("builder: construction failed")
