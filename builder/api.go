// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// api.go — BuildGraph orchestrator and convenience factories.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Allocates g, resolves cfg, runs cons in order.
//   - Topology constructors live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// Constructor applies a deterministic edge set to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return wrapped sentinels (no panics).
//   - Touch only vertices [0, size) for their documented size.
//   - Skip edges already present (composition never double-counts).
type Constructor func(g *bitgraph.Graph, cfg builderConfig) error

// BuildGraph allocates an edgeless graph on n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order. The first
// constructor error is wrapped with "BuildGraph: %w" and returned.
//
// Errors:
//   - ErrTooFewVertices / ErrTooManyVertices if n is outside [1, 64].
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*bitgraph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuildGraph, n, ErrTooFewVertices)
	}
	if n > bitgraph.MaxVertices {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", methodBuildGraph, n, bitgraph.MaxVertices, ErrTooManyVertices)
	}
	g, err := bitgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodBuildGraph, err, ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// CompleteGraph returns K_n (n ≥ 1).
func CompleteGraph(n int) (*bitgraph.Graph, error) { return BuildGraph(n, nil, Complete(n)) }

// CycleGraph returns C_n (n ≥ 4).
func CycleGraph(n int) (*bitgraph.Graph, error) { return BuildGraph(n, nil, Cycle(n)) }

// StarGraph returns the star K_{1,n-1} with hub 0 (n ≥ 3).
func StarGraph(n int) (*bitgraph.Graph, error) { return BuildGraph(n, nil, Star(n)) }

// PathGraph returns P_n: 0-1-…-(n-1) (n ≥ 2).
func PathGraph(n int) (*bitgraph.Graph, error) { return BuildGraph(n, nil, Path(n)) }
