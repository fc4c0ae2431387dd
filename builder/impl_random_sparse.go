// SPDX-License-Identifier: MIT
// Package: colorgame/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n ≤ g.Order().
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Trial order: i asc, then j asc (j > i); one Float64 draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/colorgame/bitgraph"
)

// RandomSparse returns a Constructor that samples G(n,p) on vertices 0..n-1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *bitgraph.Graph, cfg builderConfig) error {
		if err := atLeast(methodRandomSparse, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := fits(methodRandomSparse, g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if cfg.rng != nil {
					// Draw even at p ∈ {0,1} so the stream position depends only on n.
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := link(methodRandomSparse, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
