// SPDX-License-Identifier: MIT
// Package: colorgame/batch

package batch

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/colorgame/game"
)

// Option configures Run.
type Option func(*Options)

// Options holds the resolved configuration of a run.
type Options struct {
	// Workers is the number of graphs solved concurrently. Values below 1 mean 1.
	Workers int
	// Solved maps graph6 lines to a known answer; those lines are skipped.
	Solved Solved
	// Logger receives progress events. Defaults to zerolog.Nop().
	Logger zerolog.Logger
	// Game options passed to every game.GameChromaticNumber call.
	Game []game.Option
}

// DefaultOptions returns a sequential run with no cache and no logging.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Solved:  nil,
		Logger:  zerolog.Nop(),
		Game:    nil,
	}
}

// WithWorkers sets the number of concurrent solvers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithSolved skips every graph already present in s.
func WithSolved(s Solved) Option {
	return func(o *Options) {
		o.Solved = s
	}
}

// WithLogger routes progress events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithGameOptions forwards opts to the per-graph game search.
func WithGameOptions(opts ...game.Option) Option {
	return func(o *Options) {
		o.Game = append(o.Game, opts...)
	}
}
