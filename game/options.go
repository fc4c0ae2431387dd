// SPDX-License-Identifier: MIT
// Package: colorgame/game

package game

import "github.com/rs/zerolog"

// Option configures Search, PlayOptimally and GameChromaticNumber.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Logger receives per-ply debug events and per-game info events.
	// Defaults to zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with a disabled logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes game events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
