// SPDX-License-Identifier: MIT

// Command colorgame decides the vertex coloring game on graph6 input.
//
// Usage:
//
//	colorgame -graph <g6> -k <k>          play one game and print the transcript
//	colorgame -graph <g6>                 print the game chromatic number
//	colorgame -family <name> -n <order>   solve a corpus file
//	colorgame -family <name> -all         solve every order of a family
//
// Corpus files live at <data>/<family>/<family>-n<order>.dat. Results are
// written as "<g6> <k>" lines to stdout or appended to -out; -resume skips
// graphs already present in -out.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/colorgame/batch"
	"github.com/katalvlaran/colorgame/game"
	"github.com/katalvlaran/colorgame/graph6"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	graph      string
	k          int
	family     string
	n          int
	all        bool
	data       string
	out        string
	resume     bool
	workers    int
	logLevel   string
	cpuProfile string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("colorgame", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.graph, "graph", "", "graph6/sparse6/digraph6 record to solve")
	fs.IntVar(&c.k, "k", 0, "palette size for a single game (0 computes the game chromatic number)")
	fs.StringVar(&c.family, "family", "", fmt.Sprintf("graph family %v", batch.FamilyNames()))
	fs.IntVar(&c.n, "n", 0, "order of the family file to solve")
	fs.BoolVar(&c.all, "all", false, "solve every order of the family")
	fs.StringVar(&c.data, "data", "graph-data", "root directory of the family corpora")
	fs.StringVar(&c.out, "out", "", "append results to this file instead of stdout")
	fs.BoolVar(&c.resume, "resume", false, "skip graphs already present in -out")
	fs.IntVar(&c.workers, "workers", 1, "graphs solved concurrently")
	fs.StringVar(&c.logLevel, "log-level", "info", "trace, debug, info, warn, error or disabled")
	fs.StringVar(&c.cpuProfile, "cpuprofile", "", "write cpu profile to file")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	switch {
	case c.graph != "" && c.family != "":
		return c, errors.New("-graph and -family are mutually exclusive")
	case c.graph == "" && c.family == "":
		return c, errors.New("one of -graph or -family is required")
	case c.family != "" && !c.all && c.n == 0:
		return c, errors.New("-family needs -n <order> or -all")
	case c.k < 0:
		return c, fmt.Errorf("-k=%d must be positive", c.k)
	case c.resume && c.out == "":
		return c, errors.New("-resume needs -out")
	}

	return c, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "colorgame: %v\n", err)
		}
		return 1
	}
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "colorgame: -log-level: %v\n", err)
		return 1
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	if c.cpuProfile != "" {
		f, err := os.Create(c.cpuProfile)
		if err != nil {
			fmt.Fprintf(stderr, "could not create CPU profile: %v\n", err)
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(stderr, "could not start CPU profile: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if c.graph != "" {
		err = solveOne(c, stdout, logger)
	} else {
		err = solveFamily(ctx, c, stdout, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg("colorgame-failed")
		return 1
	}

	return 0
}

func solveOne(c config, stdout io.Writer, logger zerolog.Logger) error {
	g, err := graph6.Decode(c.graph)
	if err != nil {
		return err
	}
	opts := []game.Option{game.WithLogger(logger)}
	if c.k == 0 {
		k, err := game.GameChromaticNumber(g, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, k)

		return err
	}
	res, err := game.PlayOptimally(g, c.k, opts...)
	if err != nil {
		return err
	}

	return res.WriteGameplay(stdout)
}

func solveFamily(ctx context.Context, c config, stdout io.Writer, logger zerolog.Logger) error {
	f, err := batch.LookupFamily(c.family)
	if err != nil {
		return err
	}
	orders := []int{c.n}
	if c.all {
		orders = f.Orders()
	}

	opts := []batch.Option{
		batch.WithWorkers(c.workers),
		batch.WithLogger(logger),
	}
	// Per-game events only surface at debug and below.
	if logger.GetLevel() <= zerolog.DebugLevel {
		opts = append(opts, batch.WithGameOptions(game.WithLogger(logger)))
	}
	if c.resume {
		solved, err := loadSolved(c.out)
		if err != nil {
			return err
		}
		logger.Info().Int("solved", len(solved)).Str("file", c.out).Msg("resume-cache-loaded")
		opts = append(opts, batch.WithSolved(solved))
	}

	w := stdout
	if c.out != "" {
		of, err := os.OpenFile(c.out, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer of.Close()
		w = of
	}

	for _, n := range orders {
		path, err := f.File(c.data, n)
		if err != nil {
			return err
		}
		if err := solveFile(ctx, path, w, opts); err != nil {
			return err
		}
		if c.all {
			if _, err := fmt.Fprintln(w, batch.Separator()); err != nil {
				return err
			}
		}
	}

	return nil
}

func solveFile(ctx context.Context, path string, w io.Writer, opts []batch.Option) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	if _, err := batch.Run(ctx, in, w, opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func loadSolved(path string) (batch.Solved, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return batch.Solved{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return batch.LoadSolved(f)
}
