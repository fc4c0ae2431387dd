// SPDX-License-Identifier: MIT
// Package: colorgame/batch
//
// run.go — the corpus driver.

package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/colorgame/bitgraph"
	"github.com/katalvlaran/colorgame/game"
	"github.com/katalvlaran/colorgame/graph6"
)

// Summary counts the graphs of one run.
type Summary struct {
	// Total is the number of non-blank input lines.
	Total int
	// Solved is the number of graphs computed and written.
	Solved int
	// Skipped is the number of graphs found in the Solved cache.
	Skipped int
}

// record is one corpus line.
type record struct {
	no    int // 1-based line number
	index int // 1-based position among non-blank lines
	text  string
	g     *bitgraph.Graph
}

// Run reads graph6 lines from in, computes each game chromatic number and
// writes "<line> <k>" to out in input order. Lines in the Solved cache are
// skipped without output. The first decode error aborts before any search.
//
// Cancelling ctx stops scheduling new graphs; a graph already being searched
// runs to completion.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) (Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	all, err := readRecords(in)
	if err != nil {
		return Summary{}, err
	}
	pending := lo.Filter(all, func(r record, _ int) bool { return !o.Solved.Has(r.text) })
	sum := Summary{Total: len(all), Skipped: len(all) - len(pending)}

	for i := range pending {
		if pending[i].g, err = graph6.Decode(pending[i].text); err != nil {
			return sum, fmt.Errorf("Run: line %d: %w: %w", pending[i].no, ErrBadGraph, err)
		}
	}

	w := &orderedWriter{w: out, ready: make(map[int]string)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, r := range pending {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o.Logger.Info().
				Int("index", r.index).
				Int("total", sum.Total).
				Int("n", r.g.Order()).
				Msgf("Processing graph %d / %d", r.index, sum.Total)

			k, err := game.GameChromaticNumber(r.g, o.Game...)
			if err != nil {
				return fmt.Errorf("Run: line %d: %w", r.no, err)
			}

			return w.put(i, fmt.Sprintf("%s %d\n", r.text, k))
		})
	}
	err = g.Wait()
	sum.Solved = w.written()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return sum, err
	}

	o.Logger.Info().
		Int("total", sum.Total).
		Int("solved", sum.Solved).
		Int("skipped", sum.Skipped).
		Msg("batch-finished")

	return sum, nil
}

func readRecords(in io.Reader) ([]record, error) {
	var all []record
	sc := bufio.NewScanner(in)
	for no := 1; sc.Scan(); no++ {
		all = append(all, record{no: no, text: strings.TrimSpace(sc.Text())})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Run: read: %w", err)
	}
	all = lo.Filter(all, func(r record, _ int) bool { return r.text != "" })
	for i := range all {
		all[i].index = i + 1
	}

	return all, nil
}

// orderedWriter emits lines by job index, holding back any that finish early.
type orderedWriter struct {
	mu    sync.Mutex
	w     io.Writer
	next  int
	ready map[int]string
}

func (o *orderedWriter) put(i int, line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.ready[i] = line
	for {
		s, ok := o.ready[o.next]
		if !ok {
			return nil
		}
		delete(o.ready, o.next)
		if _, err := io.WriteString(o.w, s); err != nil {
			return fmt.Errorf("Run: write: %w", err)
		}
		o.next++
	}
}

func (o *orderedWriter) written() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.next
}
