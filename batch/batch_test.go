// SPDX-License-Identifier: MIT
// Package: colorgame/batch
//
// batch_test.go — ordered output, resume cache, errors and families.

package batch_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colorgame/batch"
	"github.com/katalvlaran/colorgame/graph6"
)

// corpus holds K2, K3, C4, P4, the 3-star and K4 in graph6.
const corpus = "A_\nBw\n\nCl\nCh\nBg\nC~\n"

const corpusOut = "A_ 2\nBw 3\nCl 3\nCh 3\nBg 2\nC~ 4\n"

func TestRunSequential(t *testing.T) {
	var out bytes.Buffer
	sum, err := batch.Run(context.Background(), strings.NewReader(corpus), &out)
	require.NoError(t, err)
	assert.Equal(t, corpusOut, out.String())
	assert.Equal(t, batch.Summary{Total: 6, Solved: 6, Skipped: 0}, sum)
}

func TestRunWorkersKeepOrder(t *testing.T) {
	for _, w := range []int{0, 2, 4, 16} {
		var out bytes.Buffer
		sum, err := batch.Run(context.Background(), strings.NewReader(corpus), &out, batch.WithWorkers(w))
		require.NoError(t, err, "workers=%d", w)
		assert.Equal(t, corpusOut, out.String(), "workers=%d", w)
		assert.Equal(t, 6, sum.Solved)
	}
}

func TestRunResume(t *testing.T) {
	solved, err := batch.LoadSolved(strings.NewReader("A_ 2\n###\nCl 3\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	sum, err := batch.Run(context.Background(), strings.NewReader(corpus), &out, batch.WithSolved(solved))
	require.NoError(t, err)
	assert.Equal(t, "Bw 3\nCh 3\nBg 2\nC~ 4\n", out.String())
	assert.Equal(t, batch.Summary{Total: 6, Solved: 4, Skipped: 2}, sum)

	// Feeding the full output back skips everything.
	all, err := batch.LoadSolved(strings.NewReader(corpusOut))
	require.NoError(t, err)
	out.Reset()
	sum, err = batch.Run(context.Background(), strings.NewReader(corpus), &out, batch.WithSolved(all))
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, 6, sum.Skipped)
}

func TestRunDecodeError(t *testing.T) {
	var out bytes.Buffer
	_, err := batch.Run(context.Background(), strings.NewReader("A_\nC!\n"), &out)
	require.ErrorIs(t, err, batch.ErrBadGraph)
	require.ErrorIs(t, err, graph6.ErrInvalidByte)
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, out.String(), "decode errors abort before any search")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := batch.Run(ctx, strings.NewReader(corpus), &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunWriteError(t *testing.T) {
	_, err := batch.Run(context.Background(), strings.NewReader("A_\n"), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunProgressLog(t *testing.T) {
	var logs bytes.Buffer
	l := zerolog.New(&logs)
	_, err := batch.Run(context.Background(), strings.NewReader("A_\nBw\n"), &bytes.Buffer{}, batch.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Processing graph 1 / 2")
	assert.Contains(t, logs.String(), "Processing graph 2 / 2")
	assert.Contains(t, logs.String(), "batch-finished")
}

func TestLoadSolvedErrors(t *testing.T) {
	_, err := batch.LoadSolved(strings.NewReader("A_ 2\nBw\n"))
	require.ErrorIs(t, err, batch.ErrMalformedResult)
	assert.Contains(t, err.Error(), "line 2")

	_, err = batch.LoadSolved(strings.NewReader("A_ x\n"))
	require.ErrorIs(t, err, batch.ErrMalformedResult)

	_, err = batch.LoadSolved(strings.NewReader("A_ 0\n"))
	require.ErrorIs(t, err, batch.ErrMalformedResult)
}

func TestFamilies(t *testing.T) {
	assert.Equal(t, []string{"outerplanar", "planar"}, batch.FamilyNames())
	assert.Equal(t, filepath.Join("data", "planar", "planar-n7.dat"), batch.FamilyFile("data", "planar", 7))

	f, err := batch.LookupFamily("outerplanar")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11}, f.Orders())

	p, err := f.File("d", 11)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("d", "outerplanar", "outerplanar-n11.dat"), p)

	_, err = f.File("d", 3)
	require.ErrorIs(t, err, batch.ErrOrderOutOfRange)
	_, err = f.File("d", 12)
	require.ErrorIs(t, err, batch.ErrOrderOutOfRange)

	_, err = batch.LookupFamily("toroidal")
	require.ErrorIs(t, err, batch.ErrUnknownFamily)
	assert.Equal(t, "###", batch.Separator())
}
