// SPDX-License-Identifier: MIT
// Package: colorgame/batch
//
// solved.go — the cache of previously written results.

package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Solved maps a graph6 line to its game chromatic number.
type Solved map[string]int

// Has reports whether line already has a result.
func (s Solved) Has(line string) bool {
	_, ok := s[line]

	return ok
}

// LoadSolved parses "<graph6> <k>" lines as written by Run. Blank lines and
// "###" family separators are ignored; a later line for the same graph wins.
//
// Errors: ErrMalformedResult (with the 1-based line number), or a read error.
func LoadSolved(r io.Reader) (Solved, error) {
	out := make(Solved)
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == separator {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("LoadSolved: line %d: %q: %w", no, line, ErrMalformedResult)
		}
		k, err := strconv.Atoi(fields[1])
		if err != nil || k < 1 {
			return nil, fmt.Errorf("LoadSolved: line %d: k=%q: %w", no, fields[1], ErrMalformedResult)
		}
		out[fields[0]] = k
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadSolved: %w", err)
	}

	return out, nil
}
