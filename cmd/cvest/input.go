// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readSample reads one observation per line from r. Lines equal to
// one of the na tokens (ignoring case and surrounding space) become
// NaN, which marks a missing observation.
func readSample(r io.Reader, na []string) ([]float64, error) {
	missing := make(map[string]bool, len(na))
	for _, tok := range na {
		missing[strings.ToLower(strings.TrimSpace(tok))] = true
	}

	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if missing[strings.ToLower(l)] {
			xs = append(xs, math.NaN())
			continue
		}

		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return xs, nil
}
