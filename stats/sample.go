// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observations of a single trait.
//
// A NaN in Xs marks a missing observation. Most methods assume the
// sample has been cleaned of missing observations; use Clean to get
// such a sample.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Missing returns the number of missing observations in s.
func (s Sample) Missing() int {
	return floats.Count(math.IsNaN, s.Xs)
}

// Clean returns a copy of s with all missing observations removed,
// along with the number of observations that were removed. s itself
// is not modified.
func (s Sample) Clean() (Sample, int) {
	xs := make([]float64, 0, len(s.Xs))
	for _, x := range s.Xs {
		if !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	return Sample{Xs: xs, Sorted: s.Sorted}, len(s.Xs) - len(xs)
}

// Weight returns the number of observations in s.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Bounds returns the minimum and maximum values of s. If s is empty,
// both are NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Mean returns the arithmetic mean of s.
func (s Sample) Mean() float64 {
	return stat.Mean(s.Xs, nil)
}

// Variance returns the sample variance of s, using Bessel's
// correction (an N-1 divisor).
func (s Sample) Variance() float64 {
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the sample standard deviation of s.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Moment returns the k'th central moment of s, Σ(x - mean)ᵏ / N.
func (s Sample) Moment(k float64) float64 {
	return stat.Moment(k, s.Xs, nil)
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}
