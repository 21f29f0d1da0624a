// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// CVMinSampleSize is the smallest number of non-missing observations
// for which the coefficient of variation estimators are computed.
// Below this the bias-correction terms are unreliable.
const CVMinSampleSize = 10

// ErrSampleTooSmall is returned when a sample has fewer than
// CVMinSampleSize non-missing observations.
var ErrSampleTooSmall = errors.New("sample too small")

// EstimateNames lists the labels of the coefficient of variation
// estimators in the order they are reported.
var EstimateNames = [...]string{"CV1", "CV2", "CV3", "CV4", "CV5", "CV6"}

// A CVResult holds the coefficient of variation estimates of a
// sample along with the moments they were derived from.
//
// Degenerate samples do not produce an error. Instead, the affected
// estimates are NaN or ±Inf and the rest remain valid. In
// particular, if all values are equal, CV1 and CV2 are 0 and CV3
// through CV6 are NaN; if the mean is 0, the estimates divide by zero.
type CVResult struct {
	// N is the number of observations used, after missing
	// observations were removed.
	N int

	// Missing is the number of missing observations removed from
	// the input.
	Missing int

	// Mean and StdDev are the sample mean and the sample standard
	// deviation (with an N-1 divisor).
	Mean, StdDev float64

	// Skewness and Kurtosis are the third and fourth standardized
	// moments, (1/N)·Σ((x-mean)/StdDev)³ and (1/N)·Σ((x-mean)/StdDev)⁴.
	// Kurtosis is not corrected by subtracting 3. Both are NaN if
	// StdDev is 0.
	Skewness, Kurtosis float64

	// CV1 is the naive estimator StdDev/Mean.
	CV1 float64

	// CV2 is CV1 with the normal-theory bias correction
	// (1 + 1/(4N)).
	CV2 float64

	// CV3 is the distribution-free bias-corrected estimator of the
	// squared coefficient of variation, returned as its square
	// root. It is NaN if the corrected square is negative.
	CV3 float64

	// CV4 is the distribution-free bias-corrected estimator of the
	// coefficient of variation itself.
	CV4 float64

	// CV5 is the mean of CV3 and CV4.
	CV5 float64

	// CV6 is the mean of CV2 and CV4.
	CV6 float64
}

// An Estimate is a single named coefficient of variation estimate.
type Estimate struct {
	Name  string
	Value float64
}

// Estimates returns the six estimates of r labeled CV1 through CV6,
// in that order.
func (r *CVResult) Estimates() []Estimate {
	vals := [len(EstimateNames)]float64{r.CV1, r.CV2, r.CV3, r.CV4, r.CV5, r.CV6}
	es := make([]Estimate, len(EstimateNames))
	for i, name := range EstimateNames {
		es[i] = Estimate{name, vals[i]}
	}
	return es
}

// Lookup returns the estimate labeled name.
func (r *CVResult) Lookup(name string) (float64, bool) {
	for _, e := range r.Estimates() {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// CVEstimator computes coefficient of variation estimates. The zero
// value is ready to use and is safe for concurrent use.
type CVEstimator struct {
	// Logger receives a warning when missing observations are
	// removed from a sample. The zero Logger discards it.
	Logger zerolog.Logger
}

// CV computes the coefficient of variation estimates of xs using a
// zero CVEstimator. See CVEstimator.Estimate.
func CV(xs []float64) (*CVResult, error) {
	return CVEstimator{}.Estimate(xs)
}

// Estimate computes six estimators of the coefficient of variation
// of the sample xs. NaN values in xs mark missing observations; they
// are removed (with a warning to e.Logger) before anything else is
// computed. xs is not modified.
//
// With ȳ the mean, s² the sample variance, N the number of
// observations, cv₂ = s²/ȳ², cv₁ = √cv₂ and γ₁, γ₂ the standardized
// skewness and kurtosis, the estimators are
//
//	CV1 = s/ȳ
//	CV2 = (1 + 1/(4N))·CV1
//	CV3 = √(cv₂ - cv₂^1.5/N·(3cv₁ - 2γ₁))
//	CV4 = cv₁ - (cv₁³/N - cv₁/(4N) - cv₁²γ₁/(2N) - cv₁γ₂/(8N))
//	CV5 = (CV3 + CV4)/2
//	CV6 = (CV2 + CV4)/2
//
// Note that CV1 and CV2 carry the sign of the mean while cv₁ does
// not.
//
// This fails with an error wrapping ErrSampleTooSmall if fewer than
// CVMinSampleSize observations remain after cleaning.
func (e CVEstimator) Estimate(xs []float64) (*CVResult, error) {
	s, missing := Sample{Xs: xs}.Clean()
	if missing > 0 {
		e.Logger.Warn().
			Int("missing", missing).
			Int("n", len(s.Xs)).
			Msg("removed missing values from sample")
	}

	n := len(s.Xs)
	if n < CVMinSampleSize {
		return nil, fmt.Errorf("%w: %d observations, need at least %d", ErrSampleTooSmall, n, CVMinSampleSize)
	}

	// Summing in sorted order makes the result independent of
	// the order of xs.
	s.Sort()

	mean, variance := s.Mean(), s.Variance()
	if lo, hi := s.Bounds(); lo == hi {
		// Round-off in the mean would otherwise leave a tiny
		// nonzero variance.
		mean, variance = lo, 0
	}
	sd := math.Sqrt(variance)

	// The standardized moments are 0/0 without spread.
	skew, kurt := nan, nan
	if variance > 0 {
		skew = s.Moment(3) / (variance * sd)
		kurt = s.Moment(4) / (variance * variance)
	}

	N := float64(n)
	cv2 := variance / (mean * mean)
	cv1 := math.Sqrt(cv2)
	bias := math.Pow(cv2, 1.5) / N * (3*cv1 - 2*skew)
	bias2 := cv1*cv1*cv1/N - cv1/(4*N) - cv1*cv1*skew/(2*N) - cv1*kurt/(8*N)

	r := &CVResult{
		N:        n,
		Missing:  missing,
		Mean:     mean,
		StdDev:   sd,
		Skewness: skew,
		Kurtosis: kurt,
	}
	r.CV1 = sd / mean
	r.CV2 = (1 + 1/(4*N)) * r.CV1
	r.CV3 = math.Sqrt(cv2 - bias)
	r.CV4 = cv1 - bias2
	r.CV5 = (r.CV3 + r.CV4) / 2
	r.CV6 = (r.CV2 + r.CV4) / 2
	return r, nil
}
