// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats estimates the coefficient of variation of a sample.
//
// Alongside the naive estimator sd/mean, it computes normal-theory and
// distribution-free bias-corrected estimators and two composites of
// them. See CVEstimator.
package stats // import "github.com/cvstat/go-cvstat/stats"

import "math"

var nan = math.NaN()
