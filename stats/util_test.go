// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func naneq(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// normalSample returns n draws from N(mu, sigma²) using a fixed seed.
func normalSample(n int, mu, sigma float64, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = mu + sigma*r.NormFloat64()
	}
	return xs
}
