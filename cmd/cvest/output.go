// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/cvstat/go-cvstat/stats"
)

// report is the serialized form of a stats.CVResult. Non-finite
// values are encoded as null.
type report struct {
	N         int              `json:"n" yaml:"n"`
	Missing   int              `json:"missing" yaml:"missing"`
	Mean      *float64         `json:"mean" yaml:"mean"`
	StdDev    *float64         `json:"std_dev" yaml:"std_dev"`
	Estimates []reportEstimate `json:"estimates" yaml:"estimates"`
}

type reportEstimate struct {
	Name  string   `json:"name" yaml:"name"`
	Value *float64 `json:"value" yaml:"value"`
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func newReport(r *stats.CVResult) report {
	rep := report{
		N:       r.N,
		Missing: r.Missing,
		Mean:    finite(r.Mean),
		StdDev:  finite(r.StdDev),
	}
	for _, e := range r.Estimates() {
		rep.Estimates = append(rep.Estimates, reportEstimate{e.Name, finite(e.Value)})
	}
	return rep
}

// writeResult writes r to w in the given format.
func writeResult(w io.Writer, format string, r *stats.CVResult) error {
	switch format {
	case formatText:
		return writeText(w, r)

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(r))

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(r)); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

func writeText(w io.Writer, r *stats.CVResult) error {
	if _, err := fmt.Fprintf(w, "N %d  missing %d  mean %.6g  std dev %.6g\n\n", r.N, r.Missing, r.Mean, r.StdDev); err != nil {
		return err
	}
	for _, e := range r.Estimates() {
		if _, err := fmt.Fprintf(w, "%8s %.6g\n", e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}
