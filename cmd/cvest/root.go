// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cvstat/go-cvstat/stats"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cvest [file]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Estimate the coefficient of variation of a sample",
		Long: `cvest reads one observation per line from file, or standard input,
and reports six estimators of the coefficient of variation: the naive
sd/mean (CV1), its normal-theory correction (CV2), two distribution-free
bias-corrected estimators (CV3, CV4) and two composites (CV5, CV6).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEstimate,
	}
	addFlags(cmd.Flags())
	return cmd
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	xs, err := readSample(in, cfg.NA)
	if err != nil {
		return err
	}
	logger.Debug().Int("values", len(xs)).Msg("read sample")

	r, err := stats.CVEstimator{Logger: logger}.Estimate(xs)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), cfg.Format, r)
}
