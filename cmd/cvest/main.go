// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cvest reads newline-separated trait observations and reports six
// estimates of their coefficient of variation.
//
// Lines matching one of the --na tokens (by default NA, N/A, NaN,
// null and blank lines) are treated as missing observations and
// removed with a warning. At least 10 observations must remain.
//
// Usage:
//
//	cvest [flags] [file]
//
// With no file, or when file is "-", cvest reads standard input.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
