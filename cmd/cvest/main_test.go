// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cvstat/go-cvstat/stats"
)

const sampleInput = "2\n4\n4\n4\n5\n5\n7\n9\n10\n12\n"

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestReadSample(t *testing.T) {
	xs, err := readSample(strings.NewReader(" 1.5\nNA\n\n-2\nn/a\n3e2\nnull\n"), defaultNA)
	require.NoError(t, err)
	require.Len(t, xs, 7)
	assert.Equal(t, 1.5, xs[0])
	assert.Equal(t, -2.0, xs[3])
	assert.Equal(t, 300.0, xs[5])
	for _, i := range []int{1, 2, 4, 6} {
		assert.True(t, math.IsNaN(xs[i]), "line %d", i+1)
	}

	_, err = readSample(strings.NewReader("1\n2\nabc\n"), defaultNA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	// Blank lines are values unless the empty token is listed.
	_, err = readSample(strings.NewReader("1\n\n"), []string{"NA"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunText(t *testing.T) {
	stdout, _, err := run(t, sampleInput)
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, "N 10  missing 0  mean 6.2  std dev 3.19026", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "     CV1 0.514559", lines[2])
	for i, name := range stats.EstimateNames {
		assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2+i]), name+" "), "line %q", lines[2+i])
	}
}

func TestRunJSON(t *testing.T) {
	stdout, _, err := run(t, "1\n1\n1\n1\n1\n1\n1\n1\n1\n1\n", "--format", "json")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 10, rep.N)
	require.NotNil(t, rep.Mean)
	assert.Equal(t, 1.0, *rep.Mean)
	require.Len(t, rep.Estimates, 6)
	for i, e := range rep.Estimates {
		assert.Equal(t, stats.EstimateNames[i], e.Name)
		if i < 2 {
			require.NotNil(t, e.Value, e.Name)
			assert.Zero(t, *e.Value)
		} else {
			assert.Nil(t, e.Value, "%s should be null", e.Name)
		}
	}
}

func TestRunYAMLFromEnv(t *testing.T) {
	t.Setenv("CVEST_FORMAT", "YAML")

	stdout, _, err := run(t, sampleInput)
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 10, rep.N)
	require.Len(t, rep.Estimates, 6)
	require.NotNil(t, rep.Estimates[0].Value)
	assert.InDelta(t, 0.5145585425378666, *rep.Estimates[0].Value, 1e-12)

	// An explicit flag wins over the environment.
	stdout, _, err = run(t, sampleInput, "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "N 10"))
}

func TestRunMissing(t *testing.T) {
	input := "2\n4\nNA\n4\n4\n5\n5\n7\n\n9\n10\n12\n"
	stdout, stderr, err := run(t, input, "--log-format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "N 10  missing 2"))
	assert.Equal(t, 1, strings.Count(stderr, "removed missing values from sample"))
	assert.Contains(t, stderr, `"missing":2`)

	// A custom token list.
	_, _, err = run(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n-\n", "--na", "-")
	require.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	_, _, err := run(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n")
	require.ErrorIs(t, err, stats.ErrSampleTooSmall)

	_, _, err = run(t, "1\nNA\n2\n3\n4\n5\n6\n7\n8\n9\n")
	require.ErrorIs(t, err, stats.ErrSampleTooSmall)

	_, _, err = run(t, sampleInput, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, _, err = run(t, sampleInput, "--log-level", "loud")
	require.Error(t, err)

	_, _, err = run(t, sampleInput, filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trait.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

	stdout, _, err := run(t, "", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "N 10  missing 0"))

	stdout, _, err = run(t, sampleInput, "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "N 10  missing 0"))
}
