// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/rgscope/internal/searchpath"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestTextFormatter_OnePathPerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextFormatter{}).Format(sampleResult(), &buf))
	assert.Equal(t, "/repo/src\n/other/src\n", buf.String())
}

func TestTextFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextFormatter{}).Format(searchpath.Result{}, &buf))
	assert.Empty(t, buf.String())
}

func TestExplain_ResolvedAndRetained(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	require.NoError(t, Explain(sampleResult(), &buf))

	assert.Equal(t, `Resolved patterns:
  ./src/**
    -> /repo/src
    -> /other/src
Passed to ripgrep as globs:
  *.go
`, buf.String())
}

func TestExplain_NothingResolved(t *testing.T) {
	disableColor(t)

	res := searchpath.Result{Paths: []string{"/repo"}, Include: []string{"*.ts"}}

	var buf bytes.Buffer
	require.NoError(t, Explain(res, &buf))

	assert.Contains(t, buf.String(), "No include pattern resolved")
	assert.Contains(t, buf.String(), "  *.ts\n")
}

func TestExplain_ColorsPatterns(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	require.NoError(t, Explain(sampleResult(), &buf))

	assert.Contains(t, buf.String(), "\x1b[32m./src/**")
	assert.Contains(t, buf.String(), "\x1b[33m*.go")
}
