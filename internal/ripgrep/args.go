// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

// Package ripgrep builds and runs ripgrep invocations for resolved search
// paths. Include patterns that were not converted to search paths are passed
// through as --glob arguments.
package ripgrep

import (
	"strconv"
	"strings"

	"github.com/davetashner/rgscope/internal/searchpath"
)

// DefaultMaxFileSize is passed to --max-filesize when the options leave it empty.
const DefaultMaxFileSize = "20M"

// Mode selects the output shape requested from ripgrep.
type Mode int

const (
	// ModeJSON asks for ripgrep's JSON Lines event stream.
	ModeJSON Mode = iota
	// ModePlain asks for human-readable grep-style lines.
	ModePlain
)

// Args builds the ripgrep argument list, excluding the binary name.
func Args(mode Mode, query string, opts searchpath.SearchOptions, paths []string) []string {
	args := []string{"--hidden"}
	switch mode {
	case ModePlain:
		args = append(args, "--line-number", "--color=never")
	default:
		args = append(args, "--json")
	}

	if opts.FollowSymlinks {
		args = append(args, "--follow")
	}
	if opts.IncludeIgnored {
		args = append(args, "--no-ignore")
	}

	maxSize := strings.TrimSpace(opts.MaxFileSize)
	if maxSize == "" {
		maxSize = DefaultMaxFileSize
	}
	args = append(args, "--max-filesize="+maxSize)

	if opts.MatchCase {
		args = append(args, "--case-sensitive")
	} else {
		args = append(args, "--ignore-case")
	}
	if opts.MatchWholeWord {
		args = append(args, "--word-regexp")
	}
	if !opts.UseRegExp {
		args = append(args, "--fixed-strings")
	}
	if opts.MaxResults > 0 {
		args = append(args, "--max-count="+strconv.Itoa(opts.MaxResults))
	}

	for _, p := range opts.Include {
		args = append(args, "--glob="+p)
	}
	for _, p := range opts.Exclude {
		args = append(args, "--glob="+negate(p))
	}

	args = append(args, "--", query)
	return append(args, paths...)
}

// FromResult builds the argument list for a resolved search.
func FromResult(mode Mode, query string, res searchpath.Result) []string {
	return Args(mode, query, res.Options(), res.Paths)
}

// negate prefixes an exclude glob with "!" unless it already has one.
func negate(pattern string) string {
	if strings.HasPrefix(pattern, "!") {
		return pattern
	}
	return "!" + pattern
}
