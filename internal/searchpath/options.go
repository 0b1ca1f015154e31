// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

// Package searchpath reduces include glob patterns to concrete search paths.
//
// A pattern like "./src/**" or "/abs/dir/**" names a single directory once its
// trailing "**" segment is stripped. When that directory (or file) exists, it
// can replace the workspace roots as a search root, and the pattern no longer
// needs to be passed to the search engine as a glob. Every other pattern is
// left for the engine to interpret.
package searchpath

import "slices"

// SearchOptions holds the options handed to the downstream search engine.
type SearchOptions struct {
	// Include narrows the search to files matching these globs. Nil means
	// no include filter was given.
	Include []string

	// Exclude skips files matching these globs.
	Exclude []string

	MatchCase      bool
	MatchWholeWord bool
	UseRegExp      bool

	// IncludeIgnored searches files normally skipped by .gitignore rules.
	IncludeIgnored bool

	FollowSymlinks bool

	// MaxResults caps matches per file (0 = unlimited).
	MaxResults int

	// MaxFileSize skips files larger than this size (e.g. "20M"). Empty uses
	// the engine default.
	MaxFileSize string
}

// clone returns a copy of o that shares no slices with it.
func (o SearchOptions) clone() SearchOptions {
	c := o
	c.Include = slices.Clone(o.Include)
	c.Exclude = slices.Clone(o.Exclude)
	return c
}
