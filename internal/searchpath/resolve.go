// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package searchpath

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/davetashner/rgscope/internal/testable"
)

// globSuffix is the trailing segment that is stripped from include patterns.
const globSuffix = "**"

// Result is the outcome of resolving include patterns against a set of roots.
type Result struct {
	// Paths are the roots to search. They are the resolved pattern paths when
	// at least one pattern resolved, otherwise the original roots.
	Paths []string

	// Include holds the patterns that did not resolve and must still be
	// passed to the search engine as globs.
	Include []string

	// Resolved maps each resolved pattern to its paths. Never nil.
	Resolved *PatternPaths

	opts SearchOptions
}

// Options returns the search options with Include replaced by the patterns
// that were not converted to search paths.
func (r Result) Options() SearchOptions {
	o := r.opts.clone()
	o.Include = slices.Clone(r.Include)
	return o
}

// Resolver converts include patterns into search paths, checking candidate
// paths for existence through a FileSystem.
type Resolver struct {
	fs testable.FileSystem
}

// New returns a Resolver backed by fsys. A nil fsys uses testable.DefaultFS.
func New(fsys testable.FileSystem) *Resolver {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	return &Resolver{fs: fsys}
}

// Resolve uses a Resolver backed by the real file system.
func Resolve(roots []string, opts *SearchOptions) (Result, error) {
	return New(nil).Resolve(roots, opts)
}

// Resolve determines the paths a search over roots should scan.
//
// Include patterns that reduce to an existing file or directory under any
// root (or to an existing absolute path) become search paths and are dropped
// from the returned include list. If no pattern resolves, the roots are
// returned unchanged. The caller's options are not modified.
func (r *Resolver) Resolve(roots []string, opts *SearchOptions) (Result, error) {
	if opts == nil {
		return Result{Paths: roots, Resolved: NewPatternPaths()}, nil
	}
	if len(opts.Include) == 0 {
		return Result{
			Paths:    roots,
			Include:  slices.Clone(opts.Include),
			Resolved: NewPatternPaths(),
			opts:     opts.clone(),
		}, nil
	}

	resolved, err := r.PatternMap(opts.Include, roots)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Paths:    roots,
		Include:  withoutResolved(opts.Include, resolved),
		Resolved: resolved,
		opts:     opts.clone(),
	}
	if resolved.Len() > 0 {
		res.Paths = resolved.Paths()
	}
	return res, nil
}

// PatternMap resolves every pattern against every root, patterns first.
// Patterns that resolve nowhere are absent from the map.
func (r *Resolver) PatternMap(patterns, roots []string) (*PatternPaths, error) {
	m := NewPatternPaths()
	for _, pattern := range patterns {
		for _, root := range roots {
			found, ok, err := r.ResolvePath(root, pattern)
			if err != nil {
				return nil, err
			}
			if ok {
				m.Add(pattern, found)
			}
		}
	}
	return m, nil
}

// ResolvePath reduces pattern to a single existing path, e.g. "/a/b/**" to
// "/a/b" or "./foo/**" to root/foo. It reports false when the pattern is a
// real glob or the path does not exist. Errors are returned only for stat
// failures other than the path being absent.
func (r *Resolver) ResolvePath(root, pattern string) (string, bool, error) {
	base := StripGlobSuffix(pattern)

	abs := filepath.IsAbs(base)
	if !abs && !IsRelativeToBaseDirectory(base) {
		slog.Debug("include pattern is not a single path", "pattern", pattern)
		return "", false, nil
	}

	target := base
	if !abs {
		target = filepath.Join(root, base)
	}

	ok, err := r.exists(target)
	if err != nil {
		return "", false, fmt.Errorf("resolve include %q: %w", pattern, err)
	}
	if !ok {
		slog.Debug("include path does not exist", "pattern", pattern, "root", root, "path", target)
		return "", false, nil
	}

	slog.Debug("include pattern resolved", "pattern", pattern, "root", root, "path", target)
	return target, true, nil
}

// exists reports whether path names an existing file or directory.
func (r *Resolver) exists(path string) (bool, error) {
	_, err := r.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, err
	}
}

// StripGlobSuffix turns a pattern ending in a "**" segment into its directory
// portion ("/a/b/c/**" becomes "/a/b/c"). Any other pattern is returned as is.
// The directory portion is not cleaned, so "./src/**" keeps its "./" prefix.
func StripGlobSuffix(pattern string) string {
	trimmed := strings.TrimRightFunc(pattern, isSeparator)
	if trimmed == "" {
		return pattern
	}

	i := strings.LastIndexFunc(trimmed, isSeparator)
	if trimmed[i+1:] != globSuffix {
		return pattern
	}
	if i < 0 {
		return ""
	}
	// Keep the separator when it is the root itself ("/**" or `C:\**`).
	if i == len(filepath.VolumeName(trimmed)) {
		return trimmed[:i+1]
	}
	return trimmed[:i]
}

func isSeparator(r rune) bool {
	return r == '/' || (r < 0x80 && os.IsPathSeparator(uint8(r)))
}

// withoutResolved drops every include entry that resolved to a search path.
func withoutResolved(include []string, resolved *PatternPaths) []string {
	kept := make([]string, 0, len(include))
	for _, pattern := range include {
		if !resolved.Has(pattern) {
			kept = append(kept, pattern)
		}
	}
	return kept
}
