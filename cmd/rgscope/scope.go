// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/davetashner/rgscope/internal/config"
	"github.com/davetashner/rgscope/internal/searchpath"
)

// scopeFlags holds the flags shared by resolve, args and search.
type scopeFlags struct {
	include        []string
	exclude        []string
	matchCase      bool
	wholeWord      bool
	regexp         bool
	includeIgnored bool
	follow         bool
	maxResults     int
	maxFileSize    string
	noConfig       bool
}

func (f *scopeFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.include, "include", "i", nil, "include glob pattern, e.g. ./src/** or '*.{go,md}' (repeatable)")
	fs.StringArrayVarP(&f.exclude, "exclude", "e", nil, "exclude glob pattern (repeatable)")
	fs.BoolVar(&f.matchCase, "match-case", false, "search case-sensitively")
	fs.BoolVarP(&f.wholeWord, "word", "w", false, "match whole words only")
	fs.BoolVar(&f.regexp, "regexp", false, "treat the query as a regular expression")
	fs.BoolVar(&f.includeIgnored, "no-ignore", false, "search files ignored by .gitignore and friends")
	fs.BoolVarP(&f.follow, "follow", "L", false, "follow symbolic links")
	fs.IntVar(&f.maxResults, "max-results", 0, "cap matches per file (0 = unlimited)")
	fs.StringVar(&f.maxFileSize, "max-filesize", "", "skip files larger than this (e.g. 512K, 20M)")
	fs.BoolVar(&f.noConfig, "no-config", false, "ignore .rgscope.yaml and the global config")
}

// reset restores the zero values. Used by tests between command runs.
func (f *scopeFlags) reset() {
	*f = scopeFlags{}
}

// options returns the search options given on the command line.
func (f *scopeFlags) options() searchpath.SearchOptions {
	return searchpath.SearchOptions{
		Include:        f.include,
		Exclude:        f.exclude,
		MatchCase:      f.matchCase,
		MatchWholeWord: f.wholeWord,
		UseRegExp:      f.regexp,
		IncludeIgnored: f.includeIgnored,
		FollowSymlinks: f.follow,
		MaxResults:     f.maxResults,
		MaxFileSize:    f.maxFileSize,
	}
}

// asConfig expresses the command line as a Config layer so it can be
// validated together with the file layers.
func (f *scopeFlags) asConfig() *config.Config {
	return &config.Config{
		Include:     f.include,
		Exclude:     f.exclude,
		MaxResults:  f.maxResults,
		MaxFileSize: f.maxFileSize,
	}
}

// searchJob is a fully configured resolution request.
type searchJob struct {
	roots  []string
	cfg    *config.Config
	opts   searchpath.SearchOptions
	format string
}

// prepareSearch resolves the roots, loads config and applies the
// command-line flags. Root arguments are checked before any config is read.
// The repo config is read from the first root argument, or from the current
// directory when no roots are given.
func prepareSearch(rootArgs []string, f *scopeFlags) (*searchJob, error) {
	var absRoots []string
	var cfgDir string
	var err error
	if len(rootArgs) > 0 {
		absRoots, err = resolveRoots(rootArgs, "")
		if err != nil {
			return nil, err
		}
		cfgDir = absRoots[0]
	} else {
		cfgDir, err = cmdFS.Abs(".")
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "rgscope: cannot resolve path %q (%v)", ".", err)
		}
	}

	fileCfg := &config.Config{}
	if !f.noConfig {
		fileCfg, err = loadFileConfig(cfgDir)
		if err != nil {
			return nil, err
		}
	}

	if err := config.Validate(config.MergeFiles(fileCfg, f.asConfig())); err != nil {
		return nil, exitError(ExitInvalidArgs, "rgscope: %v", err)
	}

	if absRoots == nil {
		roots, base := []string{"."}, ""
		if len(fileCfg.Roots) > 0 {
			roots, base = fileCfg.Roots, cfgDir
		}
		absRoots, err = resolveRoots(roots, base)
		if err != nil {
			return nil, err
		}
	}

	return &searchJob{
		roots:  absRoots,
		cfg:    fileCfg,
		opts:   config.Merge(fileCfg, f.options()),
		format: fileCfg.OutputFormat,
	}, nil
}

// loadFileConfig returns the global config overlaid with the repo config in dir.
func loadFileConfig(dir string) (*config.Config, error) {
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "rgscope: failed to load global config (%v)", err)
	}
	repoCfg, err := config.Load(dir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "rgscope: failed to load config (%v)", err)
	}
	return config.MergeFiles(globalCfg, repoCfg), nil
}

// resolveRoots makes every root absolute and checks that it is a directory.
// Relative roots are joined to base when base is non-empty.
func resolveRoots(roots []string, base string) ([]string, error) {
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		p := root
		if base != "" && !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		abs, err := cmdFS.Abs(p)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "rgscope: cannot resolve path %q (%v)", root, err)
		}
		info, err := cmdFS.Stat(abs)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "rgscope: path %q does not exist (check the path and try again)", root)
		}
		if !info.IsDir() {
			return nil, exitError(ExitInvalidArgs, "rgscope: %q is not a directory (provide a workspace root)", root)
		}
		out = append(out, abs)
	}
	slog.Debug("search roots", "roots", out)
	return out, nil
}

// resolve runs the path resolver for the job.
func (j *searchJob) resolve() (searchpath.Result, error) {
	res, err := searchpath.New(cmdFS).Resolve(j.roots, &j.opts)
	if err != nil {
		return searchpath.Result{}, exitError(ExitToolFailure, "rgscope: resolve failed (%v)", err)
	}
	slog.Debug("resolved search paths",
		"paths", len(res.Paths), "resolved_patterns", res.Resolved.Len(), "remaining_include", len(res.Include))
	return res, nil
}
