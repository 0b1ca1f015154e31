// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package config

import (
	"slices"

	"github.com/davetashner/rgscope/internal/searchpath"
)

// MergeFiles merges global and repo configs. Repo values take precedence.
// Only non-zero repo values override global values; lists replace whole.
func MergeFiles(global, repo *Config) *Config {
	merged := *global

	if len(repo.Roots) > 0 {
		merged.Roots = repo.Roots
	}
	if len(repo.Include) > 0 {
		merged.Include = repo.Include
	}
	if len(repo.Exclude) > 0 {
		merged.Exclude = repo.Exclude
	}
	if repo.MatchCase != nil {
		merged.MatchCase = repo.MatchCase
	}
	if repo.MatchWholeWord != nil {
		merged.MatchWholeWord = repo.MatchWholeWord
	}
	if repo.UseRegExp != nil {
		merged.UseRegExp = repo.UseRegExp
	}
	if repo.IncludeIgnored != nil {
		merged.IncludeIgnored = repo.IncludeIgnored
	}
	if repo.FollowSymlinks != nil {
		merged.FollowSymlinks = repo.FollowSymlinks
	}
	if repo.MaxResults != 0 {
		merged.MaxResults = repo.MaxResults
	}
	if repo.MaxFileSize != "" {
		merged.MaxFileSize = repo.MaxFileSize
	}
	if repo.OutputFormat != "" {
		merged.OutputFormat = repo.OutputFormat
	}

	return &merged
}

// Merge combines file-based config with CLI-provided search options.
// CLI values take precedence; zero-value CLI fields fall through to file config.
func Merge(fileCfg *Config, cli searchpath.SearchOptions) searchpath.SearchOptions {
	result := cli

	// Include/Exclude: CLI wins if any pattern was given.
	if len(result.Include) == 0 && len(fileCfg.Include) > 0 {
		result.Include = slices.Clone(fileCfg.Include)
	}
	if len(result.Exclude) == 0 && len(fileCfg.Exclude) > 0 {
		result.Exclude = slices.Clone(fileCfg.Exclude)
	}

	// Booleans: CLI wins if true, otherwise file config.
	result.MatchCase = result.MatchCase || isTrue(fileCfg.MatchCase)
	result.MatchWholeWord = result.MatchWholeWord || isTrue(fileCfg.MatchWholeWord)
	result.UseRegExp = result.UseRegExp || isTrue(fileCfg.UseRegExp)
	result.IncludeIgnored = result.IncludeIgnored || isTrue(fileCfg.IncludeIgnored)
	result.FollowSymlinks = result.FollowSymlinks || isTrue(fileCfg.FollowSymlinks)

	if result.MaxResults == 0 && fileCfg.MaxResults > 0 {
		result.MaxResults = fileCfg.MaxResults
	}
	if result.MaxFileSize == "" && fileCfg.MaxFileSize != "" {
		result.MaxFileSize = fileCfg.MaxFileSize
	}

	return result
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
