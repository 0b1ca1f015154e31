// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

// Package config handles .rgscope.yaml (and .rgscope.toml) configuration files.
package config

// Config represents the contents of a .rgscope.yaml file.
type Config struct {
	// Roots are the workspace roots to search. Relative entries are resolved
	// against the directory holding the config file.
	Roots []string `yaml:"roots,omitempty" toml:"roots,omitempty"`

	Include []string `yaml:"include,omitempty" toml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	MatchCase      *bool `yaml:"match_case,omitempty" toml:"match_case,omitempty"`
	MatchWholeWord *bool `yaml:"match_whole_word,omitempty" toml:"match_whole_word,omitempty"`
	UseRegExp      *bool `yaml:"use_regexp,omitempty" toml:"use_regexp,omitempty"`
	IncludeIgnored *bool `yaml:"include_ignored,omitempty" toml:"include_ignored,omitempty"`
	FollowSymlinks *bool `yaml:"follow_symlinks,omitempty" toml:"follow_symlinks,omitempty"`

	MaxResults  int    `yaml:"max_results,omitempty" toml:"max_results,omitempty"`
	MaxFileSize string `yaml:"max_file_size,omitempty" toml:"max_file_size,omitempty"`

	OutputFormat string `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
}

// FileName is the expected config file name in a workspace root.
const FileName = ".rgscope.yaml"

// TOMLFileName is the alternative config file name. It is read only when
// FileName is absent.
const TOMLFileName = ".rgscope.toml"
