// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// OutputFormats lists the values accepted for output_format.
var OutputFormats = []string{"text", "json", "null"}

var fileSizePattern = regexp.MustCompile(`^[0-9]+[KMG]?$`)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" && !slices.Contains(OutputFormats, cfg.OutputFormat) {
		errs = append(errs, fmt.Sprintf("output_format: unknown format %q (must be one of %s)",
			cfg.OutputFormat, strings.Join(OutputFormats, ", ")))
	}

	if cfg.MaxResults < 0 {
		errs = append(errs, fmt.Sprintf("max_results: must be non-negative, got %d", cfg.MaxResults))
	}

	if cfg.MaxFileSize != "" && !fileSizePattern.MatchString(cfg.MaxFileSize) {
		errs = append(errs, fmt.Sprintf("max_file_size: invalid size %q (e.g. 512K, 20M, 1G)", cfg.MaxFileSize))
	}

	for i, root := range cfg.Roots {
		if strings.TrimSpace(root) == "" {
			errs = append(errs, fmt.Sprintf("roots[%d]: must not be empty", i))
		}
	}

	errs = append(errs, validatePatterns("include", cfg.Include)...)
	errs = append(errs, validatePatterns("exclude", cfg.Exclude)...)

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validatePatterns reports empty or syntactically broken glob patterns.
func validatePatterns(field string, patterns []string) []string {
	var errs []string
	for i, p := range patterns {
		switch {
		case strings.TrimSpace(p) == "":
			errs = append(errs, fmt.Sprintf("%s[%d]: must not be empty", field, i))
		case !doublestar.ValidatePattern(strings.TrimPrefix(p, "!")):
			errs = append(errs, fmt.Sprintf("%s[%d]: invalid glob pattern %q", field, i, p))
		}
	}
	return errs
}
