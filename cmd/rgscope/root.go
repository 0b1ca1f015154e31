// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	rglog "github.com/davetashner/rgscope/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for rgscope.
var rootCmd = &cobra.Command{
	Use:   "rgscope",
	Short: "Narrow ripgrep searches to the paths your include patterns name",
	Long: `rgscope turns include patterns that name one concrete file or directory
(./src/**, /abs/dir/**, ./README.md) into ripgrep search paths. Patterns that
are real globs stay in the include list and are passed to ripgrep as --glob.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		rglog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(argsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
