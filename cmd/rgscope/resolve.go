// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/rgscope/internal/output"
)

// Resolve-specific flag values.
var (
	resolveFlags   scopeFlags
	resolveFormat  string
	resolveExplain bool
)

// resolveCmd prints the search paths for a set of roots and include patterns.
var resolveCmd = &cobra.Command{
	Use:   "resolve [root...]",
	Short: "Print the search paths for the given include patterns",
	Long: `Resolve include patterns against workspace roots and print the paths a
search should scan. Patterns like ./src/** or /abs/dir/** that name an
existing file or directory become search paths. Anything else stays a glob.

When no pattern resolves, the roots themselves are printed.

Examples:
  rgscope resolve -i './src/**'
  rgscope resolve -i './internal/**' -i '*.go' -f json . ../other
  rgscope resolve -i './docs/**' -f null | xargs -0 ls`,
	Args: cobra.ArbitraryArgs,
	RunE: runResolve,
}

func init() {
	resolveFlags.register(resolveCmd.Flags())
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "", "output format (text, json, null)")
	resolveCmd.Flags().BoolVar(&resolveExplain, "explain", false, "print which patterns resolved to which paths (stderr)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	job, err := prepareSearch(args, &resolveFlags)
	if err != nil {
		return err
	}

	formatName := resolveFormat
	if formatName == "" {
		formatName = job.format
	}
	if formatName == "" {
		formatName = "text"
	}
	formatter, err := output.GetFormatter(formatName)
	if err != nil {
		return exitError(ExitInvalidArgs, "rgscope: %v", err)
	}

	res, err := job.resolve()
	if err != nil {
		return err
	}

	if err := formatter.Format(res, cmd.OutOrStdout()); err != nil {
		return exitError(ExitToolFailure, "rgscope: formatting failed (%v)", err)
	}
	if resolveExplain || verbose {
		if err := output.Explain(res, cmd.ErrOrStderr()); err != nil {
			return exitError(ExitToolFailure, "rgscope: formatting failed (%v)", err)
		}
	}
	return nil
}
