// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davetashner/rgscope/internal/ripgrep"
)

// Search-specific flag values.
var (
	searchFlags  scopeFlags
	searchJSON   bool
	searchRgPath string
)

// searchCmd resolves include patterns and runs ripgrep.
var searchCmd = &cobra.Command{
	Use:   "search <query> [root...]",
	Short: "Search with ripgrep over the resolved paths",
	Long: `Resolve include patterns against the roots and run ripgrep, streaming its
output. Exits 0 when something matched, 2 when nothing matched, and 3 when
ripgrep is missing or fails.

Examples:
  rgscope search TODO -i './src/**'
  rgscope search --regexp 'func \w+Handler' -i './internal/**' -i '*.go'
  rgscope search --json needle . | jq .`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchFlags.register(searchCmd.Flags())
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit ripgrep's JSON event stream")
	searchCmd.Flags().StringVar(&searchRgPath, "rg-path", "", "ripgrep binary to run (default: rg on PATH)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, rootArgs := args[0], args[1:]

	job, err := prepareSearch(rootArgs, &searchFlags)
	if err != nil {
		return err
	}
	res, err := job.resolve()
	if err != nil {
		return err
	}

	mode := ripgrep.ModePlain
	if searchJSON {
		mode = ripgrep.ModeJSON
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := &ripgrep.Runner{Exec: cmdExec, Binary: searchRgPath}
	err = runner.Run(ctx, ripgrep.FromResult(mode, query, res), cmd.OutOrStdout(), cmd.ErrOrStderr())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ripgrep.ErrNoMatches):
		slog.Debug("no matches", "query", query)
		return exitError(ExitNoMatches, "")
	case errors.Is(err, ripgrep.ErrNotFound):
		return exitError(ExitToolFailure, "rgscope: %v (install ripgrep or pass --rg-path)", err)
	default:
		return exitError(ExitToolFailure, "rgscope: search failed (%v)", err)
	}
}
