// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/rgscope/internal/ripgrep"
)

// Args-specific flag values.
var (
	argsFlags scopeFlags
	argsJSON  bool
	argsPlain bool
)

// argsCmd prints the ripgrep argument list without running it.
var argsCmd = &cobra.Command{
	Use:   "args <query> [root...]",
	Short: "Print the ripgrep arguments for a search",
	Long: `Resolve include patterns and print the ripgrep argument list that a search
for <query> would use, one argument per line.

By default the arguments request ripgrep's JSON event stream (--json). Use
--plain to request grep-style lines instead.

Examples:
  rgscope args TODO -i './src/**'
  rgscope args --json 'func main' -i '*.go' .`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArgs,
}

func init() {
	argsFlags.register(argsCmd.Flags())
	argsCmd.Flags().BoolVar(&argsJSON, "json", false, "print the arguments as a JSON document")
	argsCmd.Flags().BoolVar(&argsPlain, "plain", false, "build arguments for plain-text ripgrep output")
}

func runArgs(cmd *cobra.Command, args []string) error {
	query, rootArgs := args[0], args[1:]

	job, err := prepareSearch(rootArgs, &argsFlags)
	if err != nil {
		return err
	}
	res, err := job.resolve()
	if err != nil {
		return err
	}

	mode := ripgrep.ModeJSON
	if argsPlain {
		mode = ripgrep.ModePlain
	}
	rgArgs := ripgrep.FromResult(mode, query, res)

	w := cmd.OutOrStdout()
	if argsJSON {
		data, err := json.MarshalIndent(struct {
			Args []string `json:"args"`
		}{Args: rgArgs}, "", "  ")
		if err != nil {
			return exitError(ExitToolFailure, "rgscope: formatting failed (%v)", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
		return nil
	}
	for _, a := range rgArgs {
		_, _ = fmt.Fprintln(w, a)
	}
	return nil
}
