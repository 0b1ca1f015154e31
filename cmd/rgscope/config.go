// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/rgscope/internal/config"
)

// Config command flags.
var (
	configGlobal bool
	configForce  bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify rgscope configuration",
	Long: `View and modify rgscope configuration.

rgscope reads configuration from .rgscope.yaml (or .rgscope.toml) in the
first workspace root. A global config at ~/.config/rgscope/config.yaml
provides defaults. Repo-level settings override global settings, and
command-line flags override both.

Note: config set does a YAML round-trip and will not preserve comments.
If you need to keep comments, edit the file directly.`,
}

// configGetCmd retrieves a configuration value by key.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by key.

Examples:
  rgscope config get include
  rgscope config get max_file_size
  rgscope config get --global output_format`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

List keys (roots, include, exclude) take a comma-separated value; commas
inside {} brace groups do not split. Other
values are auto-detected as bool, int, or string.
By default, writes to the repo config in the current directory: .rgscope.yaml,
or .rgscope.toml when only that file exists.
Use --global to write to ~/.config/rgscope/config.yaml.

Examples:
  rgscope config set include './src/**,*.{go,md}'
  rgscope config set match_case true
  rgscope config set max_results 50
  rgscope config set --global output_format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List all configuration values with their source annotation.

Shows every set configuration value, annotated with whether it comes
from the repo config (.rgscope.yaml) or global config
(~/.config/rgscope/config.yaml). Repo values override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

// configValidateCmd checks a config file.
var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file and report every problem found.

Without an argument, the repo config in the current directory is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

// configInitCmd writes a starter config.
var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter .rgscope.yaml",
	Long: `Write a commented starter .rgscope.yaml into dir (default: current directory).

Existing files are left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/rgscope/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/rgscope/config.yaml)")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing .rgscope.yaml")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	configForce = false
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd, configInitCmd} {
		for _, name := range []string{"global", "force"} {
			if f := c.Flags().Lookup(name); f != nil {
				_ = f.Value.Set("false")
				f.Changed = false
			}
		}
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = loadFileConfig(".")
	}
	if err != nil {
		return err
	}

	val, err := config.GetValue(cfg, key)
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, rawValue := args[0], args[1]

	if err := config.ValidateKeyPath(key); err != nil {
		return err
	}

	targetPath := config.RepoFilePath(".")
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, key, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip validate before writing.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}

	globalMap, err := config.ToMap(globalCfg)
	if err != nil {
		return err
	}
	repoMap, err := config.ToMap(repoCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range repoMap {
		seen[k] = entry{value: v, source: "repo"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'rgscope config init' to create a config, or 'rgscope config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	repoColor := color.New(color.FgGreen)

	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source, globalColor, repoColor))
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	name := config.FileName
	if len(args) > 0 {
		name = args[0]
		cfg, err = config.LoadFile(name)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return exitError(ExitInvalidArgs, "rgscope: cannot read config %q (%v)", name, err)
	}

	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, "rgscope: %v", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
	return nil
}

// starterConfig is written by config init.
const starterConfig = `# rgscope configuration.
# Command-line flags override these values.

# Include patterns. Patterns naming one directory or file (./src/**,
# ./README.md, /abs/dir/**) become search paths; anything else is passed
# to ripgrep as --glob.
include: []

# Exclude patterns, passed to ripgrep as --glob=!<pattern>.
exclude:
  - "**/node_modules/**"
  - "**/vendor/**"

# match_case: false
# match_whole_word: false
# use_regexp: false
# include_ignored: false
# follow_symlinks: false
# max_results: 0
max_file_size: 20M

# Output format for 'rgscope resolve' (text, json, null).
output_format: text
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := cmdFS.Abs(dir)
	if err != nil {
		return exitError(ExitInvalidArgs, "rgscope: cannot resolve path %q (%v)", dir, err)
	}
	info, err := cmdFS.Stat(absDir)
	if err != nil {
		return exitError(ExitInvalidArgs, "rgscope: path %q does not exist", dir)
	}
	if !info.IsDir() {
		return exitError(ExitInvalidArgs, "rgscope: %q is not a directory", dir)
	}

	target := filepath.Join(absDir, config.FileName)
	w := cmd.OutOrStdout()
	dim := color.New(color.Faint)

	if _, err := cmdFS.Stat(target); err == nil && !configForce {
		_, _ = fmt.Fprintf(w, "%s%s %s\n", dim.Sprint("  - "), config.FileName, dim.Sprint("(exists, use --force to overwrite)"))
		return nil
	}

	if err := cmdFS.WriteFile(target, []byte(starterConfig), 0o600); err != nil {
		return exitError(ExitToolFailure, "rgscope: cannot write %s (%v)", target, err)
	}
	_, _ = fmt.Fprintf(w, "%s%s %s\n", color.New(color.FgGreen).Sprint("  + "), config.FileName, dim.Sprint("(created)"))
	return nil
}

// printValue outputs a value: scalars as plain text, lists as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// formatSource returns a colorized source annotation.
func formatSource(source string, globalColor, repoColor *color.Color) string {
	switch source {
	case "global":
		return globalColor.Sprintf("(global)")
	case "repo":
		return repoColor.Sprintf("(repo)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}
