// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/rgscope/internal/config"
	"github.com/davetashner/rgscope/internal/testable"
)

func TestConfigSubcommands_AreRegistered(t *testing.T) {
	subs := map[string]bool{}
	for _, cmd := range configCmd.Commands() {
		subs[cmd.Name()] = true
	}
	for _, name := range []string{"get", "set", "list", "validate", "init"} {
		assert.True(t, subs[name], "%s subcommand should be registered", name)
	}
}

func TestConfigGet_TopLevel(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "output_format: json\n")
	chdir(t, dir)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "output_format"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "json\n", stdout.String())
}

func TestConfigGet_List(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "include:\n  - ./src/**\n  - '*.go'\n")
	chdir(t, dir)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "include"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "- ./src/**")
	assert.Contains(t, stdout.String(), "*.go")
}

func TestConfigGet_NotSet(t *testing.T) {
	chdir(t, t.TempDir())

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "output_format"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	chdir(t, t.TempDir())

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "get", "bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestConfigGet_Global(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, stdout, _ := newTestCmd(t)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeTestFile(t, xdg, "rgscope/config.yaml", "match_case: true\n")

	cmd.SetArgs([]string{"config", "get", "--global", "match_case"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "true\n", stdout.String())
}

func TestConfigGet_RepoOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "max_results: 7\n")
	chdir(t, dir)
	cmd, stdout, _ := newTestCmd(t)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeTestFile(t, xdg, "rgscope/config.yaml", "max_results: 3\n")

	cmd.SetArgs([]string{"config", "get", "max_results"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "7\n", stdout.String())
}

func TestConfigSet_Simple(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "output_format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Set output_format = json")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestConfigSet_ListValue(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "include", "./src/**, *.go"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"./src/**", "*.go"}, cfg.Include)
}

func TestConfigSet_PreservesOtherKeys(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "exclude:\n  - vendor/**\n")
	chdir(t, dir)

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "match_case", "true"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
	require.NotNil(t, cfg.MatchCase)
	assert.True(t, *cfg.MatchCase)
}

func TestConfigSet_InvalidValue(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "output_format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")

	_, statErr := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "invalid value must not be written")
}

func TestConfigSet_DottedKey(t *testing.T) {
	chdir(t, t.TempDir())

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "include.first", "x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use sub-keys")
}

func TestConfigSet_Global(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, _, _ := newTestCmd(t)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cmd.SetArgs([]string{"config", "set", "--global", "max_file_size", "5M"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "5M", cfg.MaxFileSize)
}

func TestConfigList_Empty(t *testing.T) {
	chdir(t, t.TempDir())

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "list"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "No configuration set.")
}

func TestConfigList_Sources(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "output_format: json\n")
	chdir(t, dir)
	cmd, stdout, _ := newTestCmd(t)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeTestFile(t, xdg, "rgscope/config.yaml", "max_results: 3\noutput_format: text\n")

	cmd.SetArgs([]string{"config", "list"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "max_results = 3 (global)")
	assert.Contains(t, out, "output_format = json (repo)")
}

func TestConfigValidate_OK(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "include:\n  - ./src/**\nmax_file_size: 20M\n")
	chdir(t, dir)

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "validate"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "OK")
}

func TestConfigValidate_ReportsAllErrors(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "custom.yaml", "output_format: xml\nmax_file_size: lots\ninclude:\n  - ''\n")

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "validate", filepath.Join(dir, "custom.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, err.Error(), "output_format")
	assert.Contains(t, err.Error(), "max_file_size")
	assert.Contains(t, err.Error(), "include[0]")
}

func TestConfigValidate_MissingFile(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "validate", filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read config")
}

func TestConfigInit_CreatesValidStarter(t *testing.T) {
	dir := t.TempDir()

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "init", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "(created)")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, "20M", cfg.MaxFileSize)
}

func TestConfigInit_SkipsExisting(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "output_format: json\n")

	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "init", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "exists")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestConfigInit_Force(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "output_format: json\n")

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "init", "--force", dir})

	require.NoError(t, cmd.Execute())
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
}

func TestConfigInit_WriteError(t *testing.T) {
	dir := t.TempDir()
	cmd, _, _ := newTestCmd(t)
	withMockFS(t, &testable.MockFileSystem{
		WriteFileFn: func(string, []byte, os.FileMode) error {
			return errors.New("disk full")
		},
	})
	cmd.SetArgs([]string{"config", "init", dir})

	err := cmd.Execute()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitToolFailure, ece.ExitCode())
	assert.Contains(t, err.Error(), "disk full")
}

func TestConfigSet_BraceGlobStaysWhole(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "include", "./src/**,*.{ts,tsx}"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"./src/**", "*.{ts,tsx}"}, cfg.Include)
}

func TestConfigSet_UpdatesExistingTOML(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, config.TOMLFileName, "exclude = [\"vendor/**\"]\n")
	chdir(t, dir)

	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "set", "max_results", "8"})
	require.NoError(t, cmd.Execute())

	_, statErr := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "must not create a YAML file that shadows the TOML one")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxResults)
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
}
