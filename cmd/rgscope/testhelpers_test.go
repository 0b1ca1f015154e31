// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/rgscope/internal/testable"
)

// newTestCmd redirects rootCmd's I/O into buffers and resets all flags.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetAllFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetAllFlags restores every command flag to its default between runs.
func resetAllFlags() {
	resolveFlags.reset()
	argsFlags.reset()
	searchFlags.reset()
	resolveFormat = ""
	resolveExplain = false
	argsJSON = false
	argsPlain = false
	searchJSON = false
	searchRgPath = ""
	verbose = false
	quiet = false
	noColor = false
	resetConfigFlags()

	for _, c := range []*cobra.Command{resolveCmd, argsCmd, searchCmd, rootCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		c.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	color.NoColor = true
}

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

// withMockExec swaps cmdExec with the given mock and restores it on test cleanup.
func withMockExec(t *testing.T, mock *testable.MockCommandExecutor) {
	t.Helper()
	orig := cmdExec
	cmdExec = mock
	t.Cleanup(func() { cmdExec = orig })
}

// chdir changes into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// initTestWorkspace creates a workspace with a few directories and files and
// returns its symlink-free absolute path.
func initTestWorkspace(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}

	writeTestFile(t, dir, "src/main.go", "package main\n\n// TODO: wire flags\nfunc main() {}\n")
	writeTestFile(t, dir, "src/util/util.go", "package util\n")
	writeTestFile(t, dir, "docs/guide.md", "# Guide\n")
	writeTestFile(t, dir, "README.md", "# Workspace\n")
	return dir
}

// writeTestFile creates a file (and any necessary parent directories) under dir.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", parent, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
