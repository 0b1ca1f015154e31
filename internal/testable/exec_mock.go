// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MockCommandExecutor is a test double for CommandExecutor.
// It can simulate a missing binary, non-zero exits, and predetermined outputs.
type MockCommandExecutor struct {
	// LookPathErr, when non-nil, is returned by LookPath for any file.
	LookPathErr error

	// LookPathResult is returned as the path when LookPathErr is nil.
	LookPathResult string

	// CommandOutputs maps a command key (e.g., "rg --json -- foo /repo") to the
	// stdout that the resulting exec.Cmd should produce. The key is built from
	// the command name and all arguments joined by spaces.
	CommandOutputs map[string]string

	// CommandExitCodes maps a command key to the exit status the resulting
	// exec.Cmd terminates with. Output from CommandOutputs is still written.
	CommandExitCodes map[string]int

	// DefaultOutput is returned when no key matches in CommandOutputs.
	DefaultOutput string

	// DefaultExitCode is used when no key matches in CommandExitCodes.
	DefaultExitCode int

	// Calls records the command keys that were invoked, for assertion purposes.
	Calls []string
}

// LookPath returns the configured result or error.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	if m.LookPathResult != "" {
		return m.LookPathResult, nil
	}
	return "/usr/bin/" + file, nil
}

// CommandContext returns an *exec.Cmd that, when executed, produces the
// pre-configured output and exit status. It uses a "sh -c" script to simulate
// the behaviour without running the real binary. The key is built from the
// base name of the command so that resolved binary paths still match.
func (m *MockCommandExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	base := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		base = name[i+1:]
	}
	key := strings.TrimSpace(base + " " + strings.Join(args, " "))
	m.Calls = append(m.Calls, key)

	out := m.DefaultOutput
	if o, ok := m.CommandOutputs[key]; ok {
		out = o
	}
	code := m.DefaultExitCode
	if c, ok := m.CommandExitCodes[key]; ok {
		code = c
	}

	script := fmt.Sprintf("printf '%%s' %q; exit %d", out, code)
	return exec.CommandContext(ctx, "sh", "-c", script) //nolint:gosec // test helper
}

// Compile-time interface check.
var _ CommandExecutor = (*MockCommandExecutor)(nil)
