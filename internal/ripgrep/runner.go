// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package ripgrep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/davetashner/rgscope/internal/testable"
)

// DefaultBinary is the executable looked up on PATH when Runner.Binary is empty.
const DefaultBinary = "rg"

// ErrNotFound is returned when the ripgrep binary cannot be located.
var ErrNotFound = errors.New("ripgrep not found on PATH")

// ErrNoMatches is returned by Run when ripgrep exits with status 1.
var ErrNoMatches = errors.New("no matches")

// Runner executes ripgrep.
type Runner struct {
	// Exec runs the command. Nil uses testable.DefaultExecutor().
	Exec testable.CommandExecutor

	// Binary overrides the executable name or path.
	Binary string
}

// Run executes ripgrep with args, streaming its stdout and stderr to the
// given writers. It returns ErrNoMatches when ripgrep reports no matches and
// a wrapped error for any other non-zero exit.
func (r *Runner) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	executor := r.Exec
	if executor == nil {
		executor = testable.DefaultExecutor()
	}
	name := r.Binary
	if name == "" {
		name = DefaultBinary
	}

	bin, err := executor.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	slog.Debug("running ripgrep", "binary", bin, "args", args)

	cmd := executor.CommandContext(ctx, bin, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() == 1 {
			return ErrNoMatches
		}
		return fmt.Errorf("ripgrep exited with status %d", exitErr.ExitCode())
	}
	return fmt.Errorf("running ripgrep: %w", err)
}
