// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for rgscope CLI.
const (
	ExitOK          = 0 // Success.
	ExitInvalidArgs = 1 // Invalid arguments, bad path, or bad config.
	ExitNoMatches   = 2 // search found nothing.
	ExitToolFailure = 3 // ripgrep missing or failed, or resolution failed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. ExitNoMatches may carry an empty
// message; other codes with an empty message get a generic one.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitNoMatches:
		case ExitToolFailure:
			msg = "rgscope: search failed"
		default:
			msg = "rgscope: invalid arguments"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
