// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package main

import "github.com/davetashner/rgscope/internal/testable"

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// cmdExec runs ripgrep for the search command.
// Override in tests with a testable.MockCommandExecutor.
var cmdExec testable.CommandExecutor = testable.DefaultExecutor()
