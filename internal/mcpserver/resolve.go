// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes rgscope's path resolution as tools over stdio transport.
package mcpserver

import (
	"fmt"

	"github.com/davetashner/rgscope/internal/testable"
)

// serverFS is the file system used by the tool handlers.
// Override in tests with a testable.MockFileSystem.
var serverFS testable.FileSystem = testable.DefaultFS

// ResolveRoots turns the roots given by a client into absolute paths. An
// empty list means the current directory.
func ResolveRoots(roots []string) ([]string, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == "" {
			root = "."
		}
		p, err := serverFS.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve root %q: %w", root, err)
		}
		abs = append(abs, p)
	}
	return abs, nil
}
