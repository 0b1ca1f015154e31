// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package searchpath

import (
	"slices"
	"strings"
)

// IsRelativeToBaseDirectory reports whether filePath is written relative to a
// base directory, i.e. starts with "./". Backslashes are treated as forward
// slashes, so ".\a\b" is relative too.
func IsRelativeToBaseDirectory(filePath string) bool {
	normalized := strings.ReplaceAll(filePath, `\`, "/")
	return strings.HasPrefix(normalized, "./")
}

// PushIfNotIncluded appends item to list unless it is already present. A nil
// list yields a new single-element slice. As with append, the returned slice
// is authoritative.
func PushIfNotIncluded(list []string, item string) []string {
	if list == nil {
		return []string{item}
	}
	if !slices.Contains(list, item) {
		list = append(list, item)
	}
	return list
}
