// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/davetashner/rgscope/internal/searchpath"
)

func init() {
	RegisterFormatter(&NullFormatter{})
}

// NullFormatter writes NUL-terminated paths for use with xargs -0.
type NullFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*NullFormatter)(nil)

// Name returns the format name.
func (f *NullFormatter) Name() string {
	return "null"
}

// Format writes each search path followed by a NUL byte.
func (f *NullFormatter) Format(res searchpath.Result, w io.Writer) error {
	for _, p := range res.Paths {
		if _, err := io.WriteString(w, p+"\x00"); err != nil {
			return fmt.Errorf("write null: %w", err)
		}
	}
	return nil
}
