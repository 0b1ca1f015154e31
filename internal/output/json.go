// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davetashner/rgscope/internal/searchpath"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONDocument is the JSON representation of a resolution result.
type JSONDocument struct {
	Paths    []string           `json:"paths"`
	Include  []string           `json:"include"`
	Resolved []searchpath.Entry `json:"resolved"`
}

// NewJSONDocument converts a result, using empty arrays instead of null.
func NewJSONDocument(res searchpath.Result) JSONDocument {
	doc := JSONDocument{
		Paths:    res.Paths,
		Include:  res.Include,
		Resolved: res.Resolved.Entries(),
	}
	if doc.Paths == nil {
		doc.Paths = []string{}
	}
	if doc.Include == nil {
		doc.Include = []string{}
	}
	return doc
}

// JSONFormatter writes the result as a single JSON document.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is pretty on terminals and compact on pipes.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the result as JSON followed by a newline.
func (f *JSONFormatter) Format(res searchpath.Result, w io.Writer) error {
	doc := NewJSONDocument(res)

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// For non-file writers (e.g., bytes.Buffer in tests), default to pretty.
	return false
}
