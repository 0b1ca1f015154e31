// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/davetashner/rgscope/internal/searchpath"
)

func init() {
	RegisterFormatter(&TextFormatter{})
}

// Shared color printers for explanations.
var (
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
	colorBold   = color.New(color.Bold)
)

// TextFormatter writes one search path per line.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the search paths to w, one per line.
func (f *TextFormatter) Format(res searchpath.Result, w io.Writer) error {
	for _, p := range res.Paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}

// Explain writes a human-readable account of how each include pattern was
// handled: which patterns became search paths and which are left as globs.
func Explain(res searchpath.Result, w io.Writer) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	if res.Resolved.Len() == 0 {
		p("%s\n", colorBold.Sprint("No include pattern resolved to a path; searching roots."))
	} else {
		p("%s\n", colorBold.Sprint("Resolved patterns:"))
		for _, e := range res.Resolved.Entries() {
			p("  %s\n", colorGreen.Sprint(e.Pattern))
			for _, path := range e.Paths {
				p("    -> %s\n", path)
			}
		}
	}

	if len(res.Include) > 0 {
		p("%s\n", colorBold.Sprint("Passed to ripgrep as globs:"))
		for _, pattern := range res.Include {
			p("  %s\n", colorYellow.Sprint(pattern))
		}
	}
	return err
}
