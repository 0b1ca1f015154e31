// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package searchpath

import "slices"

// PatternPaths is an ordered multimap from an include pattern to the search
// paths it resolved to. Patterns keep the order of their first insertion and
// each pattern's path list holds no duplicates. The zero value is ready to use,
// and the read methods treat a nil *PatternPaths as empty.
type PatternPaths struct {
	order []string
	paths map[string][]string
}

// Entry pairs a pattern with its resolved paths.
type Entry struct {
	Pattern string   `json:"pattern"`
	Paths   []string `json:"paths"`
}

// NewPatternPaths returns an empty PatternPaths.
func NewPatternPaths() *PatternPaths {
	return &PatternPaths{paths: make(map[string][]string)}
}

// Add records path under pattern, creating the entry on the first hit.
// A path already recorded for the same pattern is ignored.
func (p *PatternPaths) Add(pattern, path string) {
	if p.paths == nil {
		p.paths = make(map[string][]string)
	}
	existing, ok := p.paths[pattern]
	if !ok {
		p.order = append(p.order, pattern)
	}
	p.paths[pattern] = PushIfNotIncluded(existing, path)
}

// Has reports whether pattern resolved to at least one path.
func (p *PatternPaths) Has(pattern string) bool {
	if p == nil {
		return false
	}
	_, ok := p.paths[pattern]
	return ok
}

// Get returns a copy of the paths recorded for pattern, or nil.
func (p *PatternPaths) Get(pattern string) []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.paths[pattern])
}

// Len returns the number of patterns that resolved.
func (p *PatternPaths) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// Patterns returns the resolved patterns in insertion order.
func (p *PatternPaths) Patterns() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.order)
}

// Paths flattens every pattern's paths in pattern order. Paths shared by two
// patterns appear once per pattern.
func (p *PatternPaths) Paths() []string {
	if p == nil {
		return nil
	}
	var out []string
	for _, pattern := range p.order {
		out = append(out, p.paths[pattern]...)
	}
	return out
}

// Entries returns the multimap as an ordered list. It is never nil.
func (p *PatternPaths) Entries() []Entry {
	if p == nil {
		return []Entry{}
	}
	entries := make([]Entry, 0, len(p.order))
	for _, pattern := range p.order {
		entries = append(entries, Entry{Pattern: pattern, Paths: p.Get(pattern)})
	}
	return entries
}
