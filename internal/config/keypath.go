// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a top-level value from a Config by its YAML key.
func GetValue(cfg *Config, key string) (any, error) {
	if err := ValidateKeyPath(key); err != nil {
		return nil, err
	}
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	val, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("key %q not set", key)
	}
	return val, nil
}

// SetValue sets key in a raw YAML map. List keys accept a comma-separated
// value; other values are auto-detected as bool, int, or string.
func SetValue(data map[string]any, key, rawValue string) error {
	if err := ValidateKeyPath(key); err != nil {
		return err
	}
	if listKeys[key] {
		data[key] = splitList(rawValue)
		return nil
	}
	data[key] = coerceValue(rawValue)
	return nil
}

// ValidateKeyPath checks that key names a Config field. Config is flat, so
// dotted paths are rejected.
func ValidateKeyPath(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if strings.Contains(key, ".") {
		return fmt.Errorf("key %q is a scalar; cannot use sub-keys", strings.SplitN(key, ".", 2)[0])
	}
	keys := yamlKeys(reflect.TypeOf(Config{}))
	if !keys[key] {
		return fmt.Errorf("unknown key %q; valid keys: %s", key, sortedKeys(keys))
	}
	return nil
}

// listKeys are the Config keys holding string lists.
var listKeys = map[string]bool{
	"roots":   true,
	"include": true,
	"exclude": true,
}

// ToMap converts a Config to a map keyed by YAML field name via a YAML
// round-trip, omitting zero values.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// coerceValue parses a string into bool, int, or keeps it as string.
func coerceValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}

// splitList splits s on commas outside brace groups, so "*.{ts,tsx}" stays
// one pattern.
func splitList(s string) []any {
	var out []any
	add := func(part string) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				add(s[start:i])
				start = i + 1
			}
		}
	}
	add(s[start:])
	return out
}

// yamlKeys extracts yaml tag names from a struct type.
func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool)
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			keys[name] = true
		}
	}
	return keys
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
