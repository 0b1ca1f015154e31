// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
)

// decodeTOML decodes a .rgscope.toml file. Unknown keys are logged and ignored.
func decodeTOML(path string, data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "file", path, "key", key.String())
	}
	return &cfg, nil
}

func decodeTOMLRaw(data []byte) (map[string]any, error) {
	var m map[string]any
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func encodeTOML(data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
