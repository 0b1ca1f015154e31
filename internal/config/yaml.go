// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/davetashner/rgscope/internal/testable"
)

// configFS is the file system used to read and write config files.
// Override in tests with a testable.MockFileSystem.
var configFS testable.FileSystem = testable.DefaultFS

// Load reads the config file from the given workspace root. The YAML file
// wins over the TOML file when both exist. If neither exists, it returns a
// zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if isNotExist(err) {
			continue
		}
		return cfg, err
	}
	return &Config{}, nil
}

// RepoFilePath returns the config file Load reads in dir: the YAML file, or
// the TOML file when only that exists. With neither present it names the
// YAML file.
func RepoFilePath(dir string) string {
	yamlPath := filepath.Join(dir, FileName)
	if _, err := configFS.Stat(yamlPath); err == nil {
		return yamlPath
	}
	tomlPath := filepath.Join(dir, TOMLFileName)
	if _, err := configFS.Stat(tomlPath); err == nil {
		return tomlPath
	}
	return yamlPath
}

// LoadFile reads and decodes a single config file, choosing the decoder from
// its extension. A missing file is reported as an error wrapping fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := configFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isTOML(path) {
		return decodeTOML(path, data)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadRaw reads a config file into a generic map, preserving keys that do
// not (yet) decode into Config. A missing file yields an empty map.
func LoadRaw(path string) (map[string]any, error) {
	data, err := configFS.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, err
	}

	var m map[string]any
	if isTOML(path) {
		m, err = decodeTOMLRaw(data)
	} else {
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// WriteFile writes a raw config map to path, as TOML for .toml paths and
// YAML otherwise, creating parent directories as needed.
func WriteFile(path string, data map[string]any) error {
	var out []byte
	var err error
	if isTOML(path) {
		out, err = encodeTOML(data)
	} else {
		out, err = yaml.Marshal(data)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return configFS.WriteFile(path, out, 0o600)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// isNotExist reports whether err means there is no config file. ENOTDIR
// counts: a file cannot hold a config.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
