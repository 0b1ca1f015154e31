// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global rgscope configuration.
// It uses $XDG_CONFIG_HOME/rgscope if set, otherwise ~/.config/rgscope.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rgscope")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rgscope")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := LoadFile(GlobalConfigPath())
	if err != nil {
		if isNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}
