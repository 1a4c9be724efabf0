// Package config handles CLI configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds defaults that command-line flags override. API keys are
// deliberately not part of it.
type Config struct {
	DefaultModel string `yaml:"default_model"`
	DefaultSize  string `yaml:"default_size"`
	DefaultCount int    `yaml:"default_count"`
	Output       string `yaml:"output"`
	BaseURL      string `yaml:"base_url,omitempty"`
	DebugLimit   int    `yaml:"debug_limit,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.aidraw/config.yaml
// - Windows: %USERPROFILE%\.aidraw\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".aidraw", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns an empty config without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.DefaultCount < 0 {
		return nil, fmt.Errorf("parse %s: default_count must not be negative", path)
	}

	return cfg, nil
}
