// Package config loads refinery configuration from defaults, an
// optional YAML file, and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all refinery settings.
type Config struct {
	// SessionDir is where session files are persisted.
	SessionDir string `yaml:"session_dir"`

	// MaxIterations caps the refinement loop.
	MaxIterations int `yaml:"max_iterations"`

	// ConvergenceThreshold is the acceptance rate at which the latest
	// iteration counts as converged.
	ConvergenceThreshold float64 `yaml:"convergence_threshold"`

	// AutoAcceptThreshold routes suggestions at or above this confidence
	// straight to acceptance.
	AutoAcceptThreshold float64 `yaml:"auto_accept_threshold"`

	// BatchMode enables type-grouped batch review for large suggestion
	// sets; BatchThreshold is the size that triggers it.
	BatchMode      bool `yaml:"batch_mode"`
	BatchThreshold int  `yaml:"batch_threshold"`

	// ShowExamples includes usage examples when rendering suggestions.
	ShowExamples bool `yaml:"show_examples"`

	// Color forces styled output on or off; empty means auto-detect.
	Color string `yaml:"color,omitempty"`

	// LogFile is the rotating session log path. Empty disables logging.
	LogFile string `yaml:"log_file,omitempty"`
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides. An empty
// path uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigPath is ~/.refinery/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".refinery", "config.yaml")
}
