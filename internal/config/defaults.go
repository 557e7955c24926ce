package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultMaxIterations        = 10
	DefaultConvergenceThreshold = 0.95
	DefaultAutoAcceptThreshold  = 0.9
	DefaultBatchThreshold       = 10
	DefaultSessionDirName       = "sessions"
	DefaultLogFileName          = "refinery.log"
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		SessionDir:           defaultDataPath(DefaultSessionDirName),
		MaxIterations:        DefaultMaxIterations,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		AutoAcceptThreshold:  DefaultAutoAcceptThreshold,
		BatchMode:            false,
		BatchThreshold:       DefaultBatchThreshold,
		ShowExamples:         true,
		LogFile:              defaultDataPath(DefaultLogFileName),
	}
}

// defaultDataPath resolves a name under ~/.refinery, falling back to the
// working directory when the home directory is unavailable.
func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".refinery", name)
}
