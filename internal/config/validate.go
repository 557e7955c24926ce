package config

import "fmt"

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.SessionDir == "" {
		return fmt.Errorf("session_dir cannot be empty")
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1: %d", c.MaxIterations)
	}
	if c.ConvergenceThreshold < 0 || c.ConvergenceThreshold > 1 {
		return fmt.Errorf("convergence_threshold %g outside [0,1]", c.ConvergenceThreshold)
	}
	if c.AutoAcceptThreshold < 0 || c.AutoAcceptThreshold > 1 {
		return fmt.Errorf("auto_accept_threshold %g outside [0,1]", c.AutoAcceptThreshold)
	}
	if c.BatchThreshold < 1 {
		return fmt.Errorf("batch_threshold must be at least 1: %d", c.BatchThreshold)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %q (must be 'auto', 'always', or 'never')", c.Color)
	}
	return nil
}
