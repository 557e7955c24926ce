package config

import (
	"os"
	"strconv"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "REFINERY_SESSION_DIR",
		apply: func(c *Config, v string) {
			c.SessionDir = v
		},
	},
	{
		envVar: "REFINERY_MAX_ITERATIONS",
		apply: func(c *Config, v string) {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxIterations = n
			}
		},
	},
	{
		envVar: "REFINERY_AUTO_ACCEPT_THRESHOLD",
		apply: func(c *Config, v string) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.AutoAcceptThreshold = f
			}
		},
	},
	{
		envVar: "REFINERY_BATCH_MODE",
		apply: func(c *Config, v string) {
			if b, err := strconv.ParseBool(v); err == nil {
				c.BatchMode = b
			}
		},
	},
	{
		envVar: "REFINERY_LOG_FILE",
		apply: func(c *Config, v string) {
			c.LogFile = v
		},
	},
	{
		envVar: "REFINERY_COLOR",
		apply: func(c *Config, v string) {
			c.Color = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
