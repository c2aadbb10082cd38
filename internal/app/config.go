package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
// Empty log settings fall back to the profile, then to built-in defaults.
// Sorting and output settings come from the profile only.
type Config struct {
	InputPath   string
	ProfilePath string // optional HCL profile

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
