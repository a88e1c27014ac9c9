package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl command manifest

	LogFormat string
	LogLevel  string
	NoColor   bool
	Width     int // render width in terminal columns

	Argv []string // the argument vector to parse against the manifest
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.Width < 1 {
		return nil, errors.New("Width must be a positive number of columns")
	}
	return &cfg, nil
}
