package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the renderer and engine settings a user can persist in a
// YAML file instead of repeating flags.
type config struct {
	TimeoutMS        int  `yaml:"timeout_ms"`
	IgnoreWhitespace bool `yaml:"ignore_whitespace"`
	Subwords         bool `yaml:"subwords"`
	SideBySide       bool `yaml:"side_by_side"`
	Width            int  `yaml:"width"`
}

func defaultConfig() *config {
	return &config{Width: 80}
}

// loadConfig reads path if given, falling back to defaults. An empty path
// means no config file was requested.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.TimeoutMS < 0 {
		return nil, fmt.Errorf("config %s: timeout_ms must be >= 0", path)
	}
	return cfg, nil
}
