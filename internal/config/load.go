package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, validates and resolves a config file.
// Relative paths in the result are resolved against the config directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	baseDir := BaseDir(path)
	if err := Validate(&cfg, baseDir); err != nil {
		return Config{}, err
	}
	Resolve(&cfg, baseDir)
	return cfg, nil
}
