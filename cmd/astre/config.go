package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds CLI defaults that may be overridden by an optional YAML
// file, loaded the way the teacher pack loads its .yaml side files
// (gopkg.in/yaml.v3, unmarshalled into a plain struct).
type config struct {
	Eps       float64 `yaml:"eps"`
	Solver    string  `yaml:"solver"`
	MaxRadius int     `yaml:"max_radius"`
}

// loadConfig reads and parses path. A missing path is not an error: the
// CLI falls back to its flag defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
