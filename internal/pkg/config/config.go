// Package config holds the flat, yaml-backed configuration struct for
// the command-line tool, following the teacher's simplified single-struct
// config pattern rather than a nested configuration tree.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables for the extraction and analysis
// pipeline, flattened into one struct in the teacher's style.
type Config struct {
	// Output settings
	OutputFormat string `yaml:"output_format"`
	ColorOutput  bool   `yaml:"color_output"`

	// Extraction settings
	XMLPreprocess bool `yaml:"xml_preprocess"`

	// Analysis settings
	CheckCycles      bool `yaml:"check_cycles"`
	CheckUnreachable bool `yaml:"check_unreachable"`
	CheckDeadStates  bool `yaml:"check_dead_states"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with sensible defaults, matching the
// teacher's GetDefaults constructor.
func Defaults() *Config {
	return &Config{
		OutputFormat:     "text",
		ColorOutput:      true,
		XMLPreprocess:    true,
		CheckCycles:      true,
		CheckUnreachable: true,
		CheckDeadStates:  true,
		LogLevel:         "info",
	}
}

// candidatePaths are searched, in order, for a configuration file when
// no explicit path is given — the same "first match wins, fall back to
// defaults" search the teacher's client config loader runs.
var candidatePaths = []string{
	os.Getenv("FSMSIG_CONFIG_PATH"),
	"./fsmsig.yml",
	"./.fsmsig.yml",
}

// Load reads a YAML config file over top of Defaults(). An explicit
// path is read directly; an empty path triggers the candidate-path
// search. A missing file at every candidate location is not an error —
// Load simply returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	paths := candidatePaths
	if path != "" {
		paths = []string{path}
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", p, err)
		}
		return cfg, nil
	}

	return cfg, nil
}
