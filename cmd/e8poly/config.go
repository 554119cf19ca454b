// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Mirrors  []string `yaml:"mirrors"`
	Output   string   `yaml:"output"`
	Seed     *int64   `yaml:"seed"`
	MaxDraws *int     `yaml:"max_draws"`
	Exact    *bool    `yaml:"exact"`
	Verbose  *bool    `yaml:"verbose"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config yaml: %w", err)
	}
	return cfg, nil
}

// applyConfig copies file values into s for every flag not set on the
// command line. Mirrors from the file are used only when no positional
// mirrors were given; the resulting mirror list is returned.
func applyConfig(cfg *fileConfig, s *settings, changed func(string) bool, args []string) []string {
	if cfg == nil {
		return args
	}
	if len(args) == 0 {
		args = cfg.Mirrors
	}
	if cfg.Output != "" && !changed("off") {
		s.output = cfg.Output
	}
	if cfg.Seed != nil && !changed("seed") {
		s.seed = *cfg.Seed
	}
	if cfg.MaxDraws != nil && !changed("max-draws") {
		s.maxDraws = *cfg.MaxDraws
	}
	if cfg.Exact != nil && !changed("exact") {
		s.exact = *cfg.Exact
	}
	if cfg.Verbose != nil && !changed("verbose") {
		s.verbose = *cfg.Verbose
	}
	return args
}
