// Package config loads the optional repo-local .reposafety.yml file with
// additional secret rules and blocked filenames.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is resolved relative to the repository root.
const DefaultFileName = ".reposafety.yml"

type Config struct {
	// Rules are appended after the built-in registry, so built-in rules
	// keep their position in report order.
	Rules []RuleConfig `yaml:"rules"`
	// BlockedFilenames are additional exact base names that may never be
	// committed, matched case-sensitively.
	BlockedFilenames []string `yaml:"blocked_filenames"`
	// Threads bounds the number of concurrent file scans. The --threads
	// flag takes precedence.
	Threads int `yaml:"threads"`
}

type RuleConfig struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero config; a malformed file is fatal to the invocation.
func Load(path string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed unmarshalling %s: %w", path, err)
	}

	return cfg, nil
}
