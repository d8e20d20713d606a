package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file smartmd looks for when no
// explicit path is given.
const DefaultFileName = ".smartmd.yaml"

// Load reads options from a YAML file at path. Values not present in
// the file keep their defaults. The result is validated before being
// returned.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML options on top of the defaults.
func Parse(data []byte) (*Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadOrDefault loads options from path when it is non-empty,
// otherwise from DefaultFileName if present, otherwise returns the
// defaults.
func LoadOrDefault(path string) (*Options, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}
	return Default(), nil
}
