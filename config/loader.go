// Package config - YAML configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSearchPaths are tried, in order, by LoadDefault.
var DefaultSearchPaths = []string{
	".",
	"./config",
	"./configs",
}

// DefaultFileName is the file looked up in the search paths.
const DefaultFileName = "ising.yaml"

// Load reads, parses and validates a run configuration. Omitted
// fields take the DefaultConfig values, so a file may specify only
// what deviates from the reference run.
//
// Errors: ErrFileNotFound, ErrParse (wrapping the YAML error), or a
// validation sentinel.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, err
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault searches DefaultSearchPaths for DefaultFileName and
// loads the first hit; when no file exists anywhere, the defaults are
// returned as-is.
func LoadDefault() (*Config, error) {
	for _, dir := range DefaultSearchPaths {
		path := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return DefaultConfig(), nil
}
