package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the on-disk defaults a pdbquery.yaml file may supply,
// overriding the command's built-in flag defaults but not an explicit
// flag the caller passed.
type Config struct {
	DefaultDialect string `yaml:"default_dialect"`
	DefaultFormat  string `yaml:"default_format"`
}

// LoadConfig reads and parses a pdbquery.yaml file at path. A missing file
// is not an error — it just means no overrides apply — but a malformed one
// is.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults replaces each RootOptions field whose flag the caller did
// not set explicitly (dialectSet/formatSet false) with cfg's value, when
// cfg has one; explicitly set flags are never overridden.
func (cfg *Config) ApplyDefaults(opts *RootOptions, dialectSet, formatSet bool) {
	if !dialectSet && cfg.DefaultDialect != "" {
		opts.Dialect = cfg.DefaultDialect
	}
	if !formatSet && cfg.DefaultFormat != "" {
		opts.Format = cfg.DefaultFormat
	}
}
