package tester

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid tester config")

// Config holds settings for a test run.
type Config struct {
	// PlainText forces plain-text summaries when true and <PRE>
	// wrapped summaries when false. Nil means detect from the
	// host environment.
	PlainText *bool `json:"plain_text,omitempty" yaml:"plain_text,omitempty"`

	// Verbose enables per-assertion debug logging.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// OutputPath is a file the summary is written to in addition
	// to standard output. Empty disables it.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config from %s: %w", path, err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return nil
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf(
			"%w: output_path is blank", ErrInvalidConfig,
		)
	}
	if strings.HasSuffix(c.OutputPath, string(filepath.Separator)) {
		return fmt.Errorf(
			"%w: output_path %q is a directory",
			ErrInvalidConfig, c.OutputPath,
		)
	}
	return nil
}
