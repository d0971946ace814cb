// Package config loads srtlint settings from YAML and the environment.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mgpai22/srtlint/internal/source"
)

// Environment variable names.
const (
	EnvStrict   = "SRTLINT_STRICT"
	EnvVerbose  = "SRTLINT_VERBOSE"
	EnvEncoding = "SRTLINT_ENCODING"
)

const DefaultEncoding = "utf-8"

// Config mirrors the check command's flags.
type Config struct {
	Verbose  bool   `yaml:"verbose"`
	Strict   bool   `yaml:"strict"`
	TUI      bool   `yaml:"tui"`
	Encoding string `yaml:"encoding"`
}

func DefaultConfig() *Config {
	return &Config{
		Encoding: DefaultEncoding,
	}
}

// Load reads and validates a configuration file. An empty path yields the
// defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultEncoding
	}
	if !source.SupportedEncoding(cfg.Encoding) {
		return fmt.Errorf("encoding: unsupported value %q", cfg.Encoding)
	}
	return nil
}

func (c *Config) applyEnvironmentOverrides() error {
	if err := envBool(EnvStrict, &c.Strict); err != nil {
		return err
	}
	if err := envBool(EnvVerbose, &c.Verbose); err != nil {
		return err
	}
	if enc := os.Getenv(EnvEncoding); enc != "" {
		c.Encoding = enc
	}
	return nil
}

func envBool(name string, dst *bool) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = v
	return nil
}
