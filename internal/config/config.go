// Package config provides configuration management for the resistor CLI.
//
// Files are decoded with hclsimple, so both native syntax (*.hcl) and the
// JSON variant (*.json) are accepted:
//
//	log_level  = "debug"
//	log_format = "json"
//	format     = "json"
//	letters    = true
//
// Attributes missing from the file keep their Default() values.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/oovm/resistor/internal/logging"
	"github.com/oovm/resistor/internal/output"
)

// Config is the CLI configuration
type Config struct {
	// LogLevel is the minimum log level
	LogLevel string `hcl:"log_level,optional"`

	// LogFormat is the log encoding (console, json)
	LogFormat string `hcl:"log_format,optional"`

	// LogOutput is the log destination (stdout, stderr, file path)
	LogOutput string `hcl:"log_output,optional"`

	// Format is the default output format for decoded resistors
	Format string `hcl:"format,optional"`

	// Letters adds tolerance and temperature-coefficient letter codes to output
	Letters bool `hcl:"letters,optional"`
}

// Default returns a default configuration
func Default() *Config {
	lc := logging.DefaultConfig()

	return &Config{
		LogLevel:  lc.Level,
		LogFormat: lc.Format,
		LogOutput: lc.Output,
		Format:    string(output.FormatText),
		Letters:   false,
	}
}

// Logging returns the logging section of c.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: c.LogOutput,
	}
}

// Validate checks that the configured output format is known.
func (c *Config) Validate() error {
	if _, err := output.Get(output.Format(c.Format)); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Load loads configuration from a file. A missing file yields Default().
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
