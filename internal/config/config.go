// Package config provides configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name.
	AppName = "countrykit"

	// ConfigDirName is the per-user configuration directory name.
	ConfigDirName = ".countrykit"

	// ConfigFileName is the configuration file name.
	ConfigFileName = "config.yaml"

	// FormatText is tab-separated text output.
	FormatText = "text"

	// FormatJSON is indented JSON output.
	FormatJSON = "json"

	// FormatYAML is YAML output.
	FormatYAML = "yaml"

	// DefaultLogLevel is the default diagnostic log level.
	DefaultLogLevel = "warn"
)

// Config holds runtime configuration.
type Config struct {
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	LogJSON     bool   `yaml:"log_json"`
	SearchLimit int    `yaml:"search_limit"`
	ExactSearch bool   `yaml:"exact_search"`
	NameOnly    bool   `yaml:"name_only"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory
		home = "."
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName)
}

// Load reads a YAML configuration file on top of the defaults. A missing
// file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(FormatText, FormatJSON, FormatYAML)),
		validation.Field(&c.LogLevel, validation.Required, validation.By(validLogLevel)),
		validation.Field(&c.SearchLimit, validation.Min(0)),
	)
}

func validLogLevel(value interface{}) error {
	s, _ := value.(string)
	if _, err := logrus.ParseLevel(s); err != nil {
		return errors.New("must be a valid log level")
	}
	return nil
}

// Level returns the parsed log level, falling back to the default.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
