// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package hijrictlconfig provides configuration parsing and validation for hijrictl.
//
// Configuration is stored at ~/.config/hijrictl/config.yaml (or $HIJRICTL_CONFIG_DIR/config.yaml).
// The file is optional. When it does not exist, DefaultConfig is used.
package hijrictlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/bufdev/hijrictl/internal/standard/xos"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "config.yaml"

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The language for month, weekday, and era names.
#
# Optional. A BCP 47 tag such as "en", "ar", or "bn". Defaults to "en".
# Can be overridden with --lang.
language: en
# The output format.
#
# Optional. One of table, csv, or json. Defaults to table.
# Can be overridden with --format.
format: table
# Day-month-year formatting.
#
# Optional.
dmy:
  # The string between day, month, and year. Defaults to "/".
  separator: "/"
  # Whether to zero-pad day and month to two digits. Defaults to true.
  padding: true
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Language is the language tag for localized names.
	Language string `yaml:"language"`
	// Format is the default output format.
	Format string `yaml:"format"`
	// DMY holds day-month-year formatting options.
	DMY ExternalDMYConfig `yaml:"dmy"`
}

// ExternalDMYConfig holds day-month-year formatting options.
type ExternalDMYConfig struct {
	// Separator is the string between day, month, and year.
	Separator *string `yaml:"separator"`
	// Padding is whether to zero-pad day and month.
	Padding *bool `yaml:"padding"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// Language is the language name passed to the locale registry.
	Language string
	// Format is the default output format.
	Format cliio.Format
	// DMYSeparator is the string between day, month, and year.
	DMYSeparator string
	// DMYPadding is whether to zero-pad day and month.
	DMYPadding bool
}

// DefaultConfig returns the configuration used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Language:     "en",
		Format:       cliio.FormatTable,
		DMYSeparator: "/",
		DMYPadding:   true,
	}
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	config := DefaultConfig()
	if externalConfig.Language != "" {
		if _, err := language.Parse(externalConfig.Language); err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", externalConfig.Language, err)
		}
		config.Language = externalConfig.Language
	}
	if externalConfig.Format != "" {
		format, err := cliio.ParseFormat(externalConfig.Format)
		if err != nil {
			return nil, err
		}
		config.Format = format
	}
	if externalConfig.DMY.Separator != nil {
		config.DMYSeparator = *externalConfig.DMY.Separator
	}
	if externalConfig.DMY.Padding != nil {
		config.DMYPadding = *externalConfig.DMY.Padding
	}
	return config, nil
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
//
// Returns DefaultConfig if the file does not exist.
func ReadConfig(configDirPath string) (*Config, error) {
	config, err := ReadConfigFile(ConfigFilePath(configDirPath))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// ReadConfigFile reads and validates the configuration file at the given path.
//
// A leading ~ in the path is expanded to the home directory.
func ReadConfigFile(filePath string) (*Config, error) {
	filePath, err := xos.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"hijrictl config init\" to create one: %w", filePath, os.ErrNotExist)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(externalConfig)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the config directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the config directory if it does not exist.
	if err := os.MkdirAll(configDirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at the given path.
func ValidateConfigFile(filePath string) error {
	_, err := ReadConfigFile(filePath)
	return err
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
