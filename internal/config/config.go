// Package config loads the optional pngsteg tool configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds tool-level settings. Command-line flags override anything
// set here.
type Config struct {
	// OutputPrefix is prepended to the input filename to form the default
	// embedded output name.
	OutputPrefix string `yaml:"output_prefix"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// AssumeYes answers the truncation prompt with yes without asking.
	AssumeYes bool `yaml:"assume_yes"`
}

// Default returns the built-in settings: "embedded_" output prefix,
// info logging, interactive confirmation.
func Default() Config {
	return Config{
		OutputPrefix: "embedded_",
		LogLevel:     "info",
	}
}

// Load reads a YAML config file into the defaults. A missing file is not
// an error; it just means defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = Default().OutputPrefix
	}
	return cfg, nil
}
