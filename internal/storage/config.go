package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the name of the optional user configuration file.
	ConfigFile = ".todoconfig.yaml"

	// Default configuration values
	DefaultVerbose = false
	DefaultColor   = ColorAuto
)

// Color modes for list output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .todoconfig.yaml.
// This file is user-managed and never written by todo.
type Config struct {
	// File is the path of the task file.
	File string `yaml:"file"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose"`

	// Color is one of auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		File:    DefaultFile,
		Verbose: DefaultVerbose,
		Color:   DefaultColor,
	}
}

// LoadConfig loads .todoconfig.yaml from dir if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if cfg.File == "" {
		cfg.File = DefaultFile
	}
	switch cfg.Color {
	case "":
		cfg.Color = DefaultColor
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid color %q in %s: must be auto, always or never", cfg.Color, ConfigFile)
	}

	return cfg, nil
}
