package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".libtrack.yaml"

	// Default configuration values
	DefaultCatalogFile = "books.txt"
	DefaultIssuedFile  = "issued_books.txt"
	DefaultColor       = ColorAuto
	DefaultLogLevel    = "warn"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .libtrack.yaml.
// This file is user-managed and never written by libtrack.
type Config struct {
	// CatalogFile is the catalog file name, relative to the data directory.
	CatalogFile string `yaml:"catalog_file"`

	// IssuedFile is the issued-records file name, relative to the data directory.
	IssuedFile string `yaml:"issued_file"`

	// Color is one of auto, always or never.
	Color string `yaml:"color"`

	// LogLevel is the minimum level of diagnostic logs written to stderr.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		CatalogFile: DefaultCatalogFile,
		IssuedFile:  DefaultIssuedFile,
		Color:       DefaultColor,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadConfig loads .libtrack.yaml from dir if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.CatalogFile) == "" {
		return fmt.Errorf("catalog_file must not be empty")
	}
	if strings.TrimSpace(c.IssuedFile) == "" {
		return fmt.Errorf("issued_file must not be empty")
	}
	if filepath.Clean(c.CatalogFile) == filepath.Clean(c.IssuedFile) {
		return fmt.Errorf("catalog_file and issued_file must differ")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
