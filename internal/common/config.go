// Package common provides shared utilities for Genie
package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Genie
type Config struct {
	Environment string        `toml:"environment" env:"GENIE_ENV"`
	Logging     LoggingConfig `toml:"logging"`
	Console     ConsoleConfig `toml:"console"`
	Catalog     CatalogConfig `toml:"catalog"`
	Display     DisplayConfig `toml:"display"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string `toml:"level" env:"GENIE_LOG_LEVEL"`
	FilePath string `toml:"file_path" env:"GENIE_LOG_FILE"` // Empty logs to stderr
}

// ConsoleConfig controls how the interactive console paces its output
type ConsoleConfig struct {
	Typewriter       bool   `toml:"typewriter" env:"GENIE_TYPEWRITER"`
	TypewriterDelay  string `toml:"typewriter_delay" env:"GENIE_TYPEWRITER_DELAY"` // per character, e.g. "30ms"
	IntroPause       string `toml:"intro_pause" env:"GENIE_INTRO_PAUSE"`
	PauseAfterScreen bool   `toml:"pause_after_screen" env:"GENIE_PAUSE_AFTER_SCREEN"` // "Press Enter" after each calculator
}

// GetTypewriterDelay parses and returns the per-character delay
func (c *ConsoleConfig) GetTypewriterDelay() time.Duration {
	d, err := time.ParseDuration(c.TypewriterDelay)
	if err != nil || d < 0 {
		return 30 * time.Millisecond
	}
	return d
}

// GetIntroPause parses and returns the pause after the summoning line
func (c *ConsoleConfig) GetIntroPause() time.Duration {
	d, err := time.ParseDuration(c.IntroPause)
	if err != nil || d < 0 {
		return time.Second
	}
	return d
}

// CatalogConfig points at an optional instrument catalog override
type CatalogConfig struct {
	Path string `toml:"path" env:"GENIE_CATALOG_PATH"`
}

// DisplayConfig holds output formatting options
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol" env:"GENIE_CURRENCY_SYMBOL"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level: "warn",
		},
		Console: ConsoleConfig{
			Typewriter:       true,
			TypewriterDelay:  "30ms",
			IntroPause:       "1s",
			PauseAfterScreen: true,
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	normalize(config)

	return config, nil
}

// applyEnvOverrides applies GENIE_* environment variables on top of config
func applyEnvOverrides(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func normalize(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if strings.TrimSpace(config.Display.CurrencySymbol) == "" {
		config.Display.CurrencySymbol = "$"
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
