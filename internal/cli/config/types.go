// Package config provides configuration management for the ReelDash CLI.
//
// Configuration is loaded from reeldash.yaml, REELDASH_ environment
// variables, and CLI flags, with flags taking the highest precedence.
// The loaded Config is shared by the terminal commands and the UI server.
package config

import (
	"github.com/reeldash/reeldash/pkg/adapter"
)

// DatasetConfig points the CLI at the movie dataset file.
type DatasetConfig struct {
	Path string `koanf:"path"`
}

// EngineConfig holds the SQL engine configuration.
type EngineConfig struct {
	Type string `koanf:"type"` // duckdb, sqlite
	// Path is the database file; empty means in-memory.
	Path string `koanf:"path"`
	// Params holds engine-specific configuration (e.g. DuckDB extensions
	// and settings, SQLite pragmas).
	Params map[string]any `koanf:"params"`
}

// ToAdapterConfig converts the engine section into an adapter config.
func (e *EngineConfig) ToAdapterConfig() adapter.Config {
	if e == nil {
		return adapter.Config{Type: DefaultEngineType}
	}
	return adapter.Config{
		Type:   e.Type,
		Path:   e.Path,
		Params: e.Params,
	}
}

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port     int    `koanf:"port"`
	Host     string `koanf:"host"`
	AutoOpen bool   `koanf:"auto_open"`
	Theme    string `koanf:"theme"`
	PageSize int    `koanf:"page_size"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:     8765,
		Host:     "localhost",
		AutoOpen: true,
		Theme:    "default",
		PageSize: 25,
	}
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := c.UI
	if ui.Port == 0 {
		ui.Port = 8765
	}
	if ui.Host == "" {
		ui.Host = "localhost"
	}
	if ui.PageSize == 0 {
		ui.PageSize = 25
	}
	return ui
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text, json
}

// Config holds all CLI configuration options.
type Config struct {
	Dataset      *DatasetConfig `koanf:"dataset"`
	Engine       *EngineConfig  `koanf:"engine"`
	UI           *UIConfig      `koanf:"ui"`
	Log          *LogConfig     `koanf:"log"`
	Verbose      bool           `koanf:"verbose"`
	OutputFormat string         `koanf:"output"`

	// ProjectRoot is the directory the config file was found in (or the
	// working directory when there is none). Relative paths in the config
	// resolve against it.
	ProjectRoot string `koanf:"-"`
}

// DatasetPath returns the configured dataset path, or the default.
func (c *Config) DatasetPath() string {
	if c.Dataset == nil || c.Dataset.Path == "" {
		return DefaultDatasetFile
	}
	return c.Dataset.Path
}

// Default configuration values.
const (
	DefaultDatasetFile = "movies.csv"
	DefaultEngineType  = "duckdb"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
