package config

import (
	"fmt"
	"strings"

	"github.com/nibzard/kanban-go/internal/boarddir"
)

// Default values.
const (
	DefaultLogDir    = "~/.kanban/logs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultAltScreen = true
)

// DefaultSeedFile is the seed path relative to the project root.
var DefaultSeedFile = boarddir.SeedPath("")

// DefaultSchemaFile is the schema path relative to the project root.
var DefaultSchemaFile = boarddir.SchemaPath("")

// Config holds the full configuration for kanban.
type Config struct {
	// Paths
	SeedFile   string `toml:"seed_file"`
	SchemaFile string `toml:"schema_file"`
	LogDir     string `toml:"log_dir"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// TUI
	AltScreen bool `toml:"alt_screen"`

	// Computed
	ProjectRoot string   `toml:"-"`
	Files       []string `toml:"-"` // config files that were applied, in order
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.SeedFile = DefaultSeedFile
	cfg.SchemaFile = DefaultSchemaFile
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.AltScreen = DefaultAltScreen
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug|info|warn|error|fatal)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q (expected text|json|logfmt)", c.LogFormat)
	}
	return nil
}
