package config

import (
	"os"

	"github.com/nibzard/kanban-go/internal/utils"
)

// loadFromEnv overrides config from KANBAN_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("KANBAN_SEED"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("KANBAN_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("KANBAN_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("KANBAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KANBAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("KANBAN_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = utils.BoolFromString(v)
	}
	if v := os.Getenv("KANBAN_LOG_CALLER"); v != "" {
		cfg.LogCaller = utils.BoolFromString(v)
	}
	if v := os.Getenv("KANBAN_ALT_SCREEN"); v != "" {
		cfg.AltScreen = utils.BoolFromString(v)
	}
}
