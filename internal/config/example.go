package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# kanban configuration file
# Values can be overridden by KANBAN_* environment variables or CLI flags.

# Seed file loaded once at startup (JSON, or YAML with a .yaml/.yml extension).
# The built-in example tasks are used when the file does not exist.
seed_file = ".kanban/board.json"

# Schema used to validate the seed file (the built-in schema is used if missing)
schema_file = ".kanban/board.schema.json"

# Log directory for TUI sessions (supports ~ expansion)
log_dir = "~/.kanban/logs"

# Logging
log_level = "info"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = false
log_caller = false

# Draw the board on the terminal's alternate screen
alt_screen = true
`
}
