package config

import "flag"

// parseFlags defines the global flags on fs and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("kanban", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "Path to the seed file (JSON or YAML)")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to a seed schema overriding the built-in one")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in logs")

	noAltScreen := !cfg.AltScreen
	fs.BoolVar(&noAltScreen, "no-alt-screen", noAltScreen, "Render the TUI inline instead of on the alternate screen")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.AltScreen = !noAltScreen
	return nil
}
