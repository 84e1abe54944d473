// Package cmd implements the CLI command structure for kanban.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/boarddir"
	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/seed"
	"github.com/nibzard/kanban-go/internal/stats"
	"github.com/nibzard/kanban-go/internal/ui"
	"github.com/nibzard/kanban-go/internal/utils"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// Run executes the kanban CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kanban", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	a := &app{
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
		logger: logging.New(stderr, logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)),
	}
	a.logger.Debug("config loaded", "files", cfg.Files, "seed", cfg.SeedFile)

	// No args or a leading flag means the default command.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return a.tuiCommand(ctx, remainingArgs)
	case "ls":
		return a.lsCommand(remainingArgs)
	case "doctor":
		return a.doctorCommand(remainingArgs)
	case "tail":
		return a.tailCommand(ctx, remainingArgs)
	case "mean":
		return a.meanCommand(remainingArgs)
	case "schema":
		return a.schemaCommand(remainingArgs)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// loadBoard reads the configured seed file (or the built-in seed),
// validates it and builds the store.
func (a *app) loadBoard() (*board.Store, error) {
	f, found, err := seed.LoadOrDefault(a.cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	if !found {
		a.logger.Debug("seed file not found, using built-in tasks", "path", a.cfg.SeedFile)
	}

	res := f.Validate(seed.ValidationOptions{SchemaPath: a.schemaPathIfPresent()})
	for _, w := range res.Warnings {
		a.logger.Warn(w)
	}
	if !res.Valid {
		return nil, fmt.Errorf("invalid seed file %s: %w", a.cfg.SeedFile, errors.Join(res.Errors...))
	}

	store, err := f.NewStore()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("board loaded", "tasks", store.Len(), "schema", res.UsedSchema)
	return store, nil
}

// schemaPathIfPresent returns the configured schema file when it exists, so
// the default path falls back to the embedded schema without a warning.
func (a *app) schemaPathIfPresent() string {
	if a.cfg.SchemaFile == "" {
		return ""
	}
	if _, err := os.Stat(a.cfg.SchemaFile); err != nil && a.cfg.SchemaFile == a.defaultSchemaPath() {
		return ""
	}
	return a.cfg.SchemaFile
}

func (a *app) defaultSchemaPath() string {
	return boarddir.SchemaPath(a.cfg.ProjectRoot)
}

// tuiCommand runs the interactive board.
func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kanban tui", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store, err := a.loadBoard()
	if err != nil {
		return err
	}

	tuiLogger := logging.Discard()
	runLog, err := logging.OpenRunLog(a.cfg.LogDir, a.cfg.ProjectRoot)
	if err != nil {
		a.logger.Warn("session log disabled", "err", err)
	} else {
		defer runLog.Close()
		opts := logging.OptionsFromConfig(a.cfg.LogLevel, a.cfg.LogFormat, true, a.cfg.LogCaller)
		tuiLogger = logging.New(runLog.Writer(), opts)
		tuiLogger.Info("session started", "run", runLog.RunID, "seed", a.cfg.SeedFile)
	}

	if err := ui.RunTUI(ctx, store, ui.WithAltScreen(a.cfg.AltScreen), ui.WithLogger(tuiLogger)); err != nil {
		return err
	}
	if runLog != nil {
		a.logger.Debug("session log written", "path", runLog.Path)
	}
	return nil
}

// lsCommand prints the seeded board, optionally limited to some stages.
func (a *app) lsCommand(args []string) error {
	fs := flag.NewFlagSet("kanban ls", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	stageFilter := fs.String("stage", "", "Only show these stages (comma-separated: todo,in_progress,done)")
	verbose := fs.Bool("v", false, "Show task descriptions")

	remaining, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 && *stageFilter == "" {
		*stageFilter = remaining[0]
	}

	var stages []board.Stage
	for _, name := range utils.SplitAndTrim(*stageFilter, ",") {
		stage, err := board.ParseStage(name)
		if err != nil {
			return err
		}
		stages = append(stages, stage)
	}

	store, err := a.loadBoard()
	if err != nil {
		return err
	}
	return ui.Render(a.stdout, store, ui.RenderOptions{Stages: stages, Descriptions: *verbose})
}

// parseInterspersed parses fs over args, allowing flags after positional
// arguments. It returns the positional arguments in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

// tailCommand prints the latest TUI session log of this project.
func (a *app) tailCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kanban tail", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logDir, err := logging.ProjectLogDir(a.cfg.LogDir, a.cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("finding log directory: %w", err)
	}
	logs, err := logging.ListRunLogs(logDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if len(logs) == 0 {
		fmt.Fprintln(a.stdout, "No log files found.")
		return nil
	}

	// Headers go to stderr so stdout carries only log lines.
	fmt.Fprintf(a.stderr, "Tailing: %s\n", logs[0])
	if *follow {
		fmt.Fprintln(a.stderr, "(Ctrl+C to stop)")
	}
	return logging.TailLog(ctx, a.stdout, logs[0], *n, *follow)
}

// meanCommand prints the scores and their mean.
func (a *app) meanCommand(args []string) error {
	scores, err := stats.ParseScores(args...)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		scores = stats.SampleScores()
	}

	fmt.Fprintf(a.stdout, "Notes: %s\n", stats.FormatScores(scores))
	fmt.Fprintf(a.stdout, "Moyenne: %s\n", stats.FormatMean(stats.Mean(scores)))
	return nil
}

// schemaCommand prints the embedded schema or scaffolds .kanban/.
func (a *app) schemaCommand(args []string) error {
	fs := flag.NewFlagSet("kanban schema", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	initDir := fs.Bool("init", false, "Write .kanban/board.json, .kanban/board.schema.json and an example .kanban/kanban.toml")
	force := fs.Bool("force", false, "Overwrite existing files with --init")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if !*initDir {
		_, err := a.stdout.Write(seed.Schema())
		return err
	}

	seedPath := boarddir.SeedPath(a.cfg.ProjectRoot)
	schemaPath := a.defaultSchemaPath()
	if !*force {
		for _, p := range []string{seedPath, schemaPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			}
		}
	}

	if err := seed.Default().Save(seedPath); err != nil {
		return err
	}
	if err := os.WriteFile(schemaPath, seed.Schema(), 0644); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	fmt.Fprintf(a.stdout, "Wrote %s\n", seedPath)
	fmt.Fprintf(a.stdout, "Wrote %s\n", schemaPath)

	// The example config is only written once; it mirrors the defaults.
	configPath := boarddir.ConfigPath(a.cfg.ProjectRoot)
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}
	if err := os.WriteFile(configPath, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Fprintf(a.stdout, "Wrote %s\n", configPath)
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "kanban version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Kanban - a three-column task board for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  kanban [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui              Open the interactive board (default command)")
	fmt.Fprintln(w, "  ls [stage]       Print the board, or only some stages")
	fmt.Fprintln(w, "  doctor           Check config, seed file and log directory")
	fmt.Fprintln(w, "  tail             Print the latest board session log")
	fmt.Fprintln(w, "  mean [scores]    Print the mean of the given scores")
	fmt.Fprintln(w, "  schema           Print the seed file JSON Schema")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -stage string")
	fmt.Fprintln(w, "        Only show these stages (todo|in_progress|done, comma-separated)")
	fmt.Fprintln(w, "  -v    Show task descriptions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options:")
	fmt.Fprintln(w, "  -f, -follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Doctor Options:")
	fmt.Fprintln(w, "  -v    Show every check, including passing ones")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Schema Options:")
	fmt.Fprintln(w, "  -init")
	fmt.Fprintln(w, "        Write .kanban/board.json, .kanban/board.schema.json and .kanban/kanban.toml")
	fmt.Fprintln(w, "  -force")
	fmt.Fprintln(w, "        Overwrite existing files with -init")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Board keys:")
	fmt.Fprintln(w, "  ←/→ h/l column   ↑/↓ k/j card   enter/m next stage   d/x delete")
	fmt.Fprintln(w, "  a/n/tab new task   ? help   q quit")
	fmt.Fprintln(w, "  In the form: tab switch field, enter (title) or ctrl+s add, esc back")
}
