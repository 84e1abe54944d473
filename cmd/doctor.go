package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/seed"
)

// doctorCommand checks config, seed file and log directory.
func (a *app) doctorCommand(args []string) error {
	fs := flag.NewFlagSet("kanban doctor", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	w := a.stdout
	cfg := a.cfg
	fmt.Fprintln(w, "Kanban Doctor")
	fmt.Fprintln(w, "=============")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintf(w, "Project root: %s\n", cfg.ProjectRoot)
	if _, err := os.Stat(cfg.ProjectRoot); err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config:")
	if len(cfg.Files) == 0 {
		fmt.Fprintln(w, "  ✅ Files: (defaults only)")
	} else {
		fmt.Fprintf(w, "  ✅ Files: %s\n", strings.Join(cfg.Files, ", "))
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else if *verbose {
		fmt.Fprintf(w, "  ✅ Log level: %s, format: %s\n", cfg.LogLevel, cfg.LogFormat)
		fmt.Fprintf(w, "  ✅ Alternate screen: %v\n", cfg.AltScreen)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Seed file: %s\n", cfg.SeedFile)
	f, found, err := seed.LoadOrDefault(cfg.SeedFile)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	case !found:
		fmt.Fprintln(w, "  ✅ Not found, the built-in tasks are used (create one with `kanban schema --init`)")
	default:
		fmt.Fprintln(w, "  ✅ Found")
	}

	if f != nil {
		res := f.Validate(seed.ValidationOptions{SchemaPath: a.schemaPathIfPresent()})
		if res.UsedSchema != "" {
			fmt.Fprintf(w, "  ✅ Schema: %s\n", res.UsedSchema)
		}
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "  ⚠️  %s\n", warning)
		}
		if res.Valid {
			fmt.Fprintln(w, "  ✅ Valid")
		} else {
			for _, verr := range res.Errors {
				fmt.Fprintf(w, "  ❌ %v\n", verr)
			}
			allOK = false
		}

		if res.Valid {
			if store, err := f.NewStore(); err != nil {
				fmt.Fprintf(w, "  ❌ %v\n", err)
				allOK = false
			} else {
				counts := store.Counts()
				parts := make([]string, 0, len(counts))
				for _, stage := range board.Stages() {
					parts = append(parts, fmt.Sprintf("%s: %d", stage.Label(), counts[stage]))
				}
				fmt.Fprintf(w, "  ✅ Tasks: %d (%s)\n", store.Len(), strings.Join(parts, ", "))
			}
		}
	}
	fmt.Fprintln(w)

	logDir, err := logging.ProjectLogDir(cfg.LogDir, cfg.ProjectRoot)
	fmt.Fprintf(w, "Log dir: %s\n", cfg.LogDir)
	if err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else {
		logs, err := logging.ListRunLogs(logDir)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  ❌ %v\n", err)
			allOK = false
		case len(logs) == 0:
			fmt.Fprintln(w, "  ✅ No session logs yet")
		default:
			fmt.Fprintf(w, "  ✅ %d session log(s)\n", len(logs))
			if *verbose {
				fmt.Fprintf(w, "  Latest: %s\n", logs[0])
			}
		}
	}
	fmt.Fprintln(w)

	if !allOK {
		fmt.Fprintln(w, "Some checks failed.")
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}
