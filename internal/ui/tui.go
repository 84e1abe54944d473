// Package ui provides the terminal board and plain-text rendering.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/kanban-go/internal/board"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	altScreen bool
	logger    *log.Logger
	input     io.Reader
	output    io.Writer
}

// WithAltScreen draws the board on the terminal's alternate screen.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithLogger sets the logger receiving board actions.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		c.logger = logger
	}
}

// WithIO overrides the program's input and output. The TTY check is skipped
// when the output is not os.Stdout.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI runs the interactive board over store until the user quits or ctx
// is cancelled.
func RunTUI(ctx context.Context, store *board.Store, opts ...TUIOption) error {
	c := &tuiConfig{
		altScreen: true,
		output:    os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.output == os.Stdout && !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY (try `kanban ls`)")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(c.output)}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	model := NewModel(store, c.logger)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return err
	}
	model.logger.Info("board closed", "tasks", store.Len())
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
