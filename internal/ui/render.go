package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/kanban-go/internal/board"
)

// RenderOptions controls the plain-text board snapshot.
type RenderOptions struct {
	// Stages limits output to these stages; empty means all, in board order.
	Stages []board.Stage
	// Descriptions prints task descriptions under their titles.
	Descriptions bool
}

// RenderBoard writes a plain-text snapshot of every column to w.
func RenderBoard(w io.Writer, store *board.Store) error {
	return Render(w, store, RenderOptions{Descriptions: true})
}

// Render writes a plain-text snapshot of the board to w.
func Render(w io.Writer, store *board.Store, opts RenderOptions) error {
	stages := opts.Stages
	if len(stages) == 0 {
		stages = board.Stages()
	}

	var b strings.Builder
	for i, stage := range stages {
		if i > 0 {
			b.WriteString("\n")
		}
		tasks := store.TasksByStage(stage)
		fmt.Fprintf(&b, "%s (%d)\n", stage.Label(), len(tasks))
		if len(tasks) == 0 {
			b.WriteString("  (empty)\n")
			continue
		}
		for _, task := range tasks {
			fmt.Fprintf(&b, "  #%d %s\n", task.ID, task.Title)
			if opts.Descriptions && task.Description != "" {
				for _, line := range strings.Split(task.Description, "\n") {
					fmt.Fprintf(&b, "      %s\n", line)
				}
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
