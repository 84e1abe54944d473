// Package seed reads the tasks a board starts with.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/kanban-go/internal/board"
)

// SchemaVersion is the only seed format version understood.
const SchemaVersion = 1

// Record is one task entry of a seed file.
type Record struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Stage       string `json:"stage" yaml:"stage"`
}

// File is the seed document.
type File struct {
	SchemaVersion int      `json:"schema_version" yaml:"schema_version"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Tasks         []Record `json:"tasks" yaml:"tasks"`

	// raw is the document as read by Load, in JSON value form. Validate
	// checks it instead of the decoded fields so unknown keys are caught.
	raw interface{}
}

// Default returns the built-in seed used when no seed file exists.
func Default() *File {
	return &File{
		SchemaVersion: SchemaVersion,
		Tasks: []Record{
			{ID: 1, Title: "Configurer Vite", Description: "Initialiser le projet", Stage: string(board.StageDone)},
			{ID: 2, Title: "Créer les composants", Description: "Column, TaskCard, TaskForm", Stage: string(board.StageInProgress)},
			{ID: 3, Title: "Ajouter les styles", Description: "Utiliser Tailwind CSS", Stage: string(board.StageToDo)},
		},
	}
}

// Load reads and parses a seed file from path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
		// Round-trip through JSON so the validator sees JSON value types.
		jsonData, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
		data = jsonData
	} else if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	if err := json.Unmarshal(data, &f.raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// LoadOrDefault loads path, or returns Default when the file does not exist.
// The boolean reports whether the file was read.
func LoadOrDefault(path string) (*File, bool, error) {
	if path == "" {
		return Default(), false, nil
	}
	f, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), false, nil
		}
		return nil, false, err
	}
	return f, true, nil
}

// Save writes the seed file to path. JSON output uses 2-space indentation
// and a trailing newline.
func (f *File) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(f)
	} else {
		data, err = json.MarshalIndent(f, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal seed file: %w", err)
	}
	if !isYAML(path) {
		data = append(data, '\n')
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create seed dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}

// BoardTasks converts the records to board tasks, in file order.
func (f *File) BoardTasks() ([]board.Task, error) {
	tasks := make([]board.Task, 0, len(f.Tasks))
	for i, r := range f.Tasks {
		stage := board.Stage(r.Stage)
		if !stage.Valid() {
			return nil, &ValidationError{
				Path: fmt.Sprintf("tasks[%d].stage", i),
				Err:  fmt.Errorf("invalid stage %q", r.Stage),
			}
		}
		tasks = append(tasks, board.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Stage:       stage,
		})
	}
	return tasks, nil
}

// NewStore builds a board store from the seed.
func (f *File) NewStore() (*board.Store, error) {
	tasks, err := f.BoardTasks()
	if err != nil {
		return nil, err
	}
	store, err := board.NewWithTasks(tasks)
	if err != nil {
		return nil, fmt.Errorf("seed board: %w", err)
	}
	return store, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
