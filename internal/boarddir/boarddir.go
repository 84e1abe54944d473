// Package boarddir provides constants and utilities for the .kanban directory structure.
package boarddir

import "path/filepath"

const (
	// Dir is the name of the per-project board directory.
	Dir = ".kanban"

	// DefaultSeedFile is the default seed file name (inside .kanban).
	DefaultSeedFile = "board.json"

	// DefaultSchemaFile is the default seed schema file name (inside .kanban).
	DefaultSchemaFile = "board.schema.json"

	// DefaultConfigFile is the default config file name (inside .kanban).
	DefaultConfigFile = "kanban.toml"
)

// SeedPath returns the path to the seed file within a work directory.
func SeedPath(workDir string) string {
	return joinPath(workDir, DefaultSeedFile)
}

// SchemaPath returns the path to the schema file within a work directory.
func SchemaPath(workDir string) string {
	return joinPath(workDir, DefaultSchemaFile)
}

// ConfigPath returns the path to the config file within a work directory.
func ConfigPath(workDir string) string {
	return joinPath(workDir, DefaultConfigFile)
}

// DirPath returns the path to the .kanban directory within a work directory.
func DirPath(workDir string) string {
	if workDir == "." || workDir == "" {
		return Dir
	}
	return filepath.Join(workDir, Dir)
}

func joinPath(workDir, file string) string {
	return filepath.Join(DirPath(workDir), file)
}
