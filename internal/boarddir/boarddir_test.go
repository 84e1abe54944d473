package boarddir

import (
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) string
		workDir string
		want    string
	}{
		{"dir empty", DirPath, "", ".kanban"},
		{"dir dot", DirPath, ".", ".kanban"},
		{"dir nested", DirPath, "proj", filepath.Join("proj", ".kanban")},
		{"seed relative", SeedPath, "", filepath.Join(".kanban", "board.json")},
		{"seed nested", SeedPath, "proj", filepath.Join("proj", ".kanban", "board.json")},
		{"schema", SchemaPath, "proj", filepath.Join("proj", ".kanban", "board.schema.json")},
		{"config", ConfigPath, ".", filepath.Join(".kanban", "kanban.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.workDir); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
