// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// isolate points HOME and XDG_CONFIG_HOME at empty directories and moves
// into a fresh project directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{
		"KANBAN_SEED", "KANBAN_SCHEMA", "KANBAN_LOG_DIR", "KANBAN_LOG_LEVEL",
		"KANBAN_LOG_FORMAT", "KANBAN_LOG_TIMESTAMPS", "KANBAN_LOG_CALLER", "KANBAN_ALT_SCREEN",
	} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	if prev, err := os.Getwd(); err != nil {
		t.Fatal(err)
	} else {
		t.Cleanup(func() { _ = os.Chdir(prev) })
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	return wd
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.SeedFile != DefaultSeedFile {
		t.Errorf("SeedFile: got %q, want %q", cfg.SeedFile, DefaultSeedFile)
	}
	if cfg.SchemaFile != DefaultSchemaFile {
		t.Errorf("SchemaFile: got %q, want %q", cfg.SchemaFile, DefaultSchemaFile)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging: got %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.AltScreen {
		t.Error("AltScreen: got false, want true")
	}
}

func TestLoadDefaults(t *testing.T) {
	wd := isolate(t)

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProjectRoot != wd {
		t.Errorf("ProjectRoot: got %q, want %q", cfg.ProjectRoot, wd)
	}
	if want := filepath.Join(wd, ".kanban", "board.json"); cfg.SeedFile != want {
		t.Errorf("SeedFile: got %q, want %q", cfg.SeedFile, want)
	}
	if want := filepath.Join(wd, ".kanban", "board.schema.json"); cfg.SchemaFile != want {
		t.Errorf("SchemaFile: got %q, want %q", cfg.SchemaFile, want)
	}
	home := os.Getenv("HOME")
	if want := filepath.Join(home, ".kanban", "logs"); cfg.LogDir != want {
		t.Errorf("LogDir: got %q, want %q", cfg.LogDir, want)
	}
	if len(cfg.Files) != 0 {
		t.Errorf("Files: got %v, want none", cfg.Files)
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KANBAN_SEED", "/tmp/seed.yaml")
	t.Setenv("KANBAN_LOG_LEVEL", "debug")
	t.Setenv("KANBAN_LOG_FORMAT", "json")
	t.Setenv("KANBAN_LOG_TIMESTAMPS", "yes")
	t.Setenv("KANBAN_LOG_CALLER", "1")
	t.Setenv("KANBAN_ALT_SCREEN", "false")

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg)

	if cfg.SeedFile != "/tmp/seed.yaml" {
		t.Errorf("SeedFile: got %q", cfg.SeedFile)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("logging: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.LogTimestamps || !cfg.LogCaller {
		t.Errorf("LogTimestamps/LogCaller: got %v/%v, want true/true", cfg.LogTimestamps, cfg.LogCaller)
	}
	if cfg.AltScreen {
		t.Error("AltScreen: got true, want false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanban.toml")
	content := `seed_file = "custom.yaml"
log_level = "warn"
alt_screen = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	setDefaults(cfg)
	if err := loadConfigFile(cfg, path); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.SeedFile != "custom.yaml" {
		t.Errorf("SeedFile: got %q", cfg.SeedFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if cfg.AltScreen {
		t.Error("AltScreen: got true, want false")
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat changed to %q", cfg.LogFormat)
	}
	if len(cfg.Files) != 1 || cfg.Files[0] != path {
		t.Errorf("Files: got %v", cfg.Files)
	}
}

func TestLoadConfigFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanban.toml")
	if err := os.WriteFile(path, []byte("max_iterations = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	err := loadConfigFile(cfg, path)
	if err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Errorf("loadConfigFile error = %v, want unknown keys", err)
	}
}

func TestLoadPriority(t *testing.T) {
	wd := isolate(t)

	userDir := filepath.Join(os.Getenv("HOME"), ".kanban")
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	userCfg := "log_level = \"debug\"\nlog_format = \"json\"\nseed_file = \"user.json\"\n"
	if err := os.WriteFile(filepath.Join(userDir, "kanban.toml"), []byte(userCfg), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wd, "kanban.toml"), []byte("log_format = \"logfmt\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KANBAN_SEED", "env.json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"--log-level", "error", "ls"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want flag value error", cfg.LogLevel)
	}
	if cfg.LogFormat != "logfmt" {
		t.Errorf("LogFormat: got %q, want project value logfmt", cfg.LogFormat)
	}
	if want := filepath.Join(wd, "env.json"); cfg.SeedFile != want {
		t.Errorf("SeedFile: got %q, want %q", cfg.SeedFile, want)
	}
	if len(cfg.Files) != 2 {
		t.Errorf("Files: got %v, want user and project", cfg.Files)
	}
	if args := fs.Args(); len(args) != 1 || args[0] != "ls" {
		t.Errorf("remaining args: got %v, want [ls]", args)
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	isolate(t)
	t.Setenv("KANBAN_LOG_LEVEL", "loud")

	if _, err := Load(nil, nil); err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Errorf("Load error = %v, want log_level error", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("KANBAN_TEST_DIR", "/data")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/logs", filepath.Join(home, "logs")},
		{"$KANBAN_TEST_DIR/logs", "/data/logs"},
		{"relative/path", "relative/path"},
		{"/abs/path", "/abs/path"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args := []string{"--seed", "s.json", "--schema", "x.json", "--log-format", "json", "--log-caller", "--no-alt-screen"}
	if err := parseFlags(cfg, fs, args); err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if cfg.SeedFile != "s.json" || cfg.SchemaFile != "x.json" {
		t.Errorf("paths: got %q/%q", cfg.SeedFile, cfg.SchemaFile)
	}
	if cfg.LogFormat != "json" || !cfg.LogCaller {
		t.Errorf("logging: got %q caller=%v", cfg.LogFormat, cfg.LogCaller)
	}
	if cfg.AltScreen {
		t.Error("AltScreen: got true after --no-alt-screen")
	}
}

func TestExampleConfigDecodes(t *testing.T) {
	cfg := &Config{}
	md, err := toml.Decode(ExampleConfig(), cfg)
	if err != nil {
		t.Fatalf("decode example: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		t.Errorf("example has unknown keys: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("example invalid: %v", err)
	}
}
