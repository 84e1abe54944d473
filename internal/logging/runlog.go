package logging

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogExt is the extension of per-run log files.
const LogExt = ".log"

// RunLog is a per-run log file under <base>/<project-slug>/<run-id>.log.
type RunLog struct {
	Dir   string
	RunID string
	Path  string
	file  *os.File
}

// OpenRunLog creates the project log directory and a fresh log file for
// this run. A relative baseDir is resolved against workDir.
func OpenRunLog(baseDir, workDir string) (*RunLog, error) {
	logDir, err := ProjectLogDir(baseDir, workDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := runID(time.Now())
	path := filepath.Join(logDir, id+LogExt)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &RunLog{
		Dir:   logDir,
		RunID: id,
		Path:  path,
		file:  file,
	}, nil
}

// Writer returns the underlying log file.
func (r *RunLog) Writer() *os.File {
	return r.file
}

// Close closes the log file.
func (r *RunLog) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// ProjectLogDir returns the log directory for the project containing
// workDir, without creating it.
func ProjectLogDir(baseDir, workDir string) (string, error) {
	if baseDir == "" {
		return "", fmt.Errorf("log base dir is empty")
	}

	resolvedWorkDir := workDir
	if resolvedWorkDir == "" {
		resolvedWorkDir = "."
	}
	if abs, err := filepath.Abs(resolvedWorkDir); err == nil {
		resolvedWorkDir = abs
	}

	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(resolvedWorkDir, baseDir)
	}
	root := projectRoot(resolvedWorkDir)
	return filepath.Join(filepath.Clean(baseDir), projectSlug(root)), nil
}

// ListRunLogs returns the run log files in logDir, newest first. A missing
// directory yields no logs.
func ListRunLogs(logDir string) ([]string, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), LogExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	// Run ids start with a UTC timestamp, so names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(logDir, name)
	}
	return paths, nil
}

// projectRoot prefers the git top level so nested directories share logs.
func projectRoot(workDir string) string {
	if _, err := exec.LookPath("git"); err == nil {
		cmd := exec.Command("git", "-C", workDir, "rev-parse", "--show-toplevel")
		if output, err := cmd.Output(); err == nil {
			if root := strings.TrimSpace(string(output)); root != "" {
				return root
			}
		}
	}
	return workDir
}

func projectSlug(root string) string {
	return fmt.Sprintf("%s-%s", slugify(filepath.Base(root)), hashPath(root))
}

func slugify(input string) string {
	if strings.TrimSpace(input) == "" {
		return "project"
	}

	var b strings.Builder
	lastUnderscore := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '.' || c == '_' || c == '-'
		if !valid {
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		}
		b.WriteByte(c)
		lastUnderscore = false
	}

	slug := strings.Trim(b.String(), "_")
	if slug == "" || slug == "." || slug == ".." {
		return "project"
	}
	return slug
}

func hashPath(input string) string {
	sum := sha1.Sum([]byte(input))
	return hex.EncodeToString(sum[:])[:8]
}

func runID(now time.Time) string {
	return fmt.Sprintf("%s-%d", now.UTC().Format("20060102-150405"), os.Getpid())
}
