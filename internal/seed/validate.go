package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/utils"
)

//go:embed board.schema.json
var schemaJSON []byte

// embeddedSchemaURL matches the $id of the embedded schema.
const embeddedSchemaURL = "https://github.com/nibzard/kanban-go/board.schema.json"

// Schema returns a copy of the embedded JSON Schema document.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dotted path to the error location, e.g. tasks[0].stage
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath is a JSON Schema file overriding the embedded schema.
	// A missing or broken file is reported as a warning and the embedded
	// schema is used instead.
	SchemaPath string
	// SkipSchema disables JSON Schema validation and runs only the minimal
	// structural checks.
	SkipSchema bool
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema string // schema path or URL used; empty when minimal checks ran
}

// Validate validates the seed file.
func (f *File) Validate(opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	if opts.SkipSchema {
		f.validateMinimal(result)
	} else {
		schema, source := compileSchema(opts.SchemaPath, result)
		if schema == nil {
			result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
			f.validateMinimal(result)
		} else {
			result.UsedSchema = source
			f.validateWithSchema(schema, result)
		}
	}

	// Id uniqueness spans items, which the schema cannot express.
	f.checkUniqueIDs(result)

	return result
}

// compileSchema compiles the schema at path, falling back to the embedded
// schema. It returns nil only if the embedded schema itself fails.
func compileSchema(path string, result *ValidationResult) (*jsonschema.Schema, string) {
	if path != "" {
		if schema, err := compileSchemaFile(path); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			return schema, path
		}
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(embeddedSchemaURL, bytes.NewReader(schemaJSON)); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("embedded schema: %v", err))
		return nil, ""
	}
	schema, err := compiler.Compile(embeddedSchemaURL)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("embedded schema: %v", err))
		return nil, ""
	}
	return schema, embeddedSchemaURL
}

func compileSchemaFile(path string) (*jsonschema.Schema, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid schema path: %v", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file not found: %s", absPath)
		}
		return nil, fmt.Errorf("failed to read schema file: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema file: %v", err)
	}
	return schema, nil
}

func (f *File) validateWithSchema(schema *jsonschema.Schema, result *ValidationResult) {
	if f.raw != nil {
		if err := schema.Validate(f.raw); err != nil {
			result.Valid = false
			appendSchemaErrors(result, err)
		}
		return
	}

	// Built in memory: the validator wants generic JSON values, so
	// round-trip the document.
	data, err := json.Marshal(f)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to marshal seed for validation: %w", err),
		})
		return
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal seed for validation: %w", err),
		})
		return
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// validateMinimal performs structural validation without JSON Schema.
func (f *File) validateMinimal(result *ValidationResult) {
	if f.SchemaVersion != SchemaVersion {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "schema_version",
			Err:  fmt.Errorf("expected %d, got %d", SchemaVersion, f.SchemaVersion),
		})
	}

	if f.Tasks == nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "tasks",
			Err:  fmt.Errorf("missing required field"),
		})
		return
	}

	for i := range f.Tasks {
		if err := validateRecordMinimal(&f.Tasks[i], fmt.Sprintf("tasks[%d]", i)); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
}

func validateRecordMinimal(r *Record, path string) *ValidationError {
	if r.ID < 1 {
		return &ValidationError{
			Path: path + ".id",
			Err:  fmt.Errorf("must be >= 1, got %d", r.ID),
		}
	}
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{
			Path: path + ".title",
			Err:  fmt.Errorf("missing required field"),
		}
	}
	if !board.Stage(r.Stage).Valid() {
		return &ValidationError{
			Path: path + ".stage",
			Err:  fmt.Errorf("invalid stage %q, must be one of: todo, in_progress, done", r.Stage),
		}
	}
	return nil
}

func (f *File) checkUniqueIDs(result *ValidationResult) {
	first := make(map[int64]int, len(f.Tasks))
	for i, r := range f.Tasks {
		if j, ok := first[r.ID]; ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("tasks[%d].id", i),
				Err:  fmt.Errorf("duplicate id %d (first used by tasks[%d])", r.ID, j),
			})
			continue
		}
		first[r.ID] = i
	}
}
