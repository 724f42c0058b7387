// Package schemas provides JSON Schema validation for resume documents.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	schemafiles "github.com/jonathan/resume-export/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Fields returns the offending field paths in report order.
func (ve *ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

// ValidateResume validates a raw resume document against the embedded
// resume schema. Every violation is reported, not only the first.
func ValidateResume(doc []byte) error {
	return validate(gojsonschema.NewBytesLoader(schemafiles.Resume), schemafiles.ResumeSchemaFile, doc)
}

// ValidateJSON validates the JSON file at jsonPath against the schema file at
// schemaPath. Relative paths resolve against the working directory.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(schemaAbsPath); err != nil {
		return &SchemaLoadError{Path: schemaAbsPath, Message: "schema file not found", Cause: err}
	}

	doc, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(schemaAbsPath))
	return validate(schemaLoader, schemaAbsPath, doc)
}

// validate compiles the schema and checks doc against it. A document that is
// not JSON at all is reported as a single root violation.
func validate(schemaLoader gojsonschema.JSONLoader, schemaPath string, doc []byte) error {
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaPath,
			Message: "schema is invalid",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
