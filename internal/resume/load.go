// Package resume loads resume documents: it resolves the input file, checks
// the document against the resume schema and decodes it into the data model.
package resume

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-export/internal/schemas"
	"github.com/jonathan/resume-export/internal/types"
)

// Load reads, validates and decodes the resume at path.
func Load(path string) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Parse validates and decodes a resume document. Nothing is returned unless
// the whole document conforms.
func Parse(content []byte) (*types.Resume, error) {
	if !json.Valid(content) {
		var probe any
		return nil, &ParseError{
			Message: "invalid JSON",
			Cause:   json.Unmarshal(content, &probe),
		}
	}

	if err := schemas.ValidateResume(content); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	var r types.Resume
	if err := dec.Decode(&r); err != nil {
		return nil, &ParseError{
			Message: "failed to decode resume",
			Cause:   err,
		}
	}

	applyDefaults(&r)

	if err := validateStruct(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func applyDefaults(r *types.Resume) {
	for i := range r.Experience {
		if r.Experience[i].Highlights == nil {
			r.Experience[i].Highlights = []string{}
		}
	}
	if r.Projects == nil {
		r.Projects = []any{}
	}
	if r.RoleTargets != nil {
		for _, e := range r.RoleTargets.Entries() {
			rt := e.Value
			if rt.Keywords == nil {
				rt.Keywords = []string{}
			}
			if rt.Emphasis.SkillsOrder == nil {
				rt.Emphasis.SkillsOrder = []string{}
			}
			r.RoleTargets.Set(e.Key, rt)
		}
	}
}

// validateStruct is a second gate over the decoded model.
func validateStruct(r *types.Resume) error {
	validate := validator.New()

	var fieldErrors []schemas.FieldError
	collect := func(prefix string, err error) {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			fieldErrors = append(fieldErrors, schemas.FieldError{Field: prefix, Message: err.Error()})
			return
		}
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, schemas.FieldError{
				Field:   prefix + fe.Namespace(),
				Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
	}

	if err := validate.Struct(r); err != nil {
		collect("", err)
	}
	if r.RoleTargets != nil {
		for _, e := range r.RoleTargets.Entries() {
			if err := validate.Struct(e.Value); err != nil {
				collect(fmt.Sprintf("role_targets[%s].", e.Key), err)
			}
		}
	}

	if len(fieldErrors) > 0 {
		return &schemas.ValidationError{Errors: fieldErrors}
	}
	return nil
}
