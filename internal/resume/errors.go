package resume

import (
	"fmt"
	"strings"
)

// LoadError represents an error reading the resume file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a document that is not well-formed JSON
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InputNotFoundError is returned when no default input file exists.
type InputNotFoundError struct {
	Dir        string
	Candidates []string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("no resume input found in %s (looked for %s); pass --input <path>",
		e.Dir, strings.Join(e.Candidates, ", "))
}
