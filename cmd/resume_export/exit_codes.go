package main

import (
	"errors"
	"os"

	"github.com/jonathan/resume-export/internal/config"
	"github.com/jonathan/resume-export/internal/pdf"
	"github.com/jonathan/resume-export/internal/pipeline"
	"github.com/jonathan/resume-export/internal/resume"
	"github.com/jonathan/resume-export/internal/schemas"
	"github.com/jonathan/resume-export/internal/server"
)

// Exit codes for the resume_export CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // All requested files written
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, format list, port or schema file
	ExitIO         = 3 // Input not found, unreadable or unwritable files
	ExitBrowser    = 4 // Chrome/Chromium missing or failed
	ExitValidation = 5 // Resume is not valid JSON or fails the schema
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.As to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		notFound     *pdf.BrowserNotFoundError
		execErr      *pdf.ExecError
		engineErr    *pdf.EngineError
		validation   *schemas.ValidationError
		parseErr     *resume.ParseError
		usage        *usageError
		formatErr    *pipeline.FormatError
		portErr      *server.PortError
		configErr    *config.ConfigError
		schemaErr    *schemas.SchemaLoadError
		inputMissing *resume.InputNotFoundError
		loadErr      *resume.LoadError
	)

	switch {
	case errors.As(err, &notFound), errors.As(err, &execErr), errors.As(err, &engineErr):
		return ExitBrowser
	case errors.As(err, &validation), errors.As(err, &parseErr):
		return ExitValidation
	case errors.As(err, &usage), errors.As(err, &formatErr), errors.As(err, &portErr),
		errors.As(err, &configErr), errors.As(err, &schemaErr):
		return ExitUsage
	case errors.As(err, &inputMissing), errors.As(err, &loadErr),
		errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission):
		return ExitIO
	}
	return ExitGeneral
}
