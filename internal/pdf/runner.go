// Package pdf prints rendered resume HTML to PDF with a headless
// Chrome/Chromium browser.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result is the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner starts a process and waits for it. The error is non-nil only when
// the process could not be started; a non-zero exit is reported in Result.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct{}

// Run executes name with args and captures stdout and stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1}, err
	}

	result := Result{}
	waitErr := cmd.Wait()
	result.Stdout = outBuf.String()
	result.Stderr = errBuf.String()

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		result.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, waitErr
	}
	return result, nil
}
