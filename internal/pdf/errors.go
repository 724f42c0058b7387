package pdf

import (
	"fmt"
	"strings"
)

// BrowserNotFoundError is returned when no Chrome/Chromium could be located.
type BrowserNotFoundError struct {
	Candidates []string
}

func (e *BrowserNotFoundError) Error() string {
	return "PDF export requires Chrome/Chromium. Install Google Chrome or set " +
		EnvChromePath + " to a Chromium-based browser executable."
}

// ExecError represents a browser process that failed to produce a PDF
type ExecError struct {
	Command  string
	ExitCode int
	Output   string
	Cause    error
}

func (e *ExecError) Error() string {
	var sb strings.Builder
	sb.WriteString("PDF export failed while running Chrome/Chromium.\n\n")
	sb.WriteString(fmt.Sprintf("Command: %s\n", e.Command))
	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf("Error: %v\n", e.Cause))
	} else {
		sb.WriteString(fmt.Sprintf("Exit code: %d\n", e.ExitCode))
	}
	if e.Output != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Output)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (e *ExecError) Unwrap() error {
	return e.Cause
}

// EngineError represents a failure inside a DevTools-protocol engine
type EngineError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s engine: %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s engine: %s", e.Engine, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}
