package pdf

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Paper size in inches. Page margins come from the template's @page rule.
const (
	letterWidthInches  = 8.5
	letterHeightInches = 11.0
)

// Engine names accepted by NewEngine.
const (
	EngineExec = "exec"
	EngineCDP  = "cdp"
	EngineRod  = "rod"
)

// Engine prints the page at fileURL to outPath using the browser executable.
type Engine interface {
	PrintToPDF(ctx context.Context, browser, fileURL, outPath string) error
}

// NewEngine returns the engine registered under name. An empty name selects
// the exec engine.
func NewEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineExec:
		return &ExecEngine{Runner: ExecRunner{}}, nil
	case EngineCDP:
		return &CDPEngine{}, nil
	case EngineRod:
		return &RodEngine{}, nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q (expected %s, %s or %s)", name, EngineExec, EngineCDP, EngineRod)
	}
}

// ChromeArgs returns the headless print-to-pdf command line for url.
func ChromeArgs(outPath, url string) []string {
	return []string{
		"--headless",
		"--disable-gpu",
		"--disable-dev-shm-usage",
		"--no-sandbox",
		"--no-pdf-header-footer",
		"--print-to-pdf-no-header",
		"--print-to-pdf=" + outPath,
		url,
	}
}

// ExecEngine runs the browser binary in headless print-to-pdf mode and waits
// for it to exit. No timeout is applied.
type ExecEngine struct {
	Runner Runner
}

// PrintToPDF implements Engine.
func (e *ExecEngine) PrintToPDF(ctx context.Context, browser, fileURL, outPath string) error {
	args := ChromeArgs(outPath, fileURL)
	command := strings.Join(append([]string{browser}, args...), " ")
	log.Printf("[PDF] Running %s", command)

	res, err := e.Runner.Run(ctx, browser, args...)
	if err != nil {
		return &ExecError{Command: command, ExitCode: res.ExitCode, Cause: err}
	}
	if res.ExitCode != 0 {
		return &ExecError{
			Command:  command,
			ExitCode: res.ExitCode,
			Output:   combinedOutput(res),
		}
	}
	return nil
}

func combinedOutput(res Result) string {
	var parts []string
	for _, s := range []string{res.Stderr, res.Stdout} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
