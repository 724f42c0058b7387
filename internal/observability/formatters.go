// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-export/internal/pipeline"
	"github.com/jonathan/resume-export/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// Status prints a single status line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Status(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PrintResume outputs a summary of the loaded resume.
func (p *Printer) PrintResume(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", r.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", r.Title))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", r.Contact.Email))
	sb.WriteString("\n")

	if len(r.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(r.Experience)))
		count := min(len(r.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := r.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s", job.Company, job.Role))
			if job.CurrentRole() {
				sb.WriteString(" (current)")
			}
			sb.WriteString("\n")
		}
		if len(r.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Skill groups: %s\n", joinOrNone(r.Skills.Keys())))
	sb.WriteString(fmt.Sprintf("Summaries:    %s\n", joinOrNone(r.Summaries.Keys())))
	if r.RoleTargets != nil {
		sb.WriteString(fmt.Sprintf("Role targets: %s\n", joinOrNone(r.RoleTargets.Keys())))
	}

	p.printBox("LOADED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProgress prints a pipeline progress event.
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	if strings.HasPrefix(event.Message, "Exporting") {
		p.Status("%s...", event.Message)
	}
}

// PrintManifest lists the files written by an export.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintManifest(paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintln(p.out, "Wrote:")
	for _, path := range paths {
		fmt.Fprintf(p.out, "- %s\n", path)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
