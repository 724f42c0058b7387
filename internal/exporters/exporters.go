// Package exporters serializes a resume to JSON, YAML, CSV and plain text.
package exporters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/jonathan/resume-export/internal/flatten"
	"github.com/jonathan/resume-export/internal/types"
)

// JSON returns the normalized resume as 2-space indented JSON with a
// trailing newline. Characters such as <, > and & are written as-is.
func JSON(r *types.Resume) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.String(), nil
}

// YAML returns the resume as block-style YAML. Mappings keep document order.
func YAML(r *types.Resume) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return string(data), nil
}

// CSV returns a two-column path,value table of every leaf in the resume.
func CSV(r *types.Resume) (string, error) {
	tree, err := flatten.FromValue(r)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("path,value\n")
	for _, row := range flatten.Rows(tree) {
		if row.Path == "" {
			continue
		}
		sb.WriteString(csvEscape(row.Path))
		sb.WriteByte(',')
		sb.WriteString(csvEscape(row.Value))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// csvEscape quotes a field only when it contains a comma, a quote or a
// newline. encoding/csv also quotes on leading spaces and \r, which would
// change the output.
func csvEscape(value string) string {
	if strings.ContainsAny(value, "\",\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// Text returns a plain-text rendering of the resume.
func Text(r *types.Resume) string {
	var lines []string

	lines = append(lines, r.Name, r.Title, "")

	lines = append(lines,
		"CONTACT",
		"Email: "+r.Contact.Email,
		"Phone: "+r.Contact.Phone,
		"Location: "+r.Contact.Location,
		"LinkedIn: "+r.Contact.LinkedIn,
		"GitHub: "+r.Contact.GitHub,
		"",
	)

	lines = append(lines, "SUMMARY", DefaultSummary(r), "")

	lines = append(lines, "SKILLS")
	for _, group := range r.Skills.Entries() {
		lines = append(lines, fmt.Sprintf("%s: %s", group.Key, strings.Join(group.Value, " | ")))
	}
	lines = append(lines, "")

	lines = append(lines, "EXPERIENCE")
	for _, job := range r.Experience {
		lines = append(lines,
			fmt.Sprintf("%s — %s", job.Company, job.Role),
			fmt.Sprintf("%s / %s", job.DatesDisplay, job.Location),
		)
		for _, h := range job.Highlights {
			lines = append(lines, "- "+h)
		}
		lines = append(lines, "")
	}

	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace) + "\n"
}

// DefaultSummary returns the "default" summary, else the first one, else "".
func DefaultSummary(r *types.Resume) string {
	if s, ok := r.Summaries.Get("default"); ok {
		return s
	}
	if _, s, ok := r.Summaries.First(); ok {
		return s
	}
	return ""
}
