package pipeline

import (
	"fmt"
	"strings"
)

// Format is an output format name, also used as the file extension.
type Format string

// Supported formats.
const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatTXT  Format = "txt"
)

// AllFormats lists every supported format.
var AllFormats = []Format{FormatHTML, FormatPDF, FormatJSON, FormatCSV, FormatYAML, FormatTXT}

// writeOrder is the order in which Run produces files.
var writeOrder = []Format{FormatJSON, FormatYAML, FormatCSV, FormatTXT, FormatHTML, FormatPDF}

// FormatError reports an unusable --format value.
type FormatError struct {
	Value   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Value, e.Message)
}

// ParseFormats parses "all" or a comma-separated list of format names.
// Names are trimmed and lowercased; duplicates collapse.
func ParseFormats(value string) ([]Format, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "all" {
		out := make([]Format, len(AllFormats))
		copy(out, AllFormats)
		return out, nil
	}

	var formats []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(trimmed, ",") {
		name := Format(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !name.Valid() {
			return nil, &FormatError{
				Value:   string(name),
				Message: "expected all or a comma-separated list of " + FormatNames(),
			}
		}
		if !seen[name] {
			seen[name] = true
			formats = append(formats, name)
		}
	}

	if len(formats) == 0 {
		return nil, &FormatError{Value: value, Message: "no formats selected"}
	}
	return formats, nil
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	for _, known := range AllFormats {
		if f == known {
			return true
		}
	}
	return false
}

// FormatNames returns the supported names joined for messages.
func FormatNames() string {
	names := make([]string, len(AllFormats))
	for i, f := range AllFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
