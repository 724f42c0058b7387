// Package pipeline writes a loaded resume in every requested format.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-export/internal/exporters"
	"github.com/jonathan/resume-export/internal/rendering"
	"github.com/jonathan/resume-export/internal/sanitize"
	"github.com/jonathan/resume-export/internal/types"
)

// ProgressEvent represents a progress update during an export
type ProgressEvent struct {
	Format  Format `json:"format"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// ProgressCallback is called before and after each file is written
type ProgressCallback func(event ProgressEvent)

// PDFExporter prints rendered HTML to a PDF file.
type PDFExporter interface {
	Export(ctx context.Context, html, outPath string) error
}

// Options holds configuration for an export run
type Options struct {
	InputPath    string
	OutDir       string
	Formats      []Format
	SummaryKey   string
	RoleKey      string
	TemplatePath string
	ASCII        bool // sanitize txt and csv output
	PDF          PDFExporter
	OnProgress   ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, format Format, message, path string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Format: format, Message: message, Path: path})
	}
}

// OutputPath returns <outDir>/<input base name without extension>.<ext>.
func OutputPath(outDir, inputPath string, format Format) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+"."+string(format))
}

// Run creates OutDir and writes one file per requested format, one at a
// time, in the order json, yaml, csv, txt, html, pdf. On failure it returns
// the paths already written along with the error; those files are kept.
func Run(ctx context.Context, r *types.Resume, opts Options) ([]string, error) {
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.OutDir, err)
	}

	requested := make(map[Format]bool, len(opts.Formats))
	for _, f := range opts.Formats {
		requested[f] = true
	}

	var written []string
	var html *string

	renderOnce := func() (string, error) {
		if html != nil {
			return *html, nil
		}
		out, err := rendering.RenderHTML(r, rendering.Options{
			SummaryKey:   opts.SummaryKey,
			RoleKey:      opts.RoleKey,
			TemplatePath: opts.TemplatePath,
		})
		if err != nil {
			return "", err
		}
		html = &out
		return out, nil
	}

	for _, format := range writeOrder {
		if !requested[format] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return written, err
		}

		outPath := OutputPath(opts.OutDir, opts.InputPath, format)
		emitProgress(&opts, format, "Exporting "+strings.ToUpper(string(format)), outPath)

		if format == FormatPDF {
			content, err := renderOnce()
			if err != nil {
				return written, err
			}
			if opts.PDF == nil {
				return written, fmt.Errorf("no PDF exporter configured")
			}
			if err := opts.PDF.Export(ctx, content, outPath); err != nil {
				return written, err
			}
		} else {
			content, err := produce(format, r, &opts, renderOnce)
			if err != nil {
				return written, err
			}
			if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", outPath, err)
			}
		}

		written = append(written, outPath)
		emitProgress(&opts, format, "Wrote "+outPath, outPath)
	}

	return written, nil
}

func produce(format Format, r *types.Resume, opts *Options, renderHTML func() (string, error)) (string, error) {
	switch format {
	case FormatJSON:
		return exporters.JSON(r)
	case FormatYAML:
		return exporters.YAML(r)
	case FormatCSV:
		out, err := exporters.CSV(r)
		if err != nil || !opts.ASCII {
			return out, err
		}
		return sanitize.ASCII(out), nil
	case FormatTXT:
		out := exporters.Text(r)
		if opts.ASCII {
			out = sanitize.ASCII(out)
		}
		return out, nil
	case FormatHTML:
		return renderHTML()
	default:
		return "", &FormatError{Value: string(format), Message: "unsupported format"}
	}
}
