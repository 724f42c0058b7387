package pdf

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Exporter turns rendered HTML into a PDF file.
type Exporter struct {
	Finder *Finder
	Engine Engine
}

// NewExporter returns an Exporter using the real environment to find the
// browser.
func NewExporter(engine Engine) *Exporter {
	return &Exporter{Finder: NewFinder(), Engine: engine}
}

// Export writes html to a private temporary directory, prints it to outPath
// and removes the directory again, whether or not printing succeeded.
// Nothing is written when no browser is available.
func (e *Exporter) Export(ctx context.Context, html, outPath string) error {
	browser, ok := e.Finder.Find(ctx)
	if !ok {
		return &BrowserNotFoundError{Candidates: e.Finder.Candidates}
	}

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "resume-export-pdf-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0600); err != nil {
		return fmt.Errorf("failed to write temporary HTML: %w", err)
	}

	return e.Engine.PrintToPDF(ctx, browser, FileURL(htmlPath), absOut)
}

// FileURL returns the file:// URL of an absolute path.
func FileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
