package pdf

import (
	"context"
	"os"
	"path/filepath"
)

// EnvChromePath names the environment variable that points at a browser.
const EnvChromePath = "CHROME_PATH"

// DefaultCandidates are tried in order when no explicit browser is given.
var DefaultCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
}

// Finder locates a Chrome/Chromium executable.
type Finder struct {
	// Override is checked before the environment, typically from a config file.
	Override   string
	Getenv     func(string) string
	Runner     Runner
	FileExists func(string) bool
	Candidates []string
}

// NewFinder returns a Finder backed by the real environment.
func NewFinder() *Finder {
	return &Finder{
		Getenv:     os.Getenv,
		Runner:     ExecRunner{},
		FileExists: fileExists,
		Candidates: DefaultCandidates,
	}
}

// Find returns the first usable browser. An explicit path must exist;
// absolute candidates are checked on disk and the others are probed with
// --version and accepted on exit code 0.
func (f *Finder) Find(ctx context.Context) (string, bool) {
	if f.Override != "" && f.FileExists(f.Override) {
		return f.Override, true
	}
	if p := f.Getenv(EnvChromePath); p != "" && f.FileExists(p) {
		return p, true
	}

	for _, candidate := range f.Candidates {
		if filepath.IsAbs(candidate) {
			if f.FileExists(candidate) {
				return candidate, true
			}
			continue
		}
		res, err := f.Runner.Run(ctx, candidate, "--version")
		if err == nil && res.ExitCode == 0 {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
