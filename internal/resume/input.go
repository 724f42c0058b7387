package resume

import (
	"os"
	"path/filepath"
)

// Default input file names, searched in order.
var (
	CLIInputCandidates    = []string{"tjeastmond.json", "resume.json"}
	ServerInputCandidates = []string{"resume.json", "tjeastmond.json"}
)

// FindDefaultInput returns the first candidate in cwd that exists and can be
// opened for reading.
func FindDefaultInput(cwd string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(cwd, name)
		if readable(path) {
			return path, nil
		}
	}
	return "", &InputNotFoundError{Dir: cwd, Candidates: candidates}
}

// ResolveInput returns explicit made absolute against cwd, or the default
// search result when explicit is empty.
func ResolveInput(cwd, explicit string, candidates []string) (string, error) {
	if explicit == "" {
		return FindDefaultInput(cwd, candidates)
	}
	if filepath.IsAbs(explicit) {
		return filepath.Clean(explicit), nil
	}
	return filepath.Join(cwd, explicit), nil
}

func readable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
