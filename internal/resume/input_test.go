package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDefaultInput_Order(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tjeastmond.json"), []byte("{}"), 0644))

	cliPath, err := FindDefaultInput(dir, CLIInputCandidates)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tjeastmond.json"), cliPath)

	serverPath, err := FindDefaultInput(dir, ServerInputCandidates)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume.json"), serverPath)
}

func TestFindDefaultInput_FallsBackToSecondCandidate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.json"), []byte("{}"), 0644))

	path, err := FindDefaultInput(dir, CLIInputCandidates)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume.json"), path)
}

func TestFindDefaultInput_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tjeastmond.json"), 0755))

	_, err := FindDefaultInput(dir, CLIInputCandidates)
	var notFound *InputNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, dir, notFound.Dir)
	assert.Contains(t, err.Error(), "tjeastmond.json, resume.json")
}

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()

	path, err := ResolveInput(dir, "data/me.json", CLIInputCandidates)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "me.json"), path)

	abs := filepath.Join(dir, "elsewhere.json")
	path, err = ResolveInput("/unused", abs, CLIInputCandidates)
	require.NoError(t, err)
	assert.Equal(t, abs, path)

	_, err = ResolveInput(dir, "", CLIInputCandidates)
	assert.Error(t, err)
}
