package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../testdata/tjeastmond.json"

func fixtureDir(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	return dir
}

func doRequest(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHandler_Routes(t *testing.T) {
	s := New(Config{Cwd: fixtureDir(t, "resume.json")})
	h := s.Handler()

	tests := []struct {
		method      string
		path        string
		status      int
		contentType string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8"},
		{http.MethodGet, "/index.html", http.StatusOK, "text/html; charset=utf-8"},
		{http.MethodGet, "/resume.pdf", http.StatusNotFound, "text/plain; charset=utf-8"},
		{http.MethodPost, "/", http.StatusMethodNotAllowed, "text/plain; charset=utf-8"},
		{http.MethodHead, "/", http.StatusMethodNotAllowed, "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, h, tt.method, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestHandler_RendersResume(t *testing.T) {
	s := New(Config{Cwd: fixtureDir(t, "resume.json"), SummaryKey: "staffplus"})

	rec := doRequest(t, s.Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TJ Eastmond")
	assert.Contains(t, rec.Body.String(), "Staff-level engineer")
}

func TestHandler_PrefersResumeJSON(t *testing.T) {
	dir := fixtureDir(t, "resume.json")
	other := strings.Replace(readFixture(t), "TJ Eastmond", "Other Person", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tjeastmond.json"), []byte(other), 0644))

	rec := doRequest(t, New(Config{Cwd: dir}).Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TJ Eastmond")
}

func TestHandler_FallsBackToTjeastmondJSON(t *testing.T) {
	dir := fixtureDir(t, "tjeastmond.json")
	_, err := os.Stat(filepath.Join(dir, "resume.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	h := New(Config{Cwd: dir}).Handler()
	for _, path := range []string{"/", "/index.html"} {
		rec := doRequest(t, h, http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "TJ Eastmond")
	}
}

func TestHandler_MethodCheckedBeforePath(t *testing.T) {
	h := New(Config{Cwd: fixtureDir(t, "resume.json")}).Handler()

	for _, method := range []string{http.MethodHead, http.MethodPost, http.MethodDelete} {
		rec := doRequest(t, h, method, "/nope")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	}

	rec := doRequest(t, h, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RereadsInputPerRequest(t *testing.T) {
	dir := fixtureDir(t, "resume.json")
	h := New(Config{Cwd: dir}).Handler()

	first := doRequest(t, h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "TJ Eastmond")

	updated := strings.Replace(readFixture(t), "TJ Eastmond", "Renamed Person", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.json"), []byte(updated), 0644))

	second := doRequest(t, h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Renamed Person")
}

func TestHandler_InvalidResumeIs500(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.json"), []byte(`{"name": ""}`), 0644))

	rec := doRequest(t, New(Config{Cwd: dir}).Handler(), http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Internal Server Error: "))
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestHandler_MissingInputIs500(t *testing.T) {
	rec := doRequest(t, New(Config{Cwd: t.TempDir()}).Handler(), http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume.json, tjeastmond.json")
}

func TestHandler_ExplicitInput(t *testing.T) {
	dir := fixtureDir(t, "me.json")
	rec := doRequest(t, New(Config{Cwd: dir, InputPath: "me.json"}).Handler(), http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CustomTemplate(t *testing.T) {
	dir := fixtureDir(t, "resume.json")
	tmpl := filepath.Join(dir, "t.html.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte(`<p>{{.Name}} / {{.RoleKey}}</p>`), 0644))

	rec := doRequest(t, New(Config{Cwd: dir, TemplatePath: tmpl, RoleKey: "ic"}).Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>TJ Eastmond / ic</p>", rec.Body.String())
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(3000))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(-1))
	assert.Error(t, ValidatePort(65536))
}

func TestParsePort(t *testing.T) {
	port, err := ParsePort("8080")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	for _, bad := range []string{"", "abc", "80.5", "0", "70000"} {
		_, err := ParsePort(bad)
		var portErr *PortError
		assert.ErrorAs(t, err, &portErr, bad)
	}
}

func TestServer_ListenServeShutdown(t *testing.T) {
	s := New(Config{Host: "127.0.0.1", Port: 0, Cwd: fixtureDir(t, "resume.json")})
	require.NoError(t, s.Listen())
	assert.True(t, strings.HasPrefix(s.URL(), "http://127.0.0.1:"))
	assert.True(t, strings.HasSuffix(s.URL(), "/"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	resp, err := http.Get(s.URL())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "TJ Eastmond")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ServeWithoutListen(t *testing.T) {
	assert.Error(t, New(Config{}).Serve(context.Background()))
}

func TestServer_URLBeforeListen(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:3000/", New(Config{Port: DefaultPort}).URL())
}

func readFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	return string(data)
}
