package server

import (
	"log"
	"net/http"

	"github.com/jonathan/resume-export/internal/rendering"
	"github.com/jonathan/resume-export/internal/resume"
)

// handleResume loads, validates and renders the resume on every request.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.textResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		s.textResponse(w, http.StatusNotFound, "Not Found")
		return
	}

	html, err := s.render()
	if err != nil {
		log.Printf("[SERVER] Render failed: %v", err)
		s.textResponse(w, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("[SERVER] Error writing response: %v", err)
	}
}

func (s *Server) render() (string, error) {
	inputPath, err := resume.ResolveInput(s.cfg.Cwd, s.cfg.InputPath, resume.ServerInputCandidates)
	if err != nil {
		return "", err
	}

	res, err := resume.Load(inputPath)
	if err != nil {
		return "", err
	}

	return rendering.RenderHTML(res, rendering.Options{
		SummaryKey:   s.cfg.SummaryKey,
		RoleKey:      s.cfg.RoleKey,
		TemplatePath: s.cfg.TemplatePath,
	})
}

// textResponse writes a plain-text response
func (s *Server) textResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		log.Printf("[SERVER] Error writing response: %v", err)
	}
}
