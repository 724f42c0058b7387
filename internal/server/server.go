// Package server serves the rendered resume over local HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultHost is the loopback address the server binds by default.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the default listen port.
	DefaultPort = 3000

	shutdownTimeout = 30 * time.Second
)

// Server represents the HTTP server
type Server struct {
	cfg        Config
	httpServer *http.Server
	listener   net.Listener
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	Cwd          string // directory searched for the default input
	InputPath    string // explicit input, resolved against Cwd
	SummaryKey   string
	RoleKey      string
	TemplatePath string
}

// New creates a new server instance
func New(cfg Config) *Server {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Cwd == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfg.Cwd = cwd
		}
	}
	if cfg.SummaryKey == "" {
		cfg.SummaryKey = "default"
	}
	if cfg.RoleKey == "" {
		cfg.RoleKey = "staffplus"
	}

	s := &Server{cfg: cfg}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleResume)
	return s.withLogging(mux)
}

// Listen binds the configured address. Port 0 picks a free port.
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln
	return nil
}

// URL returns the address the server is reachable at.
func (s *Server) URL() string {
	if s.listener == nil {
		return fmt.Sprintf("http://%s/", net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)))
	}
	return fmt.Sprintf("http://%s/", s.listener.Addr().String())
}

// Serve handles requests until ctx is done, then shuts down gracefully.
// Listen must be called first.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[SERVER] Listening on %s", s.listener.Addr())
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Stops the server when ctx is cancelled or Serve fails.
	g.Go(func() error {
		<-gCtx.Done()
		log.Println("[SERVER] Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Println("[SERVER] Server stopped")
		return nil
	})

	return g.Wait()
}

// withLogging adds request logging and a request ID
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v id=%s", r.Method, r.URL.Path, time.Since(start), requestID)
	})
}
