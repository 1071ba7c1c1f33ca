//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/simukka/pixel-invaders/game"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Server serves the client, its static assets and the level catalog.
type Server struct {
	cfg    Config
	index  []byte
	static http.Handler
}

// NewServer creates a server; index is the page served at / and for
// unknown routes.
func NewServer(cfg Config, index []byte) *Server {
	return &Server{
		cfg:    cfg,
		index:  index,
		static: http.FileServer(http.Dir(cfg.StaticDir)),
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/levels", s.handleLevels)
	mux.HandleFunc("GET /levels.json", s.handleLevelsFile)
	mux.HandleFunc("/", s.handleStatic)
	return withRequestID(withLogging(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLevels returns {"levels": [...]}.
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.readLevels()
	if err != nil {
		log.Printf("[%s] Failed to load levels: %v", requestID(r), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load levels"})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]game.Level{"levels": levels})
}

// handleLevelsFile returns the catalog as a bare array, the shape the
// browser client fetches next to index.html.
func (s *Server) handleLevelsFile(w http.ResponseWriter, r *http.Request) {
	levels, err := s.readLevels()
	if err != nil {
		log.Printf("[%s] Failed to load levels: %v", requestID(r), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load levels"})
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, http.StatusOK, levels)
}

// readLevels loads the catalog file. An empty catalog is returned as an
// empty list; clients substitute their own fallback.
func (s *Server) readLevels() ([]game.Level, error) {
	raw, err := os.ReadFile(s.cfg.LevelsPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.cfg.LevelsPath, err)
	}
	levels, err := game.ParseCatalog(raw)
	if errors.Is(err, game.ErrEmptyCatalog) {
		return []game.Level{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.cfg.LevelsPath, err)
	}
	return levels, nil
}

// handleStatic serves files from the static directory and falls back to
// the index page for anything else.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p := path.Clean("/" + r.URL.Path)
	if p != "/" && p != "/index.html" {
		fi, err := os.Stat(filepath.Join(s.cfg.StaticDir, filepath.FromSlash(p)))
		if err == nil && !fi.IsDir() {
			s.static.ServeHTTP(w, r)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(s.index)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// withRequestID tags every request with an id, reusing a well-formed one
// supplied by the client.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func requestID(r *http.Request) string {
	return r.Header.Get(RequestIDHeader)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %s %d %s", requestID(r), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
