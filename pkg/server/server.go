// Package server exposes the mock scoring endpoint over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/mchmarny/scoremock/pkg/score"
)

const (
	readHeaderTimeoutSeconds = 30
	readTimeoutSeconds       = 60
	writeTimeoutSeconds      = 60
	idleTimeoutSeconds       = 120
	maxHeaderBytes           = 20
)

// Server serves the fixed scoring payload until the process is killed.
type Server struct {
	addr    string
	handler http.Handler
}

// New creates a Server bound to addr answering with the given result.
func New(addr string, result score.Result) *Server {
	return &Server{
		addr:    addr,
		handler: NewRouter(result),
	}
}

// NewRouter builds the route tree. All POST requests, regardless of path,
// headers, or body, get the same canned analysis result.
func NewRouter(result score.Result) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/*", analyzeHandler(result))

	return r
}

func analyzeHandler(result score.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// ListenAndServe blocks serving requests for the lifetime of the process.
// There is no shutdown path; the returned error is always a startup or
// listener failure.
func (s *Server) ListenAndServe() error {
	hs := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
		ReadTimeout:       readTimeoutSeconds * time.Second,
		WriteTimeout:      writeTimeoutSeconds * time.Second,
		IdleTimeout:       idleTimeoutSeconds * time.Second,
		MaxHeaderBytes:    1 << maxHeaderBytes,
	}

	if err := hs.ListenAndServe(); err != nil {
		return errors.Wrapf(err, "error serving on %s", s.addr)
	}
	return nil
}
