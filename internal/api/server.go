// Package api implements the proxy's HTTP surface: a single envelope
// endpoint dispatching to the configured upstream services, plus liveness.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Server routes proxy envelopes to the configured service backends.
type Server struct {
	deps Deps
	log  *slog.Logger
}

// New creates the API server.
func New(deps Deps, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, log: log.With("component", "api")}
}

// Router builds the HTTP handler with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsHeaders)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/proxy", s.handleProxy)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// envelope is the request shape every proxied action uses.
type envelope struct {
	Service string          `json:"service"`
	Action  string          `json:"action"`
	Data    json.RawMessage `json:"data"`
}

func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	if env.Service == "" || env.Action == "" {
		writeError(w, http.StatusBadRequest, "service and action are required", nil)
		return
	}

	log := s.log.With("service", env.Service, "action", env.Action)
	log.Debug("dispatching proxy request")

	switch env.Service {
	case "readarr":
		s.dispatchReadarr(w, r, env, log)
	case "radarr":
		s.dispatchRadarr(w, r, env, log)
	case "sonarr":
		s.dispatchSonarr(w, r, env, log)
	case "overseerr":
		s.dispatchOverseerr(w, r, env, log)
	default:
		writeError(w, http.StatusBadRequest, "unknown service: "+env.Service, nil)
	}
}
