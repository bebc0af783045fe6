// Package api - thin HTTP layer over the analysis engine.
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization. It never performs analysis logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"modcheck/core/conflict"
	"modcheck/core/engine"
	"modcheck/core/types"
	"modcheck/internal/errors"
	"modcheck/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates an API server over an engine
func NewServer(eng *engine.Engine, version string) *Server {
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /check", s.handleCheck)
	s.mux.HandleFunc("POST /conflict", s.handleConflict)
	s.mux.HandleFunc("POST /resolve", s.handleResolve)

	// Supporting endpoints
	s.mux.HandleFunc("GET /upgrades", s.handleListUpgrades)
	s.mux.HandleFunc("GET /upgrades/{key}", s.handleUpgrade)
	s.mux.HandleFunc("GET /systems", s.handleSystems)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleCheck handles POST /check
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	sel := types.NewSelection(req.Selection...)
	report := s.engine.Check(sel)

	logging.Debug("check request served",
		zap.Int("selection", len(sel)),
		zap.Int("conflicts", len(report.Conflicts)),
		zap.Int("advisories", len(report.Advisories)),
	)
	s.writeJSON(w, report, http.StatusOK)
}

// handleConflict handles POST /conflict
func (s *Server) handleConflict(w http.ResponseWriter, r *http.Request) {
	var req ConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Candidate == "" {
		s.writeError(w, "VALIDATION_ERROR", "candidate is required", http.StatusBadRequest)
		return
	}

	sel := types.NewSelection(req.Selection...)
	s.writeJSON(w, ConflictResponse{
		Candidate: req.Candidate,
		Conflict:  s.engine.CheckConflict(req.Candidate, sel),
	}, http.StatusOK)
}

// handleResolve handles POST /resolve
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Candidate == "" {
		s.writeError(w, "VALIDATION_ERROR", "candidate is required", http.StatusBadRequest)
		return
	}

	sel := types.NewSelection(req.Selection...)
	resolved := s.engine.Resolve(req.Candidate, sel, conflict.ResolveOptions{
		AutoRemoveLowerTunes: req.AutoRemoveLowerTunes,
	})
	s.writeJSON(w, ResolveResponse{Selection: resolved}, http.StatusOK)
}

// handleListUpgrades handles GET /upgrades
func (s *Server) handleListUpgrades(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	if cat == nil {
		s.writeError(w, "NO_CATALOG", "no upgrade catalog configured", http.StatusNotFound)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"upgrades": cat.Keys(),
		"count":    cat.Len(),
	}, http.StatusOK)
}

// handleUpgrade handles GET /upgrades/{key}
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	key := types.UpgradeKey(r.PathValue("key"))

	detail, ok := s.engine.Inspect(key)
	if !ok {
		s.writeError(w, "NOT_FOUND", "unknown upgrade: "+key.String(), http.StatusNotFound)
		return
	}
	sum, err := s.engine.Summarize(key)
	if err != nil && !errors.IsType(err, errors.TypeNotFound) {
		s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, UpgradeResponse{UpgradeDetail: detail, Effects: sum}, http.StatusOK)
}

// handleSystems handles GET /systems
func (s *Server) handleSystems(w http.ResponseWriter, r *http.Request) {
	systems := s.engine.Taxonomy().Systems()
	s.writeJSON(w, map[string]interface{}{
		"systems": systems,
		"count":   len(systems),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "modcheck",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server with the given timeouts
func (s *Server) ListenAndServe(addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	logging.Info("api server listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
