// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"streamdeals/core/pricing"
	"streamdeals/core/storefront"
	"streamdeals/internal/errors"
	"streamdeals/internal/logging"
)

// Server is the API server
type Server struct {
	store   *storefront.Store
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server over an assembled store
func NewServer(store *storefront.Store, version string) *Server {
	s := &Server{
		store:   store,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote/card", s.handleCardQuote)
	s.mux.HandleFunc("POST /quote/combo", s.handleComboQuote)
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleCardQuote handles POST /quote/card
func (s *Server) handleCardQuote(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()

	var req CardQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Platform == "" {
		s.writeError(w, requestID, string(errors.TypeInput), "platform is required", http.StatusBadRequest)
		return
	}
	if req.Profiles == 0 {
		req.Profiles = pricing.MinProfiles
	}
	if req.Months == 0 {
		req.Months = pricing.MinMonths
	}

	quote, err := s.store.CardQuote(req.Platform, req.Profiles, req.Months)
	if err != nil {
		s.writeDomainError(w, requestID, err)
		return
	}
	s.writeJSON(w, quote, http.StatusOK)
}

// handleComboQuote handles POST /quote/combo
func (s *Server) handleComboQuote(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()

	var req ComboQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	combo := s.store.NewCombo()
	var rejected []string

	if req.Preset != "" {
		if _, err := combo.ApplyPreset(req.Preset); err != nil {
			s.writeDomainError(w, requestID, err)
			return
		}
	} else {
		for _, name := range req.Platforms {
			if _, err := combo.Toggle(name); err != nil {
				if errors.IsType(err, errors.TypeMissingAnchor) {
					s.writeDomainError(w, requestID, err)
					return
				}
				// Disabled platforms stay unchecked rather than failing
				// the whole bundle, matching the widget.
				rejected = append(rejected, name)
			}
		}
	}

	s.writeJSON(w, ComboQuoteResponse{
		ComboQuote: combo.Quote(),
		Rejected:   rejected,
	}, http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	entries := s.store.Gate().Entries()
	platforms := make([]CatalogPlatform, 0, len(entries))
	for _, entry := range entries {
		platforms = append(platforms, CatalogPlatform{
			Key:         entry.Key,
			DisplayName: entry.DisplayName,
			Unit:        entry.Unit.String(),
			MaxMonths:   entry.MaxMonths,
			Price:       entry.MonthlyRate(),
			Tiered:      entry.Tiered(),
			Enabled:     entry.Enabled,
		})
	}
	s.writeJSON(w, CatalogResponse{Platforms: platforms, Live: s.store.Live()}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"live":    s.store.Live(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "streamdeals",
	}, http.StatusOK)
}

// writeDomainError maps domain error types onto HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, requestID string, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeNotFound, errors.TypeMissingAnchor:
			status = http.StatusNotFound
		case errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeInvalidCatalog:
			status = http.StatusUnprocessableEntity
		}
	}
	s.writeError(w, requestID, code, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	logging.Warn("request failed",
		zap.String("request_id", requestID),
		zap.String("code", code),
		zap.String("message", message))
	s.writeJSON(w, ErrorResponse{Error: code, Message: message, RequestID: requestID}, status)
}

func newRequestID() string {
	return uuid.NewString()
}
