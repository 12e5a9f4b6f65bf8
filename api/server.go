// Package api - Thin HTTP layer over the estimation engine
// The API is only responsible for input ingestion, engine
// orchestration, and output serialization. It never performs cost
// logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripcost/adapters/geodata"
	"tripcost/api/envelope"
	"tripcost/core/engine"
	"tripcost/core/types"
	"tripcost/db"
	"tripcost/internal/errors"
	"tripcost/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	geodata *geodata.Client
	store   db.ConfigStore
	version string
	handler http.Handler
}

// NewServer creates an API server. geodata and store may be nil; the
// corresponding endpoints then report service unavailable.
func NewServer(eng *engine.Engine, geo *geodata.Client, store db.ConfigStore, version string, allowedOrigins []string) *Server {
	s := &Server{
		engine:  eng,
		geodata: geo,
		store:   store,
		version: version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /transport-cost", s.handleTransportCost)
	mux.HandleFunc("POST /budget", s.handleBudget)
	mux.HandleFunc("GET /accommodation", s.handleAccommodation)
	mux.HandleFunc("GET /destination-info", s.handleDestinationInfo)
	mux.HandleFunc("GET /pricing-config", s.handleGetPricingConfig)
	mux.HandleFunc("PUT /pricing-config", s.handlePutPricingConfig)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /version", s.handleVersion)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	s.handler = c.Handler(mux)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleTransportCost handles POST /transport-cost
func (s *Server) handleTransportCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var body TransportCostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	req, err := body.ToRequest()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	quote, err := s.engine.TransportCost(ctx, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, TransportCostResponse{
		Quote: quote,
		Metadata: &ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleBudget handles POST /budget
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var body BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	params, err := body.ToParams()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	// Engine input goes through the envelope, never raw JSON
	env, err := envelope.Normalize(params)
	if err != nil {
		s.writeError(w, "NORMALIZE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	budget, err := s.engine.ComposeBudget(ctx, env.Params)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	logging.Info("budget composed",
		zap.String("request_id", env.RequestID),
		zap.String("input_hash", env.InputHash),
		zap.String("destination", env.Params.DestinationCity))

	s.writeJSON(w, BudgetResponse{
		Budget: budget,
		Metadata: &ResponseMetadata{
			RequestID:     env.RequestID,
			InputHash:     env.InputHash,
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleAccommodation handles GET /accommodation
func (s *Server) handleAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	destination := r.URL.Query().Get("destination")
	if destination == "" {
		s.writeError(w, "INPUT_ERROR", "destination query parameter is required", http.StatusBadRequest)
		return
	}

	flightPrice := decimal.Zero
	if raw := r.URL.Query().Get("flight_price"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			s.writeError(w, "INPUT_ERROR", "flight_price must be a decimal number", http.StatusBadRequest)
			return
		}
		flightPrice = parsed
	}

	estimate, err := s.engine.AccommodationPrice(ctx, destination, flightPrice)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, AccommodationResponse{
		Estimate: estimate,
		Metadata: &ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleDestinationInfo handles GET /destination-info
func (s *Server) handleDestinationInfo(w http.ResponseWriter, r *http.Request) {
	if s.geodata == nil {
		s.writeError(w, "UNAVAILABLE", "destination info is not configured", http.StatusServiceUnavailable)
		return
	}

	cityName := r.URL.Query().Get("city")
	if cityName == "" {
		s.writeError(w, "INPUT_ERROR", "city query parameter is required", http.StatusBadRequest)
		return
	}

	city, ok := s.engine.Cities().Lookup(cityName)
	if !ok {
		s.writeError(w, "NOT_FOUND", "unknown city: "+cityName, http.StatusNotFound)
		return
	}

	info := s.geodata.Fetch(r.Context(), city, r.URL.Query().Get("country"), types.CurrencyBRL)
	s.writeJSON(w, info, http.StatusOK)
}

// handleGetPricingConfig handles GET /pricing-config
func (s *Server) handleGetPricingConfig(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "UNAVAILABLE", "pricing store is not configured", http.StatusServiceUnavailable)
		return
	}

	settings, err := s.store.Get(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, settings, http.StatusOK)
}

// handlePutPricingConfig handles PUT /pricing-config
func (s *Server) handlePutPricingConfig(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "UNAVAILABLE", "pricing store is not configured", http.StatusServiceUnavailable)
		return
	}

	var body PricingSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := body.ToSettings()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	stored, err := s.store.Update(r.Context(), settings)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	logging.Info("pricing settings updated",
		zap.String("premium_monthly", stored.PremiumMonthly.String()),
		zap.Bool("test_mode", stored.TestMode))
	s.writeJSON(w, stored, http.StatusOK)
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
		"version": s.version,
		"engine":  "tripcost",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, payload interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Warn("response encoding failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}

// writeDomainError maps domain error types onto HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.Error); ok {
		status := http.StatusInternalServerError
		switch e.Type {
		case errors.TypeInput, errors.TypeParsing:
			status = http.StatusBadRequest
		case errors.TypeNotFound:
			status = http.StatusNotFound
		}
		s.writeError(w, string(e.Type), e.Message, status)
		return
	}
	s.writeError(w, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError)
}
