// Package handlers exposes the simulation engine over HTTP. All input
// validation lives here: the engine only ever sees well-formed
// investments.
package handlers

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/renix/renix/internal/cache"
	"github.com/renix/renix/internal/metrics"
	"github.com/renix/renix/internal/modules/products"
	"github.com/renix/renix/internal/modules/rates"
	"github.com/renix/renix/internal/modules/simulation"
)

const dateLayout = "2006-01-02"

// Handler provides HTTP handlers for the simulation module
type Handler struct {
	engine   *simulation.Engine
	registry *rates.Registry
	cache    cache.Cache
	now      func() time.Time
	log      zerolog.Logger
}

// NewHandler creates a new simulation handler instance
func NewHandler(engine *simulation.Engine, registry *rates.Registry, computationCache cache.Cache, log zerolog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		registry: registry,
		cache:    computationCache,
		now:      time.Now,
		log:      log.With().Str("module", "simulation_handlers").Logger(),
	}
}

// RegisterRoutes registers simulation and rates routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/simulations", func(r chi.Router) {
		r.Post("/", h.HandleSimulate)
		r.Post("/batch", h.HandleSimulateBatch)
	})
	r.Route("/rates", func(r chi.Router) {
		r.Get("/", h.HandleGetRates)
		r.Put("/", h.HandleReplaceRates)
	})
}

// SimulationRequest is one investment to compute.
type SimulationRequest struct {
	ProductType     string                   `json:"product_type"`
	Characteristics products.Characteristics `json:"characteristics"`
	Principal       float64                  `json:"principal"`
	StartDate       string                   `json:"start_date"`
	EndDate         string                   `json:"end_date"`
}

// SimulationResponse carries the rounded result for one investment.
type SimulationResponse struct {
	ID            string                   `json:"id"`
	ProductType   string                   `json:"product_type"`
	Principal     float64                  `json:"principal"`
	ElapsedDays   int                      `json:"elapsed_days"`
	ReferenceRate float64                  `json:"reference_rate"`
	Result        simulation.RoundedResult `json:"result"`
}

// BatchRequest computes many investments against one snapshot.
type BatchRequest struct {
	Investments []SimulationRequest `json:"investments"`
}

// BatchResponse carries per-investment results plus portfolio totals.
type BatchResponse struct {
	Results []SimulationResponse    `json:"results"`
	Summary simulation.BatchSummary `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// buildInvestment validates one request against the given snapshot.
func buildInvestment(req SimulationRequest, snapshot rates.Snapshot) (simulation.Investment, error) {
	productType, err := products.Parse(req.ProductType)
	if err != nil {
		return simulation.Investment{}, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return simulation.Investment{}, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return simulation.Investment{}, fmt.Errorf("invalid end_date: %w", err)
	}

	return simulation.NewInvestment(productType, req.Characteristics, req.Principal, startDate, endDate, snapshot)
}

// cacheKey derives a deterministic key from the request, the rate
// snapshot and the computation date. The snapshot is part of the key so a
// replaced snapshot can never serve a stale result; the date is part of
// the key because the projected-value horizon moves in whole days.
func cacheKey(req SimulationRequest, snapshot rates.Snapshot, now time.Time) string {
	composite := struct {
		Request  SimulationRequest `json:"request"`
		Snapshot rates.Snapshot    `json:"snapshot"`
		Date     string            `json:"date"`
	}{req, snapshot, now.Format(dateLayout)}

	payload, err := json.Marshal(composite)
	if err != nil {
		return ""
	}
	sum := md5.Sum(payload)
	return "sim:" + hex.EncodeToString(sum[:])
}

// HandleSimulate handles POST /api/simulations
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	snapshot := h.registry.Current()
	now := h.now()

	inv, err := buildInvestment(req, snapshot)
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues(req.ProductType, "invalid").Inc()
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var result simulation.RoundedResult
	key := cacheKey(req, snapshot, now)
	if cached, ok := h.cachedResult(key); ok {
		result = cached
	} else {
		result = h.engine.Compute(inv, now).Rounded()
		h.storeResult(key, result)
	}

	metrics.SimulationsTotal.WithLabelValues(req.ProductType, "ok").Inc()
	h.writeJSON(w, http.StatusOK, SimulationResponse{
		ID:            uuid.New().String(),
		ProductType:   string(inv.ProductType),
		Principal:     inv.Principal,
		ElapsedDays:   inv.ElapsedDays,
		ReferenceRate: inv.ReferenceRate,
		Result:        result,
	})
}

// HandleSimulateBatch handles POST /api/simulations/batch
func (h *Handler) HandleSimulateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Investments) == 0 {
		h.writeError(w, "No investments in batch", http.StatusBadRequest)
		return
	}

	// One snapshot and one instant for the whole batch, so every
	// computation sees consistent rates.
	snapshot := h.registry.Current()
	now := h.now()

	investments := make([]simulation.Investment, len(req.Investments))
	for i, item := range req.Investments {
		inv, err := buildInvestment(item, snapshot)
		if err != nil {
			metrics.SimulationsTotal.WithLabelValues(item.ProductType, "invalid").Inc()
			h.writeError(w, fmt.Sprintf("investment %d: %v", i, err), http.StatusBadRequest)
			return
		}
		investments[i] = inv
	}

	results := h.engine.ComputeBatch(investments, now)
	metrics.BatchSize.Observe(float64(len(investments)))

	responses := make([]SimulationResponse, len(results))
	for i, result := range results {
		metrics.SimulationsTotal.WithLabelValues(string(investments[i].ProductType), "ok").Inc()
		responses[i] = SimulationResponse{
			ID:            uuid.New().String(),
			ProductType:   string(investments[i].ProductType),
			Principal:     investments[i].Principal,
			ElapsedDays:   investments[i].ElapsedDays,
			ReferenceRate: investments[i].ReferenceRate,
			Result:        result.Rounded(),
		}
	}

	h.writeJSON(w, http.StatusOK, BatchResponse{
		Results: responses,
		Summary: simulation.Summarize(investments, results),
	})
}

// HandleGetRates handles GET /api/rates
func (h *Handler) HandleGetRates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.registry.Current())
}

// HandleReplaceRates handles PUT /api/rates
func (h *Handler) HandleReplaceRates(w http.ResponseWriter, r *http.Request) {
	var snapshot rates.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if snapshot.CDI < 0 || snapshot.SELIC < 0 || snapshot.IPCA < 0 {
		h.writeError(w, "Rates must not be negative", http.StatusBadRequest)
		return
	}

	h.registry.Replace(snapshot)
	h.writeJSON(w, http.StatusOK, h.registry.Current())
}

// cachedResult looks up a previously computed result.
func (h *Handler) cachedResult(key string) (simulation.RoundedResult, bool) {
	if key == "" || h.cache == nil {
		return simulation.RoundedResult{}, false
	}
	raw, ok := h.cache.Get(key)
	if !ok {
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return simulation.RoundedResult{}, false
	}

	var result simulation.RoundedResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		h.log.Warn().Err(err).Str("key", key).Msg("Discarding malformed cache entry")
		return simulation.RoundedResult{}, false
	}
	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return result, true
}

// storeResult caches a computed result, best effort.
func (h *Handler) storeResult(key string, result simulation.RoundedResult) {
	if key == "" || h.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := h.cache.Set(key, string(raw)); err != nil {
		h.log.Warn().Err(err).Msg("Failed to cache computation result")
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
