package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Priyank-2005/opencric/internal/engine"
	"github.com/Priyank-2005/opencric/internal/notify"
	"github.com/Priyank-2005/opencric/internal/store"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	matches  store.MatchStore
	rankings store.RankingStore
	engine   *engine.Engine
	cache    *notify.SummaryCache
}

// NewHandler creates a new handler with dependencies. cache may be nil;
// summary reads then always recompute from the ledger.
func NewHandler(matches store.MatchStore, rankings store.RankingStore, eng *engine.Engine, cache *notify.SummaryCache) *Handler {
	return &Handler{
		matches:  matches,
		rankings: rankings,
		engine:   eng,
		cache:    cache,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Check database connectivity
	if err := h.matches.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "opencric",
	})
}

// Helper functions

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		fmt.Printf("error: %s - %v\n", message, err)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		fmt.Printf("error encoding error response: %v\n", err)
	}
}

// respondEngineError maps the scoring error taxonomy onto HTTP codes:
// validation 400, unknown match 404, lifecycle conflicts 409.
func respondEngineError(w http.ResponseWriter, err error) {
	var validation *engine.ValidationError
	var state *engine.InvalidStateError

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "match not found", err)
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, validation.Reason, err)
	case errors.As(err, &state):
		respondError(w, http.StatusConflict, state.Reason, err)
	default:
		respondError(w, http.StatusInternalServerError, "operation failed", err)
	}
}
