package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Priyank-2005/opencric/internal/stats"
	"github.com/Priyank-2005/opencric/internal/store"
	"github.com/Priyank-2005/opencric/pkg/models"
)

const (
	defaultListLimit   = 50
	defaultSearchLimit = 20
	maxListLimit       = 200
)

// ListMatches retrieves recent matches, newest first
// Query params: limit
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := parseIntParam(r, "limit", defaultListLimit)
	if limit > maxListLimit {
		limit = maxListLimit
	}

	matches, err := h.matches.ListMatches(ctx, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve matches", err)
		return
	}

	respondJSON(w, http.StatusOK, matches)
}

// GetMatch retrieves a single match with its full ledger
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	match, ok := h.loadMatch(ctx, w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, match)
}

// Search finds matches by team, venue, event name or format
// Query params: q
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	if query == "" {
		respondJSON(w, http.StatusOK, []models.Match{})
		return
	}

	matches, err := h.matches.SearchMatches(ctx, query, defaultSearchLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "search failed", err)
		return
	}

	respondJSON(w, http.StatusOK, matches)
}

// GetScore returns the live summary for a match. The summary cache is
// consulted first; it is refreshed from the ledger on every mutation,
// so a hit can never disagree with a recompute.
func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	matchID := chi.URLParam(r, "matchID")
	if h.cache != nil {
		if summary, ok := h.cache.ReadMatchSummary(ctx, matchID); ok {
			respondJSON(w, http.StatusOK, summary)
			return
		}
	}

	match, ok := h.loadMatch(ctx, w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, stats.Summarize(match))
}

// battingRow and bowlingRow carry the on-demand rates alongside the
// raw figures for JSON consumers.
type battingRow struct {
	stats.BattingEntry
	StrikeRate float64 `json:"strike_rate"`
}

type bowlingRow struct {
	stats.BowlingEntry
	Overs   string  `json:"overs"`
	Economy float64 `json:"economy"`
}

type scorecardInnings struct {
	Team    string       `json:"team"`
	Score   stats.Score  `json:"score"`
	Batting []battingRow `json:"batting"`
	Bowling []bowlingRow `json:"bowling"`
}

// GetScorecard returns full batting and bowling figures per innings,
// recomputed from the ledger on every request.
func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	match, ok := h.loadMatch(ctx, w, r)
	if !ok {
		return
	}

	card := make([]scorecardInnings, 0, len(match.Innings))
	for _, in := range match.Innings {
		entry := scorecardInnings{
			Team:  in.Team,
			Score: stats.InningsScore(in),
		}

		for _, b := range stats.BattingCard(in) {
			entry.Batting = append(entry.Batting, battingRow{BattingEntry: b, StrikeRate: b.StrikeRate()})
		}
		for _, b := range stats.BowlingCard(in) {
			entry.Bowling = append(entry.Bowling, bowlingRow{BowlingEntry: b, Overs: b.Overs(), Economy: b.Economy()})
		}

		card = append(card, entry)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"match_id": match.ID,
		"innings":  card,
	})
}

// GetRunRate returns the per-over run rate series for chart rendering
func (h *Handler) GetRunRate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	match, ok := h.loadMatch(ctx, w, r)
	if !ok {
		return
	}

	type inningsSeries struct {
		Team   string              `json:"team"`
		Series []stats.OverSummary `json:"series"`
	}

	series := make([]inningsSeries, 0, len(match.Innings))
	for _, in := range match.Innings {
		series = append(series, inningsSeries{
			Team:   in.Team,
			Series: stats.RunRateSeries(in),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"match_id": match.ID,
		"innings":  series,
	})
}

// loadMatch fetches the match from the path parameter, writing the
// error response itself when the lookup fails.
func (h *Handler) loadMatch(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Match, bool) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		respondError(w, http.StatusBadRequest, "match id is required", nil)
		return nil, false
	}

	match, err := h.matches.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "match not found", err)
		} else {
			respondError(w, http.StatusInternalServerError, "failed to retrieve match", err)
		}
		return nil, false
	}

	return match, true
}
