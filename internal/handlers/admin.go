package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Priyank-2005/opencric/internal/engine"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// createMatchRequest mirrors the admin panel's bulk fixture form:
// series-level defaults plus one entry per match.
type createMatchRequest struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Teams   []string `json:"teams"`
	Matches []struct {
		Date    string              `json:"date"`
		Teams   []string            `json:"teams"`
		Venue   string              `json:"venue"`
		Format  string              `json:"format"`
		Number  int                 `json:"number"`
		Players map[string][]string `json:"players"`
	} `json:"matches"`
}

// CreateMatches inserts a batch of fixtures with empty innings lists
func (h *Handler) CreateMatches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(req.Matches) == 0 {
		respondError(w, http.StatusBadRequest, "at least one match is required", nil)
		return
	}

	matches := make([]models.Match, 0, len(req.Matches))
	for _, m := range req.Matches {
		teams := m.Teams
		if len(teams) == 0 {
			teams = req.Teams
		}
		if len(teams) < 2 {
			respondError(w, http.StatusBadRequest, "each match needs two teams", nil)
			return
		}

		matches = append(matches, models.Match{
			Info: models.MatchInfo{
				Dates:     []string{m.Date},
				Teams:     teams,
				Venue:     m.Venue,
				MatchType: m.Format,
				Event:     models.Event{Name: req.Name, MatchNumber: m.Number},
				Players:   m.Players,
			},
			Innings: []models.Innings{},
		})
	}

	if err := h.matches.CreateMatches(ctx, matches); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create matches", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("%d matches created.", len(matches)),
	})
}

// RecordToss sets the toss and opens the first innings
func (h *Handler) RecordToss(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		MatchID  string `json:"matchId"`
		Winner   string `json:"winner"`
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.engine.RecordToss(ctx, req.MatchID, req.Winner, req.Decision); err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ChangeInnings closes the current innings and opens the next one
func (h *Handler) ChangeInnings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		MatchID string `json:"matchId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.engine.ChangeInnings(ctx, req.MatchID); err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// AppendDelivery ingests one ball from the scoring panel
func (h *Handler) AppendDelivery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		MatchID    string `json:"matchId"`
		Runs       int    `json:"runs"`
		IsWicket   bool   `json:"isWicket"`
		ExtraType  string `json:"extraType"`
		Comment    string `json:"comment"`
		Batter     string `json:"batter"`
		NonStriker string `json:"nonStriker"`
		Bowler     string `json:"bowler"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	delivery, err := h.engine.AppendDelivery(ctx, req.MatchID, engine.BallInput{
		RunsOffBat: req.Runs,
		Extra:      models.ExtraType(req.ExtraType),
		IsWicket:   req.IsWicket,
		Striker:    req.Batter,
		NonStriker: req.NonStriker,
		Bowler:     req.Bowler,
		Commentary: req.Comment,
	})
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"delivery": delivery,
	})
}

// SetOutcome writes the manually decided match result
func (h *Handler) SetOutcome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		MatchID string `json:"matchId"`
		Winner  string `json:"winner"`
		By      string `json:"by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.engine.SetOutcome(ctx, req.MatchID, models.Outcome{Winner: req.Winner, By: req.By}); err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// UpsertRanking replaces one ranking category's player table
func (h *Handler) UpsertRanking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Category string                `json:"category"`
		Players  []models.RankedPlayer `json:"players"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Category == "" {
		respondError(w, http.StatusBadRequest, "category is required", nil)
		return
	}

	updated, err := h.rankings.UpsertRanking(ctx, req.Category, req.Players)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update rankings", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    updated,
	})
}
