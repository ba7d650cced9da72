package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Priyank-2005/opencric/internal/engine"
	"github.com/Priyank-2005/opencric/internal/handlers"
	"github.com/Priyank-2005/opencric/internal/store"
	"github.com/Priyank-2005/opencric/pkg/models"
)

const testMatchID = "6f1c2a1e-0000-4000-8000-000000000001"

// newTestServer wires the handlers over an in-memory store and a real
// scoring engine, mirroring the production router for the routes under
// test.
func newTestServer(t *testing.T) (*chi.Mux, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	eng := engine.New(st, nil, nil)
	h := handlers.NewHandler(st, st, eng, nil)

	r := chi.NewRouter()
	r.Get("/api/matches", h.ListMatches)
	r.Get("/api/search", h.Search)
	r.Get("/api/matches/{matchID}", h.GetMatch)
	r.Get("/api/matches/{matchID}/score", h.GetScore)
	r.Get("/api/matches/{matchID}/scorecard", h.GetScorecard)
	r.Get("/api/matches/{matchID}/runrate", h.GetRunRate)
	r.Get("/api/rankings", h.GetRankings)
	r.Post("/api/admin/create-match", h.CreateMatches)
	r.Post("/api/admin/toss", h.RecordToss)
	r.Post("/api/admin/change-innings", h.ChangeInnings)
	r.Post("/api/admin/score", h.AppendDelivery)
	r.Post("/api/admin/outcome", h.SetOutcome)
	r.Post("/api/admin/rankings", h.UpsertRanking)

	return r, st
}

func seedFixture(t *testing.T, st *store.MemoryStore) {
	t.Helper()
	err := st.CreateMatches(context.Background(), []models.Match{{
		ID: testMatchID,
		Info: models.MatchInfo{
			Dates:     []string{"2026-08-30"},
			Teams:     []string{"India", "Australia"},
			Venue:     "MCG, Melbourne",
			MatchType: "T20",
		},
		Innings: []models.Innings{},
	}})
	if err != nil {
		t.Fatalf("seed fixture: %v", err)
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}
}

func TestCreateMatches(t *testing.T) {
	r, st := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/create-match", map[string]interface{}{
		"name":  "Border-Gavaskar Trophy",
		"type":  "Test",
		"teams": []string{"India", "Australia"},
		"matches": []map[string]interface{}{
			{"date": "2026-09-01", "venue": "MCG, Melbourne", "format": "Test", "number": 1},
			{"date": "2026-09-09", "venue": "SCG, Sydney", "format": "Test", "number": 2},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	matches, err := st.ListMatches(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("created %d matches, want 2", len(matches))
	}
	if matches[0].Info.Event.Name != "Border-Gavaskar Trophy" {
		t.Errorf("event name = %q", matches[0].Info.Event.Name)
	}
}

func TestCreateMatchesValidation(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"No matches", map[string]interface{}{"teams": []string{"India", "Australia"}}},
		{"One team", map[string]interface{}{
			"teams":   []string{"India"},
			"matches": []map[string]interface{}{{"date": "2026-09-01"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/admin/create-match", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestScoringFlow(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/toss", map[string]interface{}{
		"matchId": testMatchID, "winner": "India", "decision": "bat",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("toss status = %d, body %s", rec.Code, rec.Body.String())
	}

	for i := 0; i < 6; i++ {
		rec = doJSON(t, r, http.MethodPost, "/api/admin/score", map[string]interface{}{
			"matchId": testMatchID, "runs": 1,
			"batter": "RG Sharma", "nonStriker": "V Kohli", "bowler": "MA Starc",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("score status = %d, body %s", rec.Code, rec.Body.String())
		}
	}
	rec = doJSON(t, r, http.MethodPost, "/api/admin/score", map[string]interface{}{
		"matchId": testMatchID, "runs": 0, "extraType": "wide",
		"batter": "RG Sharma", "nonStriker": "V Kohli", "bowler": "MA Starc",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("wide status = %d, body %s", rec.Code, rec.Body.String())
	}

	m, err := st.GetMatch(context.Background(), testMatchID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	// Six legal balls close the over, so the wide opens a new one
	if len(m.Innings[0].Overs) != 2 {
		t.Fatalf("overs = %d, want 2", len(m.Innings[0].Overs))
	}

	var score struct {
		Innings []struct {
			Team  string `json:"team"`
			Score struct {
				Runs    int    `json:"runs"`
				Wickets int    `json:"wickets"`
				Overs   string `json:"overs"`
			} `json:"score"`
		} `json:"innings"`
	}
	rec = doJSON(t, r, http.MethodGet, "/api/matches/"+testMatchID+"/score", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("score read status = %d", rec.Code)
	}
	decodeBody(t, rec, &score)
	if len(score.Innings) != 1 {
		t.Fatalf("summary innings = %d, want 1", len(score.Innings))
	}
	if score.Innings[0].Score.Runs != 7 || score.Innings[0].Score.Overs != "1.0" {
		t.Errorf("summary = %+v", score.Innings[0])
	}
}

func TestAppendDeliveryErrors(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	ball := func(matchID string, runs int, batter string) map[string]interface{} {
		return map[string]interface{}{
			"matchId": matchID, "runs": runs,
			"batter": batter, "nonStriker": "V Kohli", "bowler": "MA Starc",
		}
	}

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"Before toss", ball(testMatchID, 1, "RG Sharma"), http.StatusConflict},
		{"Unknown match", ball("missing", 1, "RG Sharma"), http.StatusNotFound},
		{"Negative runs", ball(testMatchID, -1, "RG Sharma"), http.StatusBadRequest},
		{"Missing batter", ball(testMatchID, 1, ""), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/admin/score", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestChangeInningsConflict(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/change-innings", map[string]interface{}{
		"matchId": testMatchID,
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestGetMatchNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/matches/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	rec := doJSON(t, r, http.MethodGet, "/api/search", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var matches []models.Match
	decodeBody(t, rec, &matches)
	if len(matches) != 0 {
		t.Errorf("empty query returned %d matches, want none", len(matches))
	}
}

func TestGetScorecard(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	doJSON(t, r, http.MethodPost, "/api/admin/toss", map[string]interface{}{
		"matchId": testMatchID, "winner": "India", "decision": "bat",
	})
	doJSON(t, r, http.MethodPost, "/api/admin/score", map[string]interface{}{
		"matchId": testMatchID, "runs": 4,
		"batter": "RG Sharma", "nonStriker": "V Kohli", "bowler": "MA Starc",
	})
	doJSON(t, r, http.MethodPost, "/api/admin/score", map[string]interface{}{
		"matchId": testMatchID, "runs": 0, "isWicket": true,
		"batter": "RG Sharma", "nonStriker": "V Kohli", "bowler": "MA Starc",
	})

	rec := doJSON(t, r, http.MethodGet, "/api/matches/"+testMatchID+"/scorecard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var card struct {
		MatchID string `json:"match_id"`
		Innings []struct {
			Team    string `json:"team"`
			Batting []struct {
				Player     string  `json:"player"`
				Runs       int     `json:"runs"`
				BallsFaced int     `json:"balls_faced"`
				Dismissal  string  `json:"dismissal"`
				StrikeRate float64 `json:"strike_rate"`
			} `json:"batting"`
			Bowling []struct {
				Player  string `json:"player"`
				Wickets int    `json:"wickets"`
				Overs   string `json:"overs"`
			} `json:"bowling"`
		} `json:"innings"`
	}
	decodeBody(t, rec, &card)

	if card.MatchID != testMatchID || len(card.Innings) != 1 {
		t.Fatalf("card = %+v", card)
	}
	batting := card.Innings[0].Batting
	if len(batting) != 1 || batting[0].Runs != 4 || batting[0].BallsFaced != 2 {
		t.Errorf("batting = %+v", batting)
	}
	if batting[0].Dismissal == "" {
		t.Error("dismissed batter must carry a dismissal")
	}
	bowling := card.Innings[0].Bowling
	if len(bowling) != 1 || bowling[0].Wickets != 1 || bowling[0].Overs != "0.2" {
		t.Errorf("bowling = %+v", bowling)
	}
}

func TestGetRunRate(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	doJSON(t, r, http.MethodPost, "/api/admin/toss", map[string]interface{}{
		"matchId": testMatchID, "winner": "Australia", "decision": "bat",
	})
	for i := 0; i < 7; i++ {
		doJSON(t, r, http.MethodPost, "/api/admin/score", map[string]interface{}{
			"matchId": testMatchID, "runs": 1,
			"batter": "DA Warner", "nonStriker": "SPD Smith", "bowler": "JJ Bumrah",
		})
	}

	rec := doJSON(t, r, http.MethodGet, "/api/matches/"+testMatchID+"/runrate", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var series struct {
		Innings []struct {
			Team   string `json:"team"`
			Series []struct {
				Over           int `json:"over"`
				Runs           int `json:"runs"`
				CumulativeRuns int `json:"cumulative_runs"`
			} `json:"series"`
		} `json:"innings"`
	}
	decodeBody(t, rec, &series)

	if len(series.Innings) != 1 || len(series.Innings[0].Series) != 2 {
		t.Fatalf("series = %+v", series)
	}
	second := series.Innings[0].Series[1]
	if second.Over != 1 || second.Runs != 1 || second.CumulativeRuns != 7 {
		t.Errorf("second over = %+v", second)
	}
}

func TestSetOutcome(t *testing.T) {
	r, st := newTestServer(t)
	seedFixture(t, st)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/outcome", map[string]interface{}{
		"matchId": testMatchID, "winner": "India", "by": "5 wickets",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	m, _ := st.GetMatch(context.Background(), testMatchID)
	if m.Info.Outcome == nil || m.Info.Outcome.Winner != "India" {
		t.Errorf("outcome = %+v", m.Info.Outcome)
	}
}

func TestRankingsRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/rankings", map[string]interface{}{
		"category": "men_odi_batting",
		"players": []map[string]interface{}{
			{"rank": 1, "name": "Shubman Gill", "team": "India", "rating": 829},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/rankings", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	var rankings map[string][]models.RankedPlayer
	decodeBody(t, rec, &rankings)
	if got := rankings["men_odi_batting"]; len(got) != 1 || got[0].Name != "Shubman Gill" {
		t.Errorf("rankings = %+v", rankings)
	}
}

func TestListMatchesLimit(t *testing.T) {
	r, st := newTestServer(t)
	for i := 0; i < 5; i++ {
		err := st.CreateMatches(context.Background(), []models.Match{{
			Info: models.MatchInfo{
				Dates: []string{fmt.Sprintf("2026-08-%02d", 10+i)},
				Teams: []string{"India", "Australia"},
			},
		}})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/api/matches?limit=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var matches []models.Match
	decodeBody(t, rec, &matches)
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(matches))
	}
	if matches[0].Info.Dates[0] != "2026-08-14" {
		t.Errorf("newest first ordering broken: %s", matches[0].Info.Dates[0])
	}
}
