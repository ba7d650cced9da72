package stats

import "github.com/Priyank-2005/opencric/pkg/models"

// InningsLine couples a batting team with its current score.
type InningsLine struct {
	Team  string `json:"team"`
	Score Score  `json:"score"`
}

// MatchSummary is the compact live view for list pages and the score
// panel: one score line per innings plus the fixture metadata the
// cards display.
type MatchSummary struct {
	MatchID   string          `json:"match_id"`
	Teams     []string        `json:"teams"`
	MatchType string          `json:"match_type"`
	Venue     string          `json:"venue"`
	Event     string          `json:"event,omitempty"`
	Toss      *models.Toss    `json:"toss,omitempty"`
	Outcome   *models.Outcome `json:"outcome,omitempty"`
	Innings   []InningsLine   `json:"innings"`
}

// Summarize recomputes the live summary from the match ledger.
func Summarize(m *models.Match) MatchSummary {
	summary := MatchSummary{
		MatchID:   m.ID,
		Teams:     m.Info.Teams,
		MatchType: m.Info.MatchType,
		Venue:     m.Info.Venue,
		Event:     m.Info.Event.Name,
		Toss:      m.Info.Toss,
		Outcome:   m.Info.Outcome,
		Innings:   make([]InningsLine, 0, len(m.Innings)),
	}

	for _, in := range m.Innings {
		summary.Innings = append(summary.Innings, InningsLine{
			Team:  in.Team,
			Score: InningsScore(in),
		})
	}

	return summary
}
