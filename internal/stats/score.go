// Package stats derives every displayed statistic directly from a
// ledger snapshot. Nothing here mutates or caches: each function is a
// pure view over the innings it is handed, so every consumer (live
// panel, scorecard, charts, search snippets) reads from the same
// source of truth.
package stats

import (
	"fmt"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// Score is the headline line for one innings.
type Score struct {
	Runs       int    `json:"runs"`
	Wickets    int    `json:"wickets"`
	LegalBalls int    `json:"legal_balls"`
	Overs      string `json:"overs"`
}

// InningsScore totals runs, wickets and legal balls across every
// delivery of the innings.
func InningsScore(in models.Innings) Score {
	var s Score
	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			s.Runs += d.Runs.Total
			if len(d.Wickets) > 0 {
				s.Wickets++
			}
			if d.IsLegal() {
				s.LegalBalls++
			}
		}
	}
	s.Overs = OversDisplay(s.LegalBalls)
	return s
}

// OversDisplay renders a legal-ball count in cricket's positional over
// notation: completed overs, a dot, then balls into the current over.
// 7 legal balls is "1.1", not a decimal fraction.
func OversDisplay(legalBalls int) string {
	return fmt.Sprintf("%d.%d", legalBalls/6, legalBalls%6)
}
