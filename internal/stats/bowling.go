package stats

import "github.com/Priyank-2005/opencric/pkg/models"

// Run-outs are the one dismissal never credited to the bowler.
const runOutKind = "run out"

// BowlingEntry is one bowler's figures for an innings.
type BowlingEntry struct {
	Player       string `json:"player"`
	RunsConceded int    `json:"runs_conceded"`
	LegalBalls   int    `json:"legal_balls"`
	Wickets      int    `json:"wickets"`
}

// Overs renders the bowler's legal-ball count in over notation.
func (b BowlingEntry) Overs() string {
	return OversDisplay(b.LegalBalls)
}

// Economy is runs conceded per six legal balls, derived on demand.
func (b BowlingEntry) Economy() float64 {
	if b.LegalBalls == 0 {
		return 0
	}
	return float64(b.RunsConceded) * 6 / float64(b.LegalBalls)
}

// BowlingCard computes per-bowler figures for an innings, ordered by
// first over bowled. The full delivery total is charged to the bowler,
// byes and leg-byes included.
func BowlingCard(in models.Innings) []BowlingEntry {
	index := make(map[string]int)
	var card []BowlingEntry

	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			i, ok := index[d.Bowler]
			if !ok {
				i = len(card)
				index[d.Bowler] = i
				card = append(card, BowlingEntry{Player: d.Bowler})
			}

			card[i].RunsConceded += d.Runs.Total
			if d.IsLegal() {
				card[i].LegalBalls++
			}
			for _, w := range d.Wickets {
				if w.Kind != runOutKind {
					card[i].Wickets++
				}
			}
		}
	}

	return card
}
