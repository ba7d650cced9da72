package stats

import "github.com/Priyank-2005/opencric/pkg/models"

// BattingEntry is one batter's figures for an innings.
type BattingEntry struct {
	Player     string `json:"player"`
	Runs       int    `json:"runs"`
	BallsFaced int    `json:"balls_faced"`
	Fours      int    `json:"fours"`
	Sixes      int    `json:"sixes"`
	Dismissal  string `json:"dismissal,omitempty"`
}

// StrikeRate is runs per 100 balls faced, derived on demand.
func (b BattingEntry) StrikeRate() float64 {
	if b.BallsFaced == 0 {
		return 0
	}
	return float64(b.Runs) * 100 / float64(b.BallsFaced)
}

// BattingCard computes per-batter figures for an innings, ordered by
// first appearance at the crease. Wides do not count as balls faced;
// no-balls, byes and leg-byes do, mirroring real scoring.
func BattingCard(in models.Innings) []BattingEntry {
	index := make(map[string]int)
	var card []BattingEntry

	entry := func(player string) int {
		i, ok := index[player]
		if !ok {
			i = len(card)
			index[player] = i
			card = append(card, BattingEntry{Player: player})
		}
		return i
	}

	for _, over := range in.Overs {
		for _, d := range over.Deliveries {
			i := entry(d.Batter)
			card[i].Runs += d.Runs.Batter
			if d.Extra != models.ExtraWide {
				card[i].BallsFaced++
			}
			switch d.Runs.Batter {
			case 4:
				card[i].Fours++
			case 6:
				card[i].Sixes++
			}

			// The player out is not always the striker once richer
			// dismissals exist, so look it up separately.
			for _, w := range d.Wickets {
				j := entry(w.PlayerOut)
				card[j].Dismissal = w.Kind
			}
		}
	}

	return card
}
