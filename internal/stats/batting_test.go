package stats_test

import (
	"math"
	"testing"

	"github.com/Priyank-2005/opencric/internal/stats"
	"github.com/Priyank-2005/opencric/pkg/models"
)

func faced(batter string, runs int, extra models.ExtraType) models.Delivery {
	extras := 0
	if extra != models.ExtraNone {
		extras = 1
	}
	return models.Delivery{
		Batter: batter,
		Bowler: "X",
		Runs:   models.Runs{Batter: runs, Extras: extras, Total: runs + extras},
		Extra:  extra,
	}
}

func TestBattingCardBallsFaced(t *testing.T) {
	// Wides are not faced; no-balls, byes and leg-byes are
	in := inningsOf(
		faced("A", 0, models.ExtraNone),
		faced("A", 0, models.ExtraWide),
		faced("A", 2, models.ExtraNoBall),
		faced("A", 0, models.ExtraBye),
		faced("A", 0, models.ExtraLegBye),
	)

	card := stats.BattingCard(in)
	if len(card) != 1 {
		t.Fatalf("entries = %d, want 1", len(card))
	}
	if card[0].BallsFaced != 4 {
		t.Errorf("balls faced = %d, want 4 (only the wide is excluded)", card[0].BallsFaced)
	}
	if card[0].Runs != 2 {
		t.Errorf("runs = %d, want 2 (extras never credit the batter)", card[0].Runs)
	}
}

func TestBattingCardBoundaries(t *testing.T) {
	in := inningsOf(
		faced("A", 4, models.ExtraNone),
		faced("A", 6, models.ExtraNone),
		faced("A", 4, models.ExtraNone),
		faced("A", 2, models.ExtraNone),
	)

	card := stats.BattingCard(in)
	if card[0].Fours != 2 {
		t.Errorf("fours = %d, want 2", card[0].Fours)
	}
	if card[0].Sixes != 1 {
		t.Errorf("sixes = %d, want 1", card[0].Sixes)
	}
	if card[0].Runs != 16 {
		t.Errorf("runs = %d, want 16", card[0].Runs)
	}
}

func TestBattingCardDismissal(t *testing.T) {
	out := faced("A", 0, models.ExtraNone)
	out.Wickets = []models.Wicket{{PlayerOut: "A", Kind: "bowled"}}

	in := inningsOf(faced("A", 4, models.ExtraNone), out)

	card := stats.BattingCard(in)
	if card[0].Player != "A" || card[0].Dismissal != "bowled" {
		t.Errorf("entry = %+v, want A bowled", card[0])
	}
}

func TestBattingCardOrderedByAppearance(t *testing.T) {
	in := inningsOf(
		faced("A", 1, models.ExtraNone),
		faced("B", 0, models.ExtraNone),
		faced("A", 4, models.ExtraNone),
	)

	card := stats.BattingCard(in)
	if len(card) != 2 {
		t.Fatalf("entries = %d, want 2", len(card))
	}
	if card[0].Player != "A" || card[1].Player != "B" {
		t.Errorf("order = [%s, %s], want [A, B]", card[0].Player, card[1].Player)
	}
	if card[0].Runs != 5 || card[0].BallsFaced != 2 {
		t.Errorf("A = %+v, want runs 5 balls 2", card[0])
	}
}

func TestStrikeRate(t *testing.T) {
	tests := []struct {
		name  string
		entry stats.BattingEntry
		want  float64
	}{
		{"No balls faced", stats.BattingEntry{Runs: 0, BallsFaced: 0}, 0},
		{"Run a ball", stats.BattingEntry{Runs: 30, BallsFaced: 30}, 100},
		{"Fifty off twenty", stats.BattingEntry{Runs: 50, BallsFaced: 20}, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.StrikeRate(); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("StrikeRate() = %f, want %f", got, tt.want)
			}
		})
	}
}
