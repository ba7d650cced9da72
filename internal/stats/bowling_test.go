package stats_test

import (
	"math"
	"testing"

	"github.com/Priyank-2005/opencric/internal/stats"
	"github.com/Priyank-2005/opencric/pkg/models"
)

func bowled(bowler string, runs int, extra models.ExtraType) models.Delivery {
	extras := 0
	if extra != models.ExtraNone {
		extras = 1
	}
	return models.Delivery{
		Batter: "A",
		Bowler: bowler,
		Runs:   models.Runs{Batter: runs, Extras: extras, Total: runs + extras},
		Extra:  extra,
	}
}

func TestBowlingCardConcedesAllExtras(t *testing.T) {
	// Byes and leg-byes are charged to the bowler here, unlike strict
	// scoring convention
	in := inningsOf(
		bowled("X", 4, models.ExtraNone),
		bowled("X", 0, models.ExtraWide),
		bowled("X", 0, models.ExtraBye),
		bowled("X", 0, models.ExtraLegBye),
	)

	card := stats.BowlingCard(in)
	if len(card) != 1 {
		t.Fatalf("entries = %d, want 1", len(card))
	}
	if card[0].RunsConceded != 7 {
		t.Errorf("runs conceded = %d, want 7", card[0].RunsConceded)
	}
	if card[0].LegalBalls != 3 {
		t.Errorf("legal balls = %d, want 3 (only the wide is illegal)", card[0].LegalBalls)
	}
}

func TestBowlingCardWickets(t *testing.T) {
	bowledOut := bowled("X", 0, models.ExtraNone)
	bowledOut.Wickets = []models.Wicket{{PlayerOut: "A", Kind: "bowled"}}

	runOut := bowled("X", 1, models.ExtraNone)
	runOut.Wickets = []models.Wicket{{PlayerOut: "B", Kind: "run out"}}

	in := inningsOf(bowledOut, runOut)

	card := stats.BowlingCard(in)
	if card[0].Wickets != 1 {
		t.Errorf("wickets = %d, want 1 (run outs are not credited)", card[0].Wickets)
	}
}

func TestBowlingCardPerBowler(t *testing.T) {
	in := inningsOf(
		bowled("X", 1, models.ExtraNone),
		bowled("Y", 4, models.ExtraNone),
		bowled("X", 0, models.ExtraNone),
	)

	card := stats.BowlingCard(in)
	if len(card) != 2 {
		t.Fatalf("entries = %d, want 2", len(card))
	}
	if card[0].Player != "X" || card[0].RunsConceded != 1 || card[0].LegalBalls != 2 {
		t.Errorf("X = %+v", card[0])
	}
	if card[1].Player != "Y" || card[1].RunsConceded != 4 || card[1].LegalBalls != 1 {
		t.Errorf("Y = %+v", card[1])
	}
}

func TestEconomy(t *testing.T) {
	tests := []struct {
		name  string
		entry stats.BowlingEntry
		want  float64
	}{
		{"No balls bowled", stats.BowlingEntry{RunsConceded: 0, LegalBalls: 0}, 0},
		{"Six an over", stats.BowlingEntry{RunsConceded: 24, LegalBalls: 24}, 6},
		{"Tight spell", stats.BowlingEntry{RunsConceded: 12, LegalBalls: 24}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Economy(); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("Economy() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBowlingOversDisplay(t *testing.T) {
	entry := stats.BowlingEntry{LegalBalls: 13}
	if got := entry.Overs(); got != "2.1" {
		t.Errorf("Overs() = %q, want 2.1", got)
	}
}
