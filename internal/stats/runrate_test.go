package stats_test

import (
	"reflect"
	"testing"

	"github.com/Priyank-2005/opencric/internal/stats"
	"github.com/Priyank-2005/opencric/pkg/models"
)

func TestRunRateSeries(t *testing.T) {
	// Two full overs and a partial third
	var deliveries []models.Delivery
	for i := 0; i < 6; i++ {
		deliveries = append(deliveries, delivery(1, models.ExtraNone, false))
	}
	deliveries = append(deliveries, delivery(4, models.ExtraNone, false))
	deliveries = append(deliveries, delivery(0, models.ExtraNone, true))
	for i := 0; i < 4; i++ {
		deliveries = append(deliveries, delivery(0, models.ExtraNone, false))
	}
	deliveries = append(deliveries, delivery(6, models.ExtraNone, false))

	in := inningsOf(deliveries...)

	got := stats.RunRateSeries(in)
	want := []stats.OverSummary{
		{Over: 0, Runs: 6, CumulativeRuns: 6, Wickets: 0},
		{Over: 1, Runs: 4, CumulativeRuns: 10, Wickets: 1},
		{Over: 2, Runs: 6, CumulativeRuns: 16, Wickets: 0},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RunRateSeries() = %+v, want %+v", got, want)
	}
}

func TestRunRateSeriesEmptyInnings(t *testing.T) {
	got := stats.RunRateSeries(models.Innings{Team: "India"})
	if len(got) != 0 {
		t.Errorf("series = %+v, want empty", got)
	}
}

func TestRunRateSeriesCountsExtras(t *testing.T) {
	in := inningsOf(
		delivery(0, models.ExtraWide, false),
		delivery(4, models.ExtraNone, false),
	)

	got := stats.RunRateSeries(in)
	if len(got) != 1 {
		t.Fatalf("points = %d, want 1", len(got))
	}
	if got[0].Runs != 5 {
		t.Errorf("over runs = %d, want 5 (wide counts toward the over)", got[0].Runs)
	}
}
