package stats

import "github.com/Priyank-2005/opencric/pkg/models"

// OverSummary is one point of the run-rate series.
type OverSummary struct {
	Over           int `json:"over"`
	Runs           int `json:"runs"`
	CumulativeRuns int `json:"cumulative_runs"`
	Wickets        int `json:"wickets"`
}

// RunRateSeries computes the per-over worm for chart rendering,
// freshly on every call.
func RunRateSeries(in models.Innings) []OverSummary {
	series := make([]OverSummary, 0, len(in.Overs))
	cumulative := 0

	for _, over := range in.Overs {
		point := OverSummary{Over: over.Number}
		for _, d := range over.Deliveries {
			point.Runs += d.Runs.Total
			if len(d.Wickets) > 0 {
				point.Wickets++
			}
		}
		cumulative += point.Runs
		point.CumulativeRuns = cumulative
		series = append(series, point)
	}

	return series
}
