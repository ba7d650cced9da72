package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// Cricsheet files record a delivery's extra as a keyed object
// ({"wides": 1}); the ledger models it as a single tagged value, so the
// archive shape gets its own decode types and a conversion pass.

type archiveFile struct {
	Info    models.MatchInfo `json:"info"`
	Innings []archiveInnings `json:"innings"`
}

type archiveInnings struct {
	Team   string         `json:"team"`
	Overs  []archiveOver  `json:"overs"`
	Target *models.Target `json:"target"`
}

type archiveOver struct {
	Over       int               `json:"over"`
	Deliveries []archiveDelivery `json:"deliveries"`
}

type archiveDelivery struct {
	Batter     string          `json:"batter"`
	NonStriker string          `json:"non_striker"`
	Bowler     string          `json:"bowler"`
	Runs       models.Runs     `json:"runs"`
	Extras     map[string]int  `json:"extras"`
	Wickets    []models.Wicket `json:"wickets"`
}

// loadArchiveFile parses one Cricsheet JSON file into a match document.
func loadArchiveFile(path string) (*models.Match, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file archiveFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(file.Info.Teams) == 0 {
		return nil, fmt.Errorf("no info block")
	}

	match := &models.Match{
		Info:    file.Info,
		Innings: make([]models.Innings, 0, len(file.Innings)),
	}

	for _, in := range file.Innings {
		innings := models.Innings{
			Team:   in.Team,
			Overs:  make([]models.Over, 0, len(in.Overs)),
			Target: in.Target,
		}
		for _, over := range in.Overs {
			o := models.Over{
				Number:     over.Over,
				Deliveries: make([]models.Delivery, 0, len(over.Deliveries)),
			}
			for _, d := range over.Deliveries {
				o.Deliveries = append(o.Deliveries, models.Delivery{
					Batter:     d.Batter,
					NonStriker: d.NonStriker,
					Bowler:     d.Bowler,
					Runs:       d.Runs,
					Extra:      extraFromKeys(d.Extras),
					Wickets:    d.Wickets,
				})
			}
			innings.Overs = append(innings.Overs, o)
		}
		match.Innings = append(match.Innings, innings)
	}

	return match, nil
}

// extraFromKeys maps Cricsheet's extras object onto the tagged extra
// type. A delivery with multiple keys keeps the first recognized one.
func extraFromKeys(extras map[string]int) models.ExtraType {
	for _, key := range []string{"wides", "noballs", "byes", "legbyes"} {
		if extras[key] > 0 {
			switch key {
			case "wides":
				return models.ExtraWide
			case "noballs":
				return models.ExtraNoBall
			case "byes":
				return models.ExtraBye
			case "legbyes":
				return models.ExtraLegBye
			}
		}
	}
	return models.ExtraNone
}
