package models

import "time"

// ExtraType classifies the extra on a delivery. A delivery carries at
// most one extra; ExtraNone marks a delivery off the bat only.
type ExtraType string

const (
	ExtraNone   ExtraType = ""
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "noball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "legbye"
)

// Valid reports whether e is one of the recognized extra types.
func (e ExtraType) Valid() bool {
	switch e {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
		return true
	}
	return false
}

// Runs breaks down the runs scored on one delivery.
// Total is always Batter + Extras.
type Runs struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

// Wicket records one dismissal on a delivery.
type Wicket struct {
	PlayerOut string `json:"player_out"`
	Kind      string `json:"kind"`
}

// Delivery is one bowled ball and its recorded outcome. Deliveries are
// immutable once appended to the ledger.
type Delivery struct {
	Batter     string    `json:"batter"`
	NonStriker string    `json:"non_striker,omitempty"`
	Bowler     string    `json:"bowler"`
	Runs       Runs      `json:"runs"`
	Extra      ExtraType `json:"extra,omitempty"`
	Wickets    []Wicket  `json:"wickets,omitempty"`
	Commentary string    `json:"commentary,omitempty"`
}

// IsLegal reports whether the delivery counts toward the six balls of
// an over. Byes and leg-byes are legal; wides and no-balls are not.
func (d Delivery) IsLegal() bool {
	return d.Extra != ExtraWide && d.Extra != ExtraNoBall
}

// Over is an ordered run of deliveries. Number is 0-based and strictly
// increasing within an innings.
type Over struct {
	Number     int        `json:"over"`
	Deliveries []Delivery `json:"deliveries"`
}

// LegalBalls counts the deliveries in the over that are neither wides
// nor no-balls.
func (o Over) LegalBalls() int {
	n := 0
	for _, d := range o.Deliveries {
		if d.IsLegal() {
			n++
		}
	}
	return n
}

// Target is the chase target set for an innings, when one applies.
type Target struct {
	Runs  int `json:"runs"`
	Overs int `json:"overs,omitempty"`
}

// Innings is one team's turn batting. The overs list is append-only;
// an innings is closed purely structurally, by not being the last one
// in the match's innings list.
type Innings struct {
	Team   string  `json:"team"`
	Overs  []Over  `json:"overs"`
	Target *Target `json:"target,omitempty"`
}

// Toss records the pre-match coin toss.
type Toss struct {
	Winner   string `json:"winner"`
	Decision string `json:"decision"`
}

// Outcome is the match result. It is always written by the operator,
// never derived from the ledger.
type Outcome struct {
	Winner string `json:"winner,omitempty"`
	By     string `json:"by,omitempty"`
}

// Event identifies the series or tournament a match belongs to.
type Event struct {
	Name        string `json:"name,omitempty"`
	MatchNumber int    `json:"match_number,omitempty"`
}

// MatchInfo holds the fixture metadata, in the Cricsheet JSON shape.
type MatchInfo struct {
	Dates     []string            `json:"dates"`
	MatchType string              `json:"match_type"`
	Venue     string              `json:"venue"`
	Event     Event               `json:"event"`
	Teams     []string            `json:"teams"`
	Players   map[string][]string `json:"players,omitempty"`
	Toss      *Toss               `json:"toss,omitempty"`
	Outcome   *Outcome            `json:"outcome,omitempty"`
}

// Match is the unit of consistency: the fixture metadata plus the
// append-only ledger of innings, overs and deliveries. Every nested
// entity is owned exclusively by its match.
type Match struct {
	ID        string    `json:"id"`
	Info      MatchInfo `json:"info"`
	Innings   []Innings `json:"innings"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// CurrentInnings returns the innings in progress (the last one), or
// nil if the toss has not opened one yet.
func (m *Match) CurrentInnings() *Innings {
	if len(m.Innings) == 0 {
		return nil
	}
	return &m.Innings[len(m.Innings)-1]
}

// OtherTeam resolves the opposition for a team name. The bowling side
// is always "the team that is not batting"; with more than two rostered
// teams the first non-matching one wins.
func (m *Match) OtherTeam(team string) string {
	for _, t := range m.Info.Teams {
		if t != team {
			return t
		}
	}
	return ""
}

// RankedPlayer is one row of a rankings table.
type RankedPlayer struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	Rating int    `json:"rating"`
}

// Ranking is the player table for one category, e.g. men_test_batting.
type Ranking struct {
	Category    string         `json:"category"`
	Players     []RankedPlayer `json:"players"`
	LastUpdated time.Time      `json:"last_updated"`
}
