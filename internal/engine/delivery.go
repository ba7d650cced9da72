package engine

import (
	"fmt"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// Every flagged extra is worth a single run. The scoring panel has no
// way to award the additional runs a no-ball or wide can carry.
const extraRun = 1

// Dismissals are recorded with one fixed kind; the panel does not let
// the operator pick caught/lbw/run out.
const dismissalKind = "bowled"

// BallInput is the raw scoring action submitted by the operator for
// one delivery.
type BallInput struct {
	RunsOffBat int
	Extra      models.ExtraType
	IsWicket   bool
	Striker    string
	NonStriker string
	Bowler     string
	Commentary string
}

// NormalizeDelivery turns a raw scoring action into a canonical
// delivery record. It is pure: no ledger state is consulted and no
// side effects occur.
func NormalizeDelivery(in BallInput) (models.Delivery, error) {
	if in.RunsOffBat < 0 {
		return models.Delivery{}, &ValidationError{Reason: fmt.Sprintf("runs off bat must be non-negative, got %d", in.RunsOffBat)}
	}
	if in.Striker == "" {
		return models.Delivery{}, &ValidationError{Reason: "striker is required"}
	}
	if in.Bowler == "" {
		return models.Delivery{}, &ValidationError{Reason: "bowler is required"}
	}
	if !in.Extra.Valid() {
		return models.Delivery{}, &ValidationError{Reason: fmt.Sprintf("unknown extra type %q", in.Extra)}
	}

	extras := 0
	if in.Extra != models.ExtraNone {
		extras = extraRun
	}

	d := models.Delivery{
		Batter:     in.Striker,
		NonStriker: in.NonStriker,
		Bowler:     in.Bowler,
		Runs: models.Runs{
			Batter: in.RunsOffBat,
			Extras: extras,
			Total:  in.RunsOffBat + extras,
		},
		Extra:      in.Extra,
		Commentary: in.Commentary,
	}

	if d.Commentary == "" {
		d.Commentary = fmt.Sprintf("Runs: %d", in.RunsOffBat)
	}

	if in.IsWicket {
		d.Wickets = []models.Wicket{{PlayerOut: in.Striker, Kind: dismissalKind}}
	}

	return d, nil
}
