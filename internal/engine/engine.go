package engine

import (
	"context"

	"github.com/Priyank-2005/opencric/internal/store"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// An over closes once it holds this many legal deliveries.
const ballsPerOver = 6

// Notifier publishes a score event to live viewers after a successful
// ledger mutation. Publishing is fire-and-forget: failures are logged
// by the implementation, never surfaced to the operator.
type Notifier interface {
	PublishScoreUpdate(ctx context.Context, event models.ScoreEvent)
}

// SummaryWriter refreshes the advisory live-summary cache from the
// post-mutation ledger snapshot.
type SummaryWriter interface {
	WriteMatchSummary(ctx context.Context, m *models.Match)
}

// Engine applies scoring actions to the match ledger. Every mutation
// runs inside the store's per-match exclusive section, so two
// concurrent appends for the same match can never both read the same
// pre-mutation over state.
type Engine struct {
	store    store.MatchStore
	notifier Notifier
	cache    SummaryWriter
}

// New creates an engine. notifier and cache may be nil; mutations then
// persist without fanning out.
func New(st store.MatchStore, notifier Notifier, cache SummaryWriter) *Engine {
	return &Engine{
		store:    st,
		notifier: notifier,
		cache:    cache,
	}
}

// AppendDelivery normalizes one scoring action and appends it to the
// current over of the match's current innings, opening a new over
// when the last one already holds six legal balls. Returns the
// canonical delivery as recorded. The whole mutation is atomic from
// the caller's side: on any error nothing is persisted and nothing is
// published.
func (e *Engine) AppendDelivery(ctx context.Context, matchID string, in BallInput) (models.Delivery, error) {
	delivery, err := NormalizeDelivery(in)
	if err != nil {
		return models.Delivery{}, err
	}

	updated, err := e.store.UpdateMatch(ctx, matchID, func(m *models.Match) error {
		innings := m.CurrentInnings()
		if innings == nil {
			return &InvalidStateError{Reason: "no innings open; record the toss first"}
		}
		appendToInnings(innings, delivery)
		return nil
	})
	if err != nil {
		return models.Delivery{}, err
	}

	e.fanOut(ctx, updated, &delivery)
	return delivery, nil
}

// appendToInnings places the delivery in the current over. The
// rollover decision uses only the legal-ball count already recorded
// before this delivery is added: once the last over holds six legal
// balls the next delivery of any kind opens a new over, while wides
// and no-balls arriving before the sixth legal ball keep piling into
// the same over, which can therefore hold well over six deliveries.
func appendToInnings(innings *models.Innings, d models.Delivery) {
	n := len(innings.Overs)
	if n == 0 || innings.Overs[n-1].LegalBalls() >= ballsPerOver {
		innings.Overs = append(innings.Overs, models.Over{Number: n})
		n++
	}
	over := &innings.Overs[n-1]
	over.Deliveries = append(over.Deliveries, d)
}

// RecordToss writes the toss result. The first call opens innings[0]
// for whichever side bats; later calls overwrite the toss field only
// and never touch an already-open innings.
func (e *Engine) RecordToss(ctx context.Context, matchID, winner, decision string) error {
	if winner == "" {
		return &ValidationError{Reason: "toss winner is required"}
	}
	if decision == "" {
		return &ValidationError{Reason: "toss decision is required"}
	}

	updated, err := e.store.UpdateMatch(ctx, matchID, func(m *models.Match) error {
		m.Info.Toss = &models.Toss{Winner: winner, Decision: decision}
		if len(m.Innings) == 0 {
			batting := winner
			if decision != "bat" {
				batting = m.OtherTeam(winner)
			}
			m.Innings = []models.Innings{{Team: batting, Overs: []models.Over{}}}
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.fanOut(ctx, updated, nil)
	return nil
}

// ChangeInnings closes the current innings structurally by appending a
// fresh one for the other side. No format-specific innings cap is
// enforced; that stays with the operator.
func (e *Engine) ChangeInnings(ctx context.Context, matchID string) error {
	updated, err := e.store.UpdateMatch(ctx, matchID, func(m *models.Match) error {
		current := m.CurrentInnings()
		if current == nil {
			return &InvalidStateError{Reason: "no innings to change from; record the toss first"}
		}
		next := m.OtherTeam(current.Team)
		m.Innings = append(m.Innings, models.Innings{Team: next, Overs: []models.Over{}})
		return nil
	})
	if err != nil {
		return err
	}

	e.fanOut(ctx, updated, nil)
	return nil
}

// SetOutcome writes the match result. Outcomes are never derived from
// the ledger; this is the manual path the admin panel uses.
func (e *Engine) SetOutcome(ctx context.Context, matchID string, outcome models.Outcome) error {
	if outcome.Winner == "" {
		return &ValidationError{Reason: "outcome winner is required"}
	}

	updated, err := e.store.UpdateMatch(ctx, matchID, func(m *models.Match) error {
		m.Info.Outcome = &outcome
		return nil
	})
	if err != nil {
		return err
	}

	e.fanOut(ctx, updated, nil)
	return nil
}

// fanOut refreshes the summary cache and notifies live viewers.
// Both are best-effort; the mutation has already committed.
func (e *Engine) fanOut(ctx context.Context, m *models.Match, lastBall *models.Delivery) {
	if e.cache != nil && m != nil {
		e.cache.WriteMatchSummary(ctx, m)
	}
	if e.notifier != nil && m != nil {
		e.notifier.PublishScoreUpdate(ctx, models.ScoreEvent{
			Type:     models.MessageTypeScoreUpdate,
			MatchID:  m.ID,
			LastBall: lastBall,
		})
	}
}
