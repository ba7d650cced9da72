package store

import (
	"context"
	"errors"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// ErrNotFound is returned when no match exists for the given id.
var ErrNotFound = errors.New("match not found")

// MatchStore defines the persistence collaborator for match documents.
// UpdateMatch is the only mutation path for an existing match: the
// implementation must run mutate inside an exclusive section per match
// id, apply it to the current document, and persist the result
// atomically. The returned snapshot is the committed post-mutation
// state. A non-nil error from mutate aborts the update and is returned
// unchanged.
type MatchStore interface {
	CreateMatches(ctx context.Context, matches []models.Match) error
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context, limit int) ([]models.Match, error)
	SearchMatches(ctx context.Context, query string, limit int) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id string, mutate func(*models.Match) error) (*models.Match, error)
	Ping(ctx context.Context) error
	Close() error
}

// RankingStore defines persistence for the player ranking tables.
type RankingStore interface {
	GetRankings(ctx context.Context) (map[string][]models.RankedPlayer, error)
	UpsertRanking(ctx context.Context, category string, players []models.RankedPlayer) (*models.Ranking, error)
}
