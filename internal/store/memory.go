package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// MemoryStore is an in-memory MatchStore and RankingStore. It keeps
// the same contract as the Postgres client: one exclusive section per
// match id around mutations, and snapshots (never live pointers)
// returned to readers.
type MemoryStore struct {
	mu       sync.RWMutex
	matches  map[string]*models.Match
	locks    map[string]*sync.Mutex
	rankings map[string][]models.RankedPlayer
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches:  make(map[string]*models.Match),
		locks:    make(map[string]*sync.Mutex),
		rankings: make(map[string][]models.RankedPlayer),
	}
}

// CreateMatches inserts a batch of new match documents.
func (s *MemoryStore) CreateMatches(ctx context.Context, matches []models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for i := range matches {
		m := matches[i]
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		m.CreatedAt = now
		m.UpdatedAt = now
		s.matches[m.ID] = cloneMatch(&m)
	}
	return nil
}

// GetMatch retrieves a snapshot of a match by id.
func (s *MemoryStore) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneMatch(m), nil
}

// ListMatches retrieves up to limit matches, newest fixture date first.
func (s *MemoryStore) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(limit, func(*models.Match) bool { return true }), nil
}

// SearchMatches finds matches whose teams, venue, event name or format
// contain the query, case-insensitively.
func (s *MemoryStore) SearchMatches(ctx context.Context, query string, limit int) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	return s.collect(limit, func(m *models.Match) bool {
		if strings.Contains(strings.ToLower(m.Info.Venue), q) ||
			strings.Contains(strings.ToLower(m.Info.Event.Name), q) ||
			strings.Contains(strings.ToLower(m.Info.MatchType), q) {
			return true
		}
		for _, team := range m.Info.Teams {
			if strings.Contains(strings.ToLower(team), q) {
				return true
			}
		}
		return false
	}), nil
}

// UpdateMatch applies mutate under the match's own lock and commits
// the result only when mutate succeeds.
func (s *MemoryStore) UpdateMatch(ctx context.Context, id string, mutate func(*models.Match) error) (*models.Match, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	current, ok := s.matches[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	working := cloneMatch(current)
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	s.matches[id] = working
	s.mu.Unlock()

	return cloneMatch(working), nil
}

// GetRankings retrieves every ranking table keyed by category.
func (s *MemoryStore) GetRankings(ctx context.Context) (map[string][]models.RankedPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]models.RankedPlayer, len(s.rankings))
	for category, players := range s.rankings {
		result[category] = append([]models.RankedPlayer(nil), players...)
	}
	return result, nil
}

// UpsertRanking replaces the player table for a category.
func (s *MemoryStore) UpsertRanking(ctx context.Context, category string, players []models.RankedPlayer) (*models.Ranking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rankings[category] = append([]models.RankedPlayer(nil), players...)
	return &models.Ranking{
		Category:    category,
		Players:     s.rankings[category],
		LastUpdated: time.Now().UTC(),
	}, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// lockFor returns the mutex serializing mutations for one match id.
func (s *MemoryStore) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// collect snapshots matching documents, newest fixture date first.
// Caller must hold at least a read lock.
func (s *MemoryStore) collect(limit int, keep func(*models.Match) bool) []models.Match {
	var matches []models.Match
	for _, m := range s.matches {
		if keep(m) {
			matches = append(matches, *cloneMatch(m))
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return firstDate(&matches[i]) > firstDate(&matches[j])
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func firstDate(m *models.Match) string {
	if len(m.Info.Dates) == 0 {
		return ""
	}
	return m.Info.Dates[0]
}

// cloneMatch deep-copies a match document via its JSON form, so
// readers and writers never share nested slices.
func cloneMatch(m *models.Match) *models.Match {
	raw, err := json.Marshal(m)
	if err != nil {
		// Match documents are plain data; marshaling cannot fail.
		panic(err)
	}
	var out models.Match
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}
