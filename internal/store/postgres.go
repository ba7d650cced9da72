package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// Client is the Postgres implementation of MatchStore and
// RankingStore. Each match is one JSONB document per row; mutations
// read the row under SELECT ... FOR UPDATE inside a transaction, which
// serializes all writers for a match id without coordinating across
// matches.
type Client struct {
	db *sql.DB
}

// NewClient opens a Postgres connection pool and verifies it.
func NewClient(dsn string) (*Client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

// EnsureSchema creates the tables if they do not exist yet.
func (c *Client) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id UUID PRIMARY KEY,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rankings (
			category TEXT PRIMARY KEY,
			players JSONB NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// CreateMatches inserts a batch of new match documents. Matches
// without an id are assigned one.
func (c *Client) CreateMatches(ctx context.Context, matches []models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create matches: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for i := range matches {
		m := &matches[i]
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		m.CreatedAt = now
		m.UpdatedAt = now

		doc, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal match %s: %w", m.ID, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO matches (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $3)`,
			m.ID, doc, now,
		); err != nil {
			return fmt.Errorf("insert match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create matches: %w", err)
	}
	return nil
}

// GetMatch retrieves a single match document by id.
func (c *Client) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var doc []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT doc FROM matches WHERE id = $1`, id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query match: %w", err)
	}

	return decodeMatch(id, doc)
}

// ListMatches retrieves the most recent matches, newest fixture date
// first.
func (c *Client) ListMatches(ctx context.Context, limit int) ([]models.Match, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, doc FROM matches
		 ORDER BY doc->'info'->'dates'->>0 DESC NULLS LAST, created_at DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// SearchMatches finds matches whose teams, venue, event name or format
// contain the query, case-insensitively, newest first.
func (c *Client) SearchMatches(ctx context.Context, query string, limit int) ([]models.Match, error) {
	pattern := "%" + query + "%"
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, doc FROM matches
		 WHERE doc->'info'->>'venue' ILIKE $1
		    OR doc->'info'->'event'->>'name' ILIKE $1
		    OR doc->'info'->>'match_type' ILIKE $1
		    OR EXISTS (
		        SELECT 1 FROM jsonb_array_elements_text(doc->'info'->'teams') team
		        WHERE team ILIKE $1
		    )
		 ORDER BY doc->'info'->'dates'->>0 DESC NULLS LAST, created_at DESC
		 LIMIT $2`, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// UpdateMatch applies mutate to the match document inside a
// transaction holding a row lock on the match, then persists the
// result. Concurrent updates for the same match id queue on the row
// lock, so each mutate sees the previous one's committed state.
func (c *Client) UpdateMatch(ctx context.Context, id string, mutate func(*models.Match) error) (*models.Match, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update match: %w", err)
	}
	defer tx.Rollback()

	var doc []byte
	err = tx.QueryRowContext(ctx,
		`SELECT doc FROM matches WHERE id = $1 FOR UPDATE`, id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock match: %w", err)
	}

	m, err := decodeMatch(id, doc)
	if err != nil {
		return nil, err
	}

	if err := mutate(m); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now().UTC()

	updated, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal match %s: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE matches SET doc = $2, updated_at = $3 WHERE id = $1`,
		id, updated, m.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update match %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update match: %w", err)
	}
	return m, nil
}

// DeleteAllMatches clears the matches table. Used by the seed tool.
func (c *Client) DeleteAllMatches(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	return nil
}

// GetRankings retrieves every ranking table keyed by category.
func (c *Client) GetRankings(ctx context.Context) (map[string][]models.RankedPlayer, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT category, players FROM rankings`)
	if err != nil {
		return nil, fmt.Errorf("query rankings: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.RankedPlayer)
	for rows.Next() {
		var category string
		var raw []byte
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}

		var players []models.RankedPlayer
		if err := json.Unmarshal(raw, &players); err != nil {
			return nil, fmt.Errorf("decode ranking %s: %w", category, err)
		}
		result[category] = players
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rankings: %w", err)
	}

	return result, nil
}

// UpsertRanking replaces the player table for a category.
func (c *Client) UpsertRanking(ctx context.Context, category string, players []models.RankedPlayer) (*models.Ranking, error) {
	raw, err := json.Marshal(players)
	if err != nil {
		return nil, fmt.Errorf("marshal ranking %s: %w", category, err)
	}

	now := time.Now().UTC()
	if _, err := c.db.ExecContext(ctx,
		`INSERT INTO rankings (category, players, last_updated) VALUES ($1, $2, $3)
		 ON CONFLICT (category) DO UPDATE SET players = $2, last_updated = $3`,
		category, raw, now,
	); err != nil {
		return nil, fmt.Errorf("upsert ranking %s: %w", category, err)
	}

	return &models.Ranking{Category: category, Players: players, LastUpdated: now}, nil
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

func decodeMatch(id string, doc []byte) (*models.Match, error) {
	var m models.Match
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("decode match %s: %w", id, err)
	}
	m.ID = id
	return &m, nil
}

func scanMatches(rows *sql.Rows) ([]models.Match, error) {
	var matches []models.Match
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}

		m, err := decodeMatch(id, doc)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}
