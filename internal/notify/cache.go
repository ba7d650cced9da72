package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Priyank-2005/opencric/internal/stats"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// SummaryTTL bounds how long a cached summary can outlive its match.
const SummaryTTL = 2 * time.Hour

// SummaryCache keeps the latest live summary per match in redis. It is
// advisory only: the summary is recomputed from the ledger on every
// write, and any miss falls back to recomputing from the store, so the
// cache can never drift from the source of truth.
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new summary cache.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

func summaryKey(matchID string) string {
	return fmt.Sprintf("match:%s:summary", matchID)
}

// WriteMatchSummary recomputes the summary from the post-mutation
// snapshot and stores it. Best-effort: errors are logged and dropped.
func (c *SummaryCache) WriteMatchSummary(ctx context.Context, m *models.Match) {
	summary := stats.Summarize(m)

	data, err := json.Marshal(summary)
	if err != nil {
		fmt.Printf("⚠️  marshal summary for %s: %v\n", m.ID, err)
		return
	}

	if err := c.client.Set(ctx, summaryKey(m.ID), data, SummaryTTL).Err(); err != nil {
		fmt.Printf("⚠️  cache summary for %s: %v\n", m.ID, err)
	}
}

// ReadMatchSummary returns the cached summary, or ok=false on any
// miss or decode problem.
func (c *SummaryCache) ReadMatchSummary(ctx context.Context, matchID string) (stats.MatchSummary, bool) {
	data, err := c.client.Get(ctx, summaryKey(matchID)).Bytes()
	if err != nil {
		return stats.MatchSummary{}, false
	}

	var summary stats.MatchSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return stats.MatchSummary{}, false
	}
	return summary, true
}
