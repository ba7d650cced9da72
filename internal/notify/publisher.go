package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Priyank-2005/opencric/pkg/models"
)

// ChannelPattern is what live-view consumers subscribe with.
const ChannelPattern = "match.*"

// ChannelFor returns the pub/sub channel name for one match.
func ChannelFor(matchID string) string {
	return "match." + matchID
}

// Publisher broadcasts score events over redis pub/sub, one channel
// per match. Delivery is fire-and-forget, at most once: there is no
// backlog or replay, and a dropped event is healed by viewers
// re-fetching the match over HTTP.
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a new publisher.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishScoreUpdate publishes one score event to the match's channel.
// Failures are logged and swallowed; the ledger mutation has already
// committed and must not be rolled back for a lost notification.
func (p *Publisher) PublishScoreUpdate(ctx context.Context, event models.ScoreEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		fmt.Printf("⚠️  marshal score event for %s: %v\n", event.MatchID, err)
		return
	}

	if err := p.client.Publish(ctx, ChannelFor(event.MatchID), data).Err(); err != nil {
		fmt.Printf("⚠️  publish score event for %s: %v\n", event.MatchID, err)
	}
}
