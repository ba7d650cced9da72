package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Priyank-2005/opencric/internal/hub"
	"github.com/Priyank-2005/opencric/internal/notify"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// PubSubConsumer subscribes to every match channel and forwards score
// events to the hub. Plain pub/sub, not streams: fan-out is
// at-most-once with no backlog, and a viewer that misses an event
// re-fetches the match over HTTP.
type PubSubConsumer struct {
	redis *redis.Client
	hub   *hub.Hub
}

// NewPubSubConsumer creates a new consumer
func NewPubSubConsumer(redisClient *redis.Client, h *hub.Hub) *PubSubConsumer {
	return &PubSubConsumer{
		redis: redisClient,
		hub:   h,
	}
}

// Start subscribes and forwards events until the context is cancelled.
func (c *PubSubConsumer) Start(ctx context.Context) error {
	sub := c.redis.PSubscribe(ctx, notify.ChannelPattern)
	defer sub.Close()

	// Fail fast if the subscription could not be established
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", notify.ChannelPattern, err)
	}

	fmt.Printf("✓ Score consumer started (pattern: %s)\n", notify.ChannelPattern)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			c.processMessage(msg)
		}
	}
}

// processMessage decodes one pub/sub payload and hands it to the hub
func (c *PubSubConsumer) processMessage(msg *redis.Message) {
	var event models.ScoreEvent
	if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
		fmt.Printf("⚠️  invalid score event on %s: %v\n", msg.Channel, err)
		return
	}

	if event.MatchID == "" {
		fmt.Printf("⚠️  score event without match id on %s\n", msg.Channel)
		return
	}

	c.hub.Broadcast(event)
}
