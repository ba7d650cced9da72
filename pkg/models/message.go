package models

import "time"

// Message types for WebSocket communication
const (
	MessageTypeScoreUpdate = "score_update"
	MessageTypeSubscribe   = "subscribe"
	MessageTypeUnsubscribe = "unsubscribe"
	MessageTypeHeartbeat   = "heartbeat"
	MessageTypeError       = "error"
)

// ScoreEvent is the payload published after every successful ledger
// mutation. LastBall is set only for delivery appends; toss, innings
// change and outcome writes publish the event without it.
type ScoreEvent struct {
	Type     string    `json:"type"`
	MatchID  string    `json:"match_id"`
	LastBall *Delivery `json:"last_ball,omitempty"`
}

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SubscriptionFilter represents client subscription preferences.
// An empty match list accepts every update.
type SubscriptionFilter struct {
	Matches []string `json:"matches,omitempty"`
}

// ErrorMessage represents an error message
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body for HTTP error replies
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
