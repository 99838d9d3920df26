package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type ScoreUpdatedEvent struct {
	Type      string `json:"type"`
	Email     string `json:"email"`
	Delta     int    `json:"delta"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyScoreUpdated broadcasts a score change to subscribers. With no
// hub configured it is a no-op, so callers never need to care whether
// the feed is running.
func NotifyScoreUpdated(email string, delta int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return
	}

	evt := ScoreUpdatedEvent{
		Type:      "score_updated",
		Email:     email,
		Delta:     delta,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
