package service

import (
	"context"
	"time"
)

// Streak event kinds published to the message queue.
const (
	StreakEventReset     = "reset"
	StreakEventMilestone = "milestone"
)

// StreakEvent represents a streak state change to be processed asynchronously
// by the push worker.
type StreakEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"` // "reset" or "milestone"
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	StreakDays int       `json:"streak_days,omitempty"` // Days reached, for milestone events
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStreakEvent publishes a streak event for async processing
	PublishStreakEvent(ctx context.Context, event *StreakEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
