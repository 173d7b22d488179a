package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeditationSession records a completed meditation sit. Append-only.
type MeditationSession struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Duration  int       `json:"duration"` // Duration in seconds, always positive.
	CreatedAt time.Time `json:"created_at"`
}
