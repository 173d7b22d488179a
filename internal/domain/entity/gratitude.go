package entity

import (
	"time"

	"github.com/google/uuid"
)

// GratitudeEntry is a short user-owned note of something the user is
// grateful for, checkable like a todo item.
type GratitudeEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	IsChecked bool      `json:"isChecked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
