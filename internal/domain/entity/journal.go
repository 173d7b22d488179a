package entity

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-form user-owned text entry. Append-only: there is
// no update or delete path for journals.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
