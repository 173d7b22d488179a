package repository

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// JournalRepository defines persistence operations for journal entries.
// Journals are append-only; there is no update or delete.
type JournalRepository interface {
	// CreateEntry persists a new journal entry.
	CreateEntry(ctx context.Context, entry *entity.JournalEntry) error

	// FindEntriesByUser retrieves all journal entries for a user, newest first.
	FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error)
}
