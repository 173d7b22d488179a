package usecase

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// AddJournalInput defines the data required to add a journal entry.
type AddJournalInput struct {
	Content string `json:"content" validate:"required"`
}

// JournalUsecase defines free-form journal operations. Entries are
// append-only.
type JournalUsecase interface {
	// AddEntry appends a journal entry. Blank content is rejected.
	AddEntry(ctx context.Context, userID uuid.UUID, input *AddJournalInput) (*entity.JournalEntry, error)

	// ListEntries returns all of the user's entries, newest first.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error)
}
