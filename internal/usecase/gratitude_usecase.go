package usecase

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// AddGratitudeInput defines the data required to add a gratitude entry.
type AddGratitudeInput struct {
	Content string `json:"content" validate:"required"`
}

// ToggleGratitudeInput identifies the entry whose checked state to flip.
type ToggleGratitudeInput struct {
	EntryID uuid.UUID `json:"id" validate:"required"`
}

// GratitudeUsecase defines gratitude journal operations.
type GratitudeUsecase interface {
	// AddEntry appends a new unchecked entry for the user.
	AddEntry(ctx context.Context, userID uuid.UUID, input *AddGratitudeInput) (*entity.GratitudeEntry, error)

	// ListToday returns the user's entries created during the current UTC
	// day, oldest first.
	ListToday(ctx context.Context, userID uuid.UUID) ([]*entity.GratitudeEntry, error)

	// ListHistory returns the user's most recent entries, newest first.
	ListHistory(ctx context.Context, userID uuid.UUID) ([]*entity.GratitudeEntry, error)

	// ToggleChecked flips the checked state of an entry the user owns.
	ToggleChecked(ctx context.Context, userID, entryID uuid.UUID) (*entity.GratitudeEntry, error)

	// DeleteEntry removes an entry the user owns.
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}
