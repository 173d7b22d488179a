package repository

import (
	"context"
	"errors"
	"time"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGratitudeNotFound is returned when a gratitude entry id does not resolve.
var ErrGratitudeNotFound = errors.New("gratitude entry not found")

// GratitudeRepository defines persistence operations for gratitude entries.
type GratitudeRepository interface {
	// CreateEntry persists a new gratitude entry.
	CreateEntry(ctx context.Context, entry *entity.GratitudeEntry) error

	// FindEntryByID retrieves a single entry by id.
	FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.GratitudeEntry, error)

	// FindEntriesInWindow retrieves a user's entries created within
	// [start, end), ascending by creation time. Used for the "today" view.
	FindEntriesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.GratitudeEntry, error)

	// FindRecentEntries retrieves up to limit entries for a user, newest
	// first. Used for the "history" view.
	FindRecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GratitudeEntry, error)

	// UpdateChecked sets the checked state of an entry.
	UpdateChecked(ctx context.Context, id uuid.UUID, isChecked bool) error

	// DeleteEntry removes an entry by id.
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}
