package repository

import (
	"context"
	"errors"
	"time"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHabitNotFound is returned when a habit id does not resolve.
var ErrHabitNotFound = errors.New("habit not found")

// HabitRepository defines persistence operations for habits and their
// per-day completion sets.
type HabitRepository interface {
	// CreateHabit persists a new habit with an empty completion set.
	CreateHabit(ctx context.Context, habit *entity.Habit) error

	// FindHabitByID retrieves a habit with its completed dates.
	FindHabitByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindHabitsByUser retrieves all habits for a user, newest created first,
	// each with its completed dates.
	FindHabitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// AddCompletion inserts a completion row for the given day bucket.
	// The day must already be normalized to the start of its UTC day.
	AddCompletion(ctx context.Context, habitID uuid.UUID, day time.Time) error

	// RemoveCompletion deletes the completion row for the given day bucket.
	RemoveCompletion(ctx context.Context, habitID uuid.UUID, day time.Time) error
}
