package usecase

import (
	"context"
	"time"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHabitInput defines the data required to create a habit.
type CreateHabitInput struct {
	Name      string `json:"name" validate:"required"`
	Frequency string `json:"frequency"`
}

// ToggleHabitInput identifies the habit and the day being toggled.
// Date is optional; when zero it defaults to the current UTC day.
type ToggleHabitInput struct {
	HabitID uuid.UUID `json:"id" validate:"required"`
	Date    time.Time `json:"date"`
}

// HabitView is a habit together with its derived monthly progress.
type HabitView struct {
	*entity.Habit
	MonthlyProgress *entity.HabitProgress `json:"monthlyProgress"`
}

// HabitUsecase defines habit tracking operations.
type HabitUsecase interface {
	// CreateHabit creates a habit for the user. An empty frequency
	// defaults to daily; anything else must be a valid frequency.
	CreateHabit(ctx context.Context, userID uuid.UUID, input *CreateHabitInput) (*HabitView, error)

	// ListHabits returns the user's habits with monthly progress, newest
	// created first.
	ListHabits(ctx context.Context, userID uuid.UUID) ([]*HabitView, error)

	// ToggleDay flips the completion state of one day bucket. Toggling the
	// same day twice restores the original state.
	ToggleDay(ctx context.Context, userID uuid.UUID, input *ToggleHabitInput) (*HabitView, error)
}
