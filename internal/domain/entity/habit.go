package entity

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the cadence a habit is tracked at.
type Frequency string

const (
	// FrequencyDaily tracks the habit against every elapsed day of the month.
	FrequencyDaily Frequency = "daily"
	// FrequencyWeekly tracks the habit against elapsed weeks of the month.
	FrequencyWeekly Frequency = "weekly"
)

// IsValid reports whether the frequency is one of the supported cadences.
func (f Frequency) IsValid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// Habit is a user-owned recurring practice with a set of completed days.
// CompletedDates holds at most one entry per UTC calendar day; every entry
// is normalized to the start of its day.
type Habit struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	Name           string      `json:"name"`
	Frequency      Frequency   `json:"frequency"`
	CompletedDates []time.Time `json:"completedDates"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// HabitProgress is the derived monthly completion view of a habit.
type HabitProgress struct {
	CompletedThisMonth int  `json:"completedThisMonth"`
	Target             int  `json:"target"`
	Percentage         int  `json:"percentage"`
	CompletedToday     bool `json:"completedToday"`
}
