package model

import (
	"time"

	"github.com/google/uuid"
)

// HabitModel mirrors the 'habits' table.
type HabitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Frequency string    `gorm:"type:varchar(10);not null;default:daily"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Completions []HabitCompletionModel `gorm:"foreignKey:HabitID"`
}

// TableName explicitly sets the table name for GORM.
func (HabitModel) TableName() string {
	return "habits"
}

// HabitCompletionModel mirrors the 'habit_completions' table. The unique
// index over (habit_id, completed_on) is what upholds the one-entry-per-day
// invariant under concurrent toggles.
type HabitCompletionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	HabitID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_completion_day"`
	CompletedOn time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_completion_day"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HabitCompletionModel) TableName() string {
	return "habit_completions"
}
