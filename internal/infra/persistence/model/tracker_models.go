package model

import (
	"time"

	"github.com/google/uuid"
)

// GratitudeModel mirrors the 'gratitude_entries' table.
type GratitudeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsChecked bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GratitudeModel) TableName() string {
	return "gratitude_entries"
}

// JournalModel mirrors the 'journal_entries' table.
type JournalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (JournalModel) TableName() string {
	return "journal_entries"
}

// MeditationModel mirrors the 'meditation_sessions' table.
type MeditationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Duration  int       `gorm:"not null"` // seconds
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MeditationModel) TableName() string {
	return "meditation_sessions"
}
