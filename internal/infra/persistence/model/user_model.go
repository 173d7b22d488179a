package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	Name               string    `gorm:"type:varchar(100)"`
	CurrentStreakStart time.Time `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	StreakResets    []StreakResetModel    `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StreakResetModel mirrors the 'streak_resets' table: one row per past reset,
// the persisted form of the user's append-only history.
type StreakResetModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ResetAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (StreakResetModel) TableName() string {
	return "streak_resets"
}
