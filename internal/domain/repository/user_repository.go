// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence,
// including the streak state that lives on the user record.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including streak history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateStreakStart overwrites the user's current streak start. Used both
	// by reset and by the self-healing repair of an absent/invalid start.
	UpdateStreakStart(ctx context.Context, userID uuid.UUID, start time.Time) error

	// AppendStreakReset appends one reset marker to the user's history.
	AppendStreakReset(ctx context.Context, userID uuid.UUID, resetAt time.Time) error
}
