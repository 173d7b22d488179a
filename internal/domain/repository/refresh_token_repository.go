package repository

import (
	"context"
	"errors"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token does not resolve.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence operations for session tokens.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a token record by its stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindRefreshTokenByID retrieves a token record by its unique ID.
	FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	// FindRefreshTokensByUserID retrieves all token records for a user.
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteRefreshToken removes a token record by ID.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokensByUserID removes all token records for a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
