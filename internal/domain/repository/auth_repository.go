package repository

import (
	"context"
	"errors"

	"regain/internal/domain/entity"
)

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines persistence operations for credential records.
type AuthRepository interface {
	// CreateAuthentication persists a new credential record for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves the credential record for a provider and
	// provider-scoped user id (the email address for the email provider).
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
