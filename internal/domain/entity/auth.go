package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType distinguishes how an authentication record was established.
type ProviderType string

// ProviderTypeEmail is the email/password credential provider.
const ProviderTypeEmail ProviderType = "email"

// Authentication is a credential record attached to a user. A user may hold
// one record per provider.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // For the email provider this is the email address.
	PasswordHash   string
	CreatedAt      time.Time
}

// RefreshToken is a stored session credential. Only the SHA-256 hash of the
// opaque token is persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionInfo is the user-facing view of an active or expired session.
type SessionInfo struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
}
