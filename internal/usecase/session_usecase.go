package usecase

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// GetActiveSessions lists the user's sessions, active first.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)

	// RevokeSession ends one of the user's sessions by refresh token ID.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// RevokeAllSessions ends every session the user holds.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
}
