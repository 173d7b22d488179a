package repository

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// MeditationRepository defines persistence operations for meditation sessions.
// Sessions are append-only.
type MeditationRepository interface {
	// CreateSession persists a new meditation session.
	CreateSession(ctx context.Context, session *entity.MeditationSession) error

	// FindRecentSessions retrieves up to limit sessions for a user, newest first.
	FindRecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MeditationSession, error)
}
