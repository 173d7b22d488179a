package usecase

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// LogMeditationInput defines the data required to record a session.
type LogMeditationInput struct {
	Duration int `json:"duration" validate:"required,gt=0"` // seconds
}

// MeditationUsecase defines meditation session operations.
type MeditationUsecase interface {
	// LogSession records a completed session. Duration must be positive.
	LogSession(ctx context.Context, userID uuid.UUID, input *LogMeditationInput) (*entity.MeditationSession, error)

	// ListRecent returns the user's most recent sessions, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID) ([]*entity.MeditationSession, error)
}
