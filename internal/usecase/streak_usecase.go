package usecase

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// StreakUsecase defines streak state operations. The streak is the core of
// the tracker: an elapsed-time counter since the last reset, plus the
// append-only history of past resets.
type StreakUsecase interface {
	// GetStatus computes the derived streak view for a user at the current
	// instant, repairing an absent or invalid streak start first.
	GetStatus(ctx context.Context, userID uuid.UUID) (*entity.StreakStatus, error)

	// Reset ends the active streak: the current start moves to history and
	// a new streak begins now. Returns the post-reset view.
	Reset(ctx context.Context, userID uuid.UUID) (*entity.StreakStatus, error)
}
