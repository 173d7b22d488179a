// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/domain/service"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// milestones is the ladder of streak-day marks the progress bar interpolates
// between. Past the last rung progress stays pinned at 100.
var milestones = []int{1, 3, 7, 14, 30, 60, 90, 180, 365}

// streakService implements the StreakUsecase interface.
type streakService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// StreakServiceParams holds dependencies for streakService, injected by Fx.
type StreakServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewStreakService is the constructor for streakService.
func NewStreakService(params StreakServiceParams) usecase.StreakUsecase {
	return &streakService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *streakService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStatus computes the derived streak view at the current instant.
func (srv *streakService) GetStatus(ctx context.Context, userID uuid.UUID) (*entity.StreakStatus, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for streak status")
	}

	now := time.Now().UTC()

	// Self-healing: a zero start must be repaired and persisted before any
	// elapsed time is computed, so the caller never sees an invalid duration.
	if user.CurrentStreakStart.IsZero() {
		srv.log(ctx).Warn("Repairing missing streak start", slog.Any("userID", userID))

		if err := srv.userRepo.UpdateStreakStart(ctx, userID, now); err != nil {
			return nil, errors.Wrap(err, "failed to repair streak start")
		}
		user.CurrentStreakStart = now
	}

	status := buildStreakStatus(user, now)

	// Emit a milestone event in the first hour after crossing a rung. The
	// rule is stateless, so repeated polls inside that hour may publish
	// duplicates; the worker treats pushes as idempotent per event.
	if isFreshMilestone(status.StreakDays, status.StreakHours) {
		srv.publishStreakEvent(ctx, userID, service.StreakEventMilestone, status.StreakDays, now)
	}

	return status, nil
}

// isFreshMilestone reports whether the streak crossed a milestone rung
// within the last hour.
func isFreshMilestone(streakDays, streakHours int) bool {
	if streakHours != streakDays*24 {
		return false
	}

	for _, m := range milestones {
		if streakDays == m {
			return true
		}
	}

	return false
}

// Reset ends the active streak. The history append and the start overwrite
// happen in one transaction; the streak event publish is best effort.
func (srv *streakService) Reset(ctx context.Context, userID uuid.UUID) (*entity.StreakStatus, error) {
	now := time.Now().UTC()

	var endedDays int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to load user for streak reset")
		}

		if !user.CurrentStreakStart.IsZero() {
			elapsed := now.Sub(user.CurrentStreakStart)
			if elapsed < 0 {
				elapsed = -elapsed
			}
			endedDays = int(elapsed / (24 * time.Hour))
		}

		if err := userRepo.AppendStreakReset(ctx, userID, now); err != nil {
			return errors.Wrap(err, "failed to append streak reset")
		}

		return errors.Wrap(userRepo.UpdateStreakStart(ctx, userID, now), "failed to update streak start")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute streak reset transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute streak reset transaction")
	}

	srv.publishStreakEvent(ctx, userID, service.StreakEventReset, endedDays, now)

	// Reload runs outside the transaction, so a concurrent reset may be
	// reflected here. Last writer wins on the start timestamp either way.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after streak reset")
	}

	return buildStreakStatus(user, time.Now().UTC()), nil
}

// publishStreakEvent emits a streak event without failing the caller.
func (srv *streakService) publishStreakEvent(ctx context.Context, userID uuid.UUID, kind string, streakDays int, occurredAt time.Time) {
	event := &service.StreakEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Kind:       kind,
		UserID:     userID.String(),
		OccurredAt: occurredAt,
		StreakDays: streakDays,
	}

	if err := srv.publisher.PublishStreakEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish streak event",
			slog.String("kind", kind),
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}

// buildStreakStatus derives the streak view from a user's persisted state.
// The absolute difference keeps a slightly-future start (clock skew) from
// producing a negative streak.
func buildStreakStatus(user *entity.User, now time.Time) *entity.StreakStatus {
	elapsed := now.Sub(user.CurrentStreakStart)
	if elapsed < 0 {
		elapsed = -elapsed
	}

	streakDays := int(elapsed / (24 * time.Hour))
	streakHours := int(elapsed / time.Hour)

	history := user.History
	if history == nil {
		history = []time.Time{}
	}

	next, progress := milestoneProgress(streakDays)

	return &entity.StreakStatus{
		StreakDays:        streakDays,
		StreakHours:       streakHours,
		StartDate:         user.CurrentStreakStart,
		History:           history,
		NextMilestone:     next,
		MilestoneProgress: progress,
	}
}

// milestoneProgress returns the next milestone and the linear progress
// percentage from the previous rung toward it.
func milestoneProgress(streakDays int) (next int, progress float64) {
	last := milestones[len(milestones)-1]
	if streakDays >= last {
		return last, 100
	}

	prev := 0
	for _, m := range milestones {
		if streakDays < m {
			next = m

			break
		}
		prev = m
	}

	progress = float64(streakDays-prev) / float64(next-prev) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return next, progress
}
