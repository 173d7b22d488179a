package impl

import (
	"context"
	"log/slog"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/constants"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// meditationService implements the MeditationUsecase interface.
type meditationService struct {
	meditationRepo repository.MeditationRepository
	logger         *slog.Logger
}

// MeditationServiceParams holds dependencies for meditationService, injected by Fx.
type MeditationServiceParams struct {
	fx.In

	MeditationRepo repository.MeditationRepository
	Logger         *slog.Logger
}

// NewMeditationService is the constructor for meditationService.
func NewMeditationService(params MeditationServiceParams) usecase.MeditationUsecase {
	return &meditationService{
		meditationRepo: params.MeditationRepo,
		logger:         params.Logger,
	}
}

func (srv *meditationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LogSession records a completed meditation session.
func (srv *meditationService) LogSession(ctx context.Context, userID uuid.UUID, input *usecase.LogMeditationInput) (*entity.MeditationSession, error) {
	if input.Duration <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("meditation duration must be positive")
	}

	session := &entity.MeditationSession{
		UserID:   userID,
		Duration: input.Duration,
	}

	if err := srv.meditationRepo.CreateSession(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create meditation session", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create meditation session")
	}

	return session, nil
}

// ListRecent returns the most recent sessions, newest first.
func (srv *meditationService) ListRecent(ctx context.Context, userID uuid.UUID) ([]*entity.MeditationSession, error) {
	sessions, err := srv.meditationRepo.FindRecentSessions(ctx, userID, constants.MeditationRecentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meditation sessions")
	}

	return sessions, nil
}
