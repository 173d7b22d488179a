package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/constants"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/usecase"
	"regain/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gratitudeService implements the GratitudeUsecase interface.
type gratitudeService struct {
	txManager     repository.TransactionManager
	gratitudeRepo repository.GratitudeRepository
	logger        *slog.Logger
}

// GratitudeServiceParams holds dependencies for gratitudeService, injected by Fx.
type GratitudeServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	GratitudeRepo repository.GratitudeRepository
	Logger        *slog.Logger
}

// NewGratitudeService is the constructor for gratitudeService.
func NewGratitudeService(params GratitudeServiceParams) usecase.GratitudeUsecase {
	return &gratitudeService{
		txManager:     params.TxManager,
		gratitudeRepo: params.GratitudeRepo,
		logger:        params.Logger,
	}
}

func (srv *gratitudeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddEntry appends a new unchecked entry for the user.
func (srv *gratitudeService) AddEntry(ctx context.Context, userID uuid.UUID, input *usecase.AddGratitudeInput) (*entity.GratitudeEntry, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("gratitude content must not be empty")
	}

	entry := &entity.GratitudeEntry{
		UserID:    userID,
		Content:   content,
		IsChecked: false,
	}

	if err := srv.gratitudeRepo.CreateEntry(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to create gratitude entry", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create gratitude entry")
	}

	return entry, nil
}

// ListToday returns the entries created during the current UTC day, oldest first.
func (srv *gratitudeService) ListToday(ctx context.Context, userID uuid.UUID) ([]*entity.GratitudeEntry, error) {
	start, end := util.DayWindow(time.Now())

	entries, err := srv.gratitudeRepo.FindEntriesInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list today's gratitude entries")
	}

	return entries, nil
}

// ListHistory returns the most recent entries, newest first.
func (srv *gratitudeService) ListHistory(ctx context.Context, userID uuid.UUID) ([]*entity.GratitudeEntry, error) {
	entries, err := srv.gratitudeRepo.FindRecentEntries(ctx, userID, constants.GratitudeHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gratitude history")
	}

	return entries, nil
}

// ToggleChecked flips the checked state of an entry the user owns.
func (srv *gratitudeService) ToggleChecked(ctx context.Context, userID, entryID uuid.UUID) (*entity.GratitudeEntry, error) {
	var updated *entity.GratitudeEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gratitudeRepo := repoFactory.GratitudeRepo()

		entry, err := gratitudeRepo.FindEntryByID(ctx, entryID)
		if err != nil {
			if errors.Is(err, repository.ErrGratitudeNotFound) {
				return domainerrors.ErrGratitudeNotFound.WrapMessage("gratitude entry not found")
			}

			return errors.Wrap(err, "failed to load gratitude entry for toggle")
		}
		if entry.UserID != userID {
			return domainerrors.ErrForbidden.WrapMessage("gratitude entry belongs to another user")
		}

		if err := gratitudeRepo.UpdateChecked(ctx, entryID, !entry.IsChecked); err != nil {
			return errors.Wrap(err, "failed to update gratitude checked state")
		}

		entry.IsChecked = !entry.IsChecked
		updated = entry

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute gratitude toggle transaction", slog.Any("entryID", entryID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteEntry removes an entry the user owns.
func (srv *gratitudeService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := srv.gratitudeRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrGratitudeNotFound) {
			return domainerrors.ErrGratitudeNotFound.WrapMessage("gratitude entry not found")
		}

		return errors.Wrap(err, "failed to load gratitude entry for delete")
	}
	if entry.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("gratitude entry belongs to another user")
	}

	if err := srv.gratitudeRepo.DeleteEntry(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete gratitude entry")
	}

	return nil
}
