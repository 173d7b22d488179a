package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// journalService implements the JournalUsecase interface.
type journalService struct {
	journalRepo repository.JournalRepository
	logger      *slog.Logger
}

// JournalServiceParams holds dependencies for journalService, injected by Fx.
type JournalServiceParams struct {
	fx.In

	JournalRepo repository.JournalRepository
	Logger      *slog.Logger
}

// NewJournalService is the constructor for journalService.
func NewJournalService(params JournalServiceParams) usecase.JournalUsecase {
	return &journalService{
		journalRepo: params.JournalRepo,
		logger:      params.Logger,
	}
}

func (srv *journalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddEntry appends a new journal entry for the user.
func (srv *journalService) AddEntry(ctx context.Context, userID uuid.UUID, input *usecase.AddJournalInput) (*entity.JournalEntry, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("journal content must not be empty")
	}

	entry := &entity.JournalEntry{
		UserID:  userID,
		Content: content,
	}

	if err := srv.journalRepo.CreateEntry(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to create journal entry", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create journal entry")
	}

	return entry, nil
}

// ListEntries returns all entries for the user, newest first.
func (srv *journalService) ListEntries(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error) {
	entries, err := srv.journalRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal entries")
	}

	return entries, nil
}
