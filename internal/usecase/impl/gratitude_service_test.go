package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"regain/internal/domain/constants"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	mockRepo "regain/internal/mocks/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// gratitudeServiceFixtures holds all test dependencies for gratitude service tests.
type gratitudeServiceFixtures struct {
	service       usecase.GratitudeUsecase
	txManager     *mockRepo.MockTransactionManager
	gratitudeRepo *mockRepo.MockGratitudeRepository
}

func createTestGratitudeService(t *testing.T) gratitudeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	gratitudeRepo := mockRepo.NewMockGratitudeRepository(t)

	svc := NewGratitudeService(GratitudeServiceParams{
		TxManager:     txManager,
		GratitudeRepo: gratitudeRepo,
		Logger:        newDiscardLogger(),
	})

	return gratitudeServiceFixtures{
		service:       svc,
		txManager:     txManager,
		gratitudeRepo: gratitudeRepo,
	}
}

func TestGratitudeService_AddEntry_Success(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.gratitudeRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.GratitudeEntry")).
		Run(func(ctx context.Context, entry *entity.GratitudeEntry) {
			entry.ID = uuid.New()
			entry.CreatedAt = time.Now().UTC()
		}).
		Return(nil)

	entry, err := fx.service.AddEntry(ctx, userID, &usecase.AddGratitudeInput{Content: " grateful for coffee "})

	require.NoError(t, err)
	assert.Equal(t, "grateful for coffee", entry.Content)
	assert.Equal(t, userID, entry.UserID)
	assert.False(t, entry.IsChecked)
}

func TestGratitudeService_AddEntry_EmptyContent(t *testing.T) {
	fx := createTestGratitudeService(t)

	entry, err := fx.service.AddEntry(context.Background(), uuid.New(), &usecase.AddGratitudeInput{Content: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, entry)
}

func TestGratitudeService_ListToday_UsesDayWindow(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.GratitudeEntry{{ID: uuid.New(), UserID: userID}}

	fx.gratitudeRepo.EXPECT().
		FindEntriesInWindow(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, userID uuid.UUID, start, end time.Time) {
			assert.Equal(t, time.UTC, start.Location())
			assert.Equal(t, 24*time.Hour, end.Sub(start))
		}).
		Return(expected, nil)

	entries, err := fx.service.ListToday(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestGratitudeService_ListHistory(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.GratitudeEntry{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.gratitudeRepo.EXPECT().
		FindRecentEntries(ctx, userID, constants.GratitudeHistoryLimit).
		Return(expected, nil)

	entries, err := fx.service.ListHistory(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestGratitudeService_ToggleChecked_FlipsState(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txGratitudeRepo := mockRepo.NewMockGratitudeRepository(t)

			mockFactory.EXPECT().GratitudeRepo().Return(txGratitudeRepo)

			txGratitudeRepo.EXPECT().
				FindEntryByID(ctx, entryID).
				Return(&entity.GratitudeEntry{ID: entryID, UserID: userID, IsChecked: false}, nil)

			txGratitudeRepo.EXPECT().
				UpdateChecked(ctx, entryID, true).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	entry, err := fx.service.ToggleChecked(ctx, userID, entryID)

	require.NoError(t, err)
	assert.True(t, entry.IsChecked)
}

func TestGratitudeService_ToggleChecked_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txGratitudeRepo := mockRepo.NewMockGratitudeRepository(t)

			mockFactory.EXPECT().GratitudeRepo().Return(txGratitudeRepo)

			txGratitudeRepo.EXPECT().
				FindEntryByID(ctx, entryID).
				Return(&entity.GratitudeEntry{ID: entryID, UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	entry, err := fx.service.ToggleChecked(ctx, userID, entryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, entry)
}

func TestGratitudeService_DeleteEntry_Success(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fx.gratitudeRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.GratitudeEntry{ID: entryID, UserID: userID}, nil)

	fx.gratitudeRepo.EXPECT().
		DeleteEntry(ctx, entryID).
		Return(nil)

	err := fx.service.DeleteEntry(ctx, userID, entryID)

	require.NoError(t, err)
}

func TestGratitudeService_ToggleChecked_UnknownEntryMapsToNotFound(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txGratitudeRepo := mockRepo.NewMockGratitudeRepository(t)

			mockFactory.EXPECT().GratitudeRepo().Return(txGratitudeRepo)

			txGratitudeRepo.EXPECT().
				FindEntryByID(ctx, entryID).
				Return(nil, repository.ErrGratitudeNotFound)

			return fn(mockFactory)
		})

	entry, err := fx.service.ToggleChecked(ctx, uuid.New(), entryID)

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrGratitudeNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestGratitudeService_DeleteEntry_UnknownEntryMapsToNotFound(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fx.gratitudeRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(nil, repository.ErrGratitudeNotFound)

	err := fx.service.DeleteEntry(ctx, uuid.New(), entryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGratitudeNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestGratitudeService_DeleteEntry_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestGratitudeService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fx.gratitudeRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.GratitudeEntry{ID: entryID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteEntry(ctx, uuid.New(), entryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
