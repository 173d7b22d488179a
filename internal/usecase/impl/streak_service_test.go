package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/domain/service"
	mockRepo "regain/internal/mocks/repository"
	mockSvc "regain/internal/mocks/service"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// streakServiceFixtures holds all test dependencies for streak service tests.
type streakServiceFixtures struct {
	service   usecase.StreakUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestStreakService(t *testing.T) streakServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewStreakService(StreakServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return streakServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func TestStreakService_GetStatus_RepairsMissingStart(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.userRepo.EXPECT().
		UpdateStreakStart(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	status, err := fx.service.GetStatus(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, status.StreakDays)
	assert.Equal(t, 0, status.StreakHours)
	assert.False(t, status.StartDate.IsZero())
	assert.Equal(t, 1, status.NextMilestone)
	assert.InDelta(t, 0, status.MilestoneProgress, 0.001)
	assert.NotNil(t, status.History)
}

func TestStreakService_GetStatus_UnknownUserMapsToNotFound(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	status, err := fx.service.GetStatus(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestStreakService_Reset_UnknownUserMapsToNotFound(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	status, err := fx.service.Reset(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestStreakService_GetStatus_ComputesElapsed(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Now().UTC().Add(-50 * time.Hour)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CurrentStreakStart: start}, nil)

	status, err := fx.service.GetStatus(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, status.StreakDays)
	assert.Equal(t, 50, status.StreakHours)
	assert.Equal(t, start, status.StartDate)
	assert.Equal(t, 3, status.NextMilestone)
	assert.InDelta(t, 50, status.MilestoneProgress, 0.001)
}

func TestStreakService_GetStatus_FutureStartUsesAbsoluteElapsed(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Now().UTC().Add(30 * time.Hour)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CurrentStreakStart: start}, nil)

	status, err := fx.service.GetStatus(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakDays)
	assert.Equal(t, 29, status.StreakHours)
}

func TestStreakService_GetStatus_PublishesFreshMilestone(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CurrentStreakStart: start}, nil)

	var published *service.StreakEvent
	fx.publisher.EXPECT().
		PublishStreakEvent(ctx, mock.AnythingOfType("*service.StreakEvent")).
		Run(func(ctx context.Context, event *service.StreakEvent) {
			published = event
		}).
		Return(nil)

	status, err := fx.service.GetStatus(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakDays)
	require.NotNil(t, published)
	assert.Equal(t, service.StreakEventMilestone, published.Kind)
	assert.Equal(t, userID.String(), published.UserID)
	assert.Equal(t, 1, published.StreakDays)
	assert.NotEmpty(t, published.EventID)
}

func TestStreakService_GetStatus_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, CurrentStreakStart: start}, nil)

	fx.publisher.EXPECT().
		PublishStreakEvent(ctx, mock.AnythingOfType("*service.StreakEvent")).
		Return(assert.AnError)

	status, err := fx.service.GetStatus(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakDays)
}

func TestStreakService_Reset_AppendsHistoryAndPublishes(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldStart := time.Now().UTC().Add(-49 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, CurrentStreakStart: oldStart}, nil)

			txUserRepo.EXPECT().
				AppendStreakReset(ctx, userID, mock.AnythingOfType("time.Time")).
				Return(nil)

			txUserRepo.EXPECT().
				UpdateStreakStart(ctx, userID, mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	var published *service.StreakEvent
	fx.publisher.EXPECT().
		PublishStreakEvent(ctx, mock.AnythingOfType("*service.StreakEvent")).
		Run(func(ctx context.Context, event *service.StreakEvent) {
			published = event
		}).
		Return(nil)

	newStart := time.Now().UTC()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:                 userID,
			CurrentStreakStart: newStart,
			History:            []time.Time{newStart},
		}, nil)

	status, err := fx.service.Reset(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, status.StreakDays)
	assert.Len(t, status.History, 1)
	require.NotNil(t, published)
	assert.Equal(t, service.StreakEventReset, published.Kind)
	assert.Equal(t, 2, published.StreakDays)
}

func TestStreakService_Reset_TransactionFailure(t *testing.T) {
	fx := createTestStreakService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(assert.AnError)

	status, err := fx.service.Reset(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, status)
}

func TestMilestoneProgress(t *testing.T) {
	tests := []struct {
		name         string
		days         int
		wantNext     int
		wantProgress float64
	}{
		{"day zero", 0, 1, 0},
		{"between one and three", 2, 3, 50},
		{"between three and seven", 5, 7, 50},
		{"just before a rung", 29, 30, 93.75},
		{"on a rung targets the next", 30, 60, 0},
		{"final rung", 365, 365, 100},
		{"beyond final rung", 400, 365, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, progress := milestoneProgress(tt.days)
			assert.Equal(t, tt.wantNext, next)
			assert.InDelta(t, tt.wantProgress, progress, 0.001)
		})
	}
}

func TestIsFreshMilestone(t *testing.T) {
	assert.True(t, isFreshMilestone(1, 24))
	assert.True(t, isFreshMilestone(7, 168))
	assert.False(t, isFreshMilestone(1, 25))
	assert.False(t, isFreshMilestone(2, 48))
	assert.False(t, isFreshMilestone(0, 0))
}
