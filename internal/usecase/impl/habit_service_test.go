package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	mockRepo "regain/internal/mocks/repository"
	"regain/internal/usecase"
	"regain/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// habitServiceFixtures holds all test dependencies for habit service tests.
type habitServiceFixtures struct {
	service   usecase.HabitUsecase
	txManager *mockRepo.MockTransactionManager
	habitRepo *mockRepo.MockHabitRepository
}

func createTestHabitService(t *testing.T) habitServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	habitRepo := mockRepo.NewMockHabitRepository(t)

	svc := NewHabitService(HabitServiceParams{
		TxManager: txManager,
		HabitRepo: habitRepo,
		Logger:    newDiscardLogger(),
	})

	return habitServiceFixtures{
		service:   svc,
		txManager: txManager,
		habitRepo: habitRepo,
	}
}

func TestHabitService_CreateHabit_Success(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.habitRepo.EXPECT().
		CreateHabit(ctx, mock.AnythingOfType("*entity.Habit")).
		Run(func(ctx context.Context, habit *entity.Habit) {
			habit.ID = uuid.New()
		}).
		Return(nil)

	view, err := fx.service.CreateHabit(ctx, userID, &usecase.CreateHabitInput{Name: "  Read  "})

	require.NoError(t, err)
	assert.Equal(t, "Read", view.Name)
	assert.Equal(t, entity.FrequencyDaily, view.Frequency)
	assert.NotNil(t, view.CompletedDates)
	require.NotNil(t, view.MonthlyProgress)
	assert.Equal(t, 0, view.MonthlyProgress.CompletedThisMonth)
}

func TestHabitService_CreateHabit_EmptyName(t *testing.T) {
	fx := createTestHabitService(t)

	view, err := fx.service.CreateHabit(context.Background(), uuid.New(), &usecase.CreateHabitInput{Name: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, view)
}

func TestHabitService_CreateHabit_InvalidFrequency(t *testing.T) {
	fx := createTestHabitService(t)

	view, err := fx.service.CreateHabit(context.Background(), uuid.New(), &usecase.CreateHabitInput{
		Name:      "Read",
		Frequency: "hourly",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, view)
}

func TestHabitService_ToggleDay_AddsCompletion(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	day := util.DayOf(time.Now().UTC())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txHabitRepo := mockRepo.NewMockHabitRepository(t)

			mockFactory.EXPECT().HabitRepo().Return(txHabitRepo)

			txHabitRepo.EXPECT().
				FindHabitByID(ctx, habitID).
				Return(&entity.Habit{ID: habitID, UserID: userID}, nil)

			txHabitRepo.EXPECT().
				AddCompletion(ctx, habitID, day).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:             habitID,
			UserID:         userID,
			Frequency:      entity.FrequencyDaily,
			CompletedDates: []time.Time{day},
		}, nil)

	view, err := fx.service.ToggleDay(ctx, userID, &usecase.ToggleHabitInput{HabitID: habitID})

	require.NoError(t, err)
	assert.Len(t, view.CompletedDates, 1)
	assert.True(t, view.MonthlyProgress.CompletedToday)
}

func TestHabitService_ToggleDay_RemovesExistingCompletion(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	day := util.DayOf(time.Now().UTC())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txHabitRepo := mockRepo.NewMockHabitRepository(t)

			mockFactory.EXPECT().HabitRepo().Return(txHabitRepo)

			txHabitRepo.EXPECT().
				FindHabitByID(ctx, habitID).
				Return(&entity.Habit{
					ID:             habitID,
					UserID:         userID,
					CompletedDates: []time.Time{day},
				}, nil)

			txHabitRepo.EXPECT().
				RemoveCompletion(ctx, habitID, day).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CompletedDates: []time.Time{}}, nil)

	view, err := fx.service.ToggleDay(ctx, userID, &usecase.ToggleHabitInput{HabitID: habitID, Date: day})

	require.NoError(t, err)
	assert.Empty(t, view.CompletedDates)
	assert.False(t, view.MonthlyProgress.CompletedToday)
}

func TestHabitService_ToggleDay_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txHabitRepo := mockRepo.NewMockHabitRepository(t)

			mockFactory.EXPECT().HabitRepo().Return(txHabitRepo)

			txHabitRepo.EXPECT().
				FindHabitByID(ctx, habitID).
				Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	view, err := fx.service.ToggleDay(ctx, userID, &usecase.ToggleHabitInput{HabitID: habitID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, view)
}

func TestHabitService_ToggleDay_UnknownHabitMapsToNotFound(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txHabitRepo := mockRepo.NewMockHabitRepository(t)

			mockFactory.EXPECT().HabitRepo().Return(txHabitRepo)

			txHabitRepo.EXPECT().
				FindHabitByID(ctx, habitID).
				Return(nil, repository.ErrHabitNotFound)

			return fn(mockFactory)
		})

	view, err := fx.service.ToggleDay(ctx, userID, &usecase.ToggleHabitInput{HabitID: habitID})

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrHabitNotFound)

	// The error middleware renders AppError values, so an unknown ID must
	// surface as a 404 rather than a generic 500.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestHabitService_ListHabits_Failure(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitsByUser(ctx, userID).
		Return(nil, errors.New("db down"))

	views, err := fx.service.ListHabits(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, views)
}

func TestMonthlyProgress(t *testing.T) {
	// The 10th of the month: ten elapsed days, two elapsed weeks (ceil).
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	day := func(d int) time.Time {
		return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("daily habit", func(t *testing.T) {
		habit := &entity.Habit{
			Frequency:      entity.FrequencyDaily,
			CompletedDates: []time.Time{day(1), day(5), day(10)},
		}

		progress := monthlyProgress(habit, now)

		assert.Equal(t, 3, progress.CompletedThisMonth)
		assert.Equal(t, 10, progress.Target)
		assert.Equal(t, 30, progress.Percentage)
		assert.True(t, progress.CompletedToday)
	})

	t.Run("weekly habit rounds target up", func(t *testing.T) {
		habit := &entity.Habit{
			Frequency:      entity.FrequencyWeekly,
			CompletedDates: []time.Time{day(3)},
		}

		progress := monthlyProgress(habit, now)

		assert.Equal(t, 1, progress.CompletedThisMonth)
		assert.Equal(t, 2, progress.Target)
		assert.Equal(t, 50, progress.Percentage)
		assert.False(t, progress.CompletedToday)
	})

	t.Run("percentage clamps at 100", func(t *testing.T) {
		habit := &entity.Habit{
			Frequency:      entity.FrequencyWeekly,
			CompletedDates: []time.Time{day(1), day(2), day(3), day(4), day(5)},
		}

		progress := monthlyProgress(habit, now)

		assert.Equal(t, 100, progress.Percentage)
	})

	t.Run("other months are ignored", func(t *testing.T) {
		habit := &entity.Habit{
			Frequency: entity.FrequencyDaily,
			CompletedDates: []time.Time{
				time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
				day(2),
			},
		}

		progress := monthlyProgress(habit, now)

		assert.Equal(t, 1, progress.CompletedThisMonth)
		assert.False(t, progress.CompletedToday)
	})
}
