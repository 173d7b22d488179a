package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/usecase"
	"regain/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// habitService implements the HabitUsecase interface.
type habitService struct {
	txManager repository.TransactionManager
	habitRepo repository.HabitRepository
	logger    *slog.Logger
}

// HabitServiceParams holds dependencies for habitService, injected by Fx.
type HabitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	HabitRepo repository.HabitRepository
	Logger    *slog.Logger
}

// NewHabitService is the constructor for habitService.
func NewHabitService(params HabitServiceParams) usecase.HabitUsecase {
	return &habitService{
		txManager: params.TxManager,
		habitRepo: params.HabitRepo,
		logger:    params.Logger,
	}
}

func (srv *habitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateHabit creates a habit for the user.
func (srv *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, input *usecase.CreateHabitInput) (*usecase.HabitView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("habit name must not be empty")
	}

	frequency := entity.Frequency(input.Frequency)
	if frequency == "" {
		frequency = entity.FrequencyDaily
	}
	if !frequency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("frequency must be daily or weekly")
	}

	habit := &entity.Habit{
		UserID:         userID,
		Name:           name,
		Frequency:      frequency,
		CompletedDates: []time.Time{},
	}

	if err := srv.habitRepo.CreateHabit(ctx, habit); err != nil {
		srv.log(ctx).Error("Failed to create habit", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create habit")
	}

	return newHabitView(habit, time.Now().UTC()), nil
}

// ListHabits returns the user's habits with monthly progress.
func (srv *habitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]*usecase.HabitView, error) {
	habits, err := srv.habitRepo.FindHabitsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	now := time.Now().UTC()
	views := make([]*usecase.HabitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, newHabitView(habit, now))
	}

	return views, nil
}

// ToggleDay flips the completion state of one day bucket. The insert path
// relies on the unique (habit, day) index, so two concurrent toggles of the
// same day cannot both land.
func (srv *habitService) ToggleDay(ctx context.Context, userID uuid.UUID, input *usecase.ToggleHabitInput) (*usecase.HabitView, error) {
	day := input.Date
	if day.IsZero() {
		day = time.Now().UTC()
	}
	day = util.DayOf(day)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		habitRepo := repoFactory.HabitRepo()

		habit, err := habitRepo.FindHabitByID(ctx, input.HabitID)
		if err != nil {
			if errors.Is(err, repository.ErrHabitNotFound) {
				return domainerrors.ErrHabitNotFound.WrapMessage("habit not found")
			}

			return errors.Wrap(err, "failed to load habit for toggle")
		}
		if habit.UserID != userID {
			return domainerrors.ErrForbidden.WrapMessage("habit belongs to another user")
		}

		for _, completed := range habit.CompletedDates {
			if util.SameDay(completed, day) {
				return errors.Wrap(habitRepo.RemoveCompletion(ctx, habit.ID, day), "failed to remove habit completion")
			}
		}

		return errors.Wrap(habitRepo.AddCompletion(ctx, habit.ID, day), "failed to add habit completion")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute habit toggle transaction",
			slog.Any("habitID", input.HabitID),
			slog.Any("error", err),
		)

		return nil, err
	}

	// Reload runs outside the transaction. A concurrent toggle committed in
	// between shows up in the returned view; callers treat the view as the
	// current state, not an echo of this mutation.
	habit, err := srv.habitRepo.FindHabitByID(ctx, input.HabitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload habit after toggle")
	}

	return newHabitView(habit, time.Now().UTC()), nil
}

// newHabitView pairs a habit with its derived monthly progress.
func newHabitView(habit *entity.Habit, now time.Time) *usecase.HabitView {
	return &usecase.HabitView{
		Habit:           habit,
		MonthlyProgress: monthlyProgress(habit, now),
	}
}

// monthlyProgress derives the habit's completion ratio for the month
// containing now. Pure calendar math, no mutation.
func monthlyProgress(habit *entity.Habit, now time.Time) *entity.HabitProgress {
	daysInMonthSoFar := now.UTC().Day()

	completedThisMonth := 0
	completedToday := false
	for _, completed := range habit.CompletedDates {
		if util.SameMonth(completed, now) {
			completedThisMonth++
		}
		if util.SameDay(completed, now) {
			completedToday = true
		}
	}

	target := daysInMonthSoFar
	if habit.Frequency == entity.FrequencyWeekly {
		target = int(math.Ceil(float64(daysInMonthSoFar) / 7))
	}

	percentage := 0
	if target > 0 {
		percentage = int(math.Round(float64(completedThisMonth) / float64(target) * 100))
		if percentage > 100 {
			percentage = 100
		}
		if percentage < 0 {
			percentage = 0
		}
	}

	return &entity.HabitProgress{
		CompletedThisMonth: completedThisMonth,
		Target:             target,
		Percentage:         percentage,
		CompletedToday:     completedToday,
	}
}
