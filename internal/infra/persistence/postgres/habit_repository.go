package postgres

import (
	"context"
	"time"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/infra/persistence/model"
	"regain/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// habitRepository implements the repository.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository is the constructor for habitRepository.
func NewHabitRepository(db *gorm.DB) repository.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// CreateHabit persists a new habit with an empty completion set.
func (repo *habitRepository) CreateHabit(ctx context.Context, habit *entity.Habit) error {
	habitM := fromHabitDomain(habit)

	if err := repo.db.WithContext(ctx).Create(habitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required habit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create habit")
	}

	habit.ID = habitM.ID
	habit.CreatedAt = habitM.CreatedAt
	habit.UpdatedAt = habitM.UpdatedAt

	return nil
}

// FindHabitByID retrieves a habit with its completed dates, oldest first.
func (repo *habitRepository) FindHabitByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitM model.HabitModel

	if err := repo.db.WithContext(ctx).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_on ASC")
		}).
		Where("id = ?", id).
		First(&habitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHabitNotFound
		}

		return nil, errors.Wrap(err, "failed to find habit by ID")
	}

	return toHabitDomain(&habitM), nil
}

// FindHabitsByUser retrieves all habits for a user, newest created first.
func (repo *habitRepository) FindHabitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []*model.HabitModel

	if err := repo.db.WithContext(ctx).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_on ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find habits by user")
	}

	habits := make([]*entity.Habit, 0, len(habitModels))
	for _, habitM := range habitModels {
		habits = append(habits, toHabitDomain(habitM))
	}

	return habits, nil
}

// AddCompletion inserts the completion row for one day bucket. A concurrent
// duplicate insert trips the unique index and is reported as a conflict.
func (repo *habitRepository) AddCompletion(ctx context.Context, habitID uuid.UUID, day time.Time) error {
	completionM := &model.HabitCompletionModel{
		HabitID:     habitID,
		CompletedOn: util.DayOf(day),
	}

	if err := repo.db.WithContext(ctx).Create(completionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("habit already completed for this day")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHabitNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add habit completion")
	}

	return nil
}

// RemoveCompletion deletes the completion row for one day bucket.
func (repo *habitRepository) RemoveCompletion(ctx context.Context, habitID uuid.UUID, day time.Time) error {
	result := repo.db.WithContext(ctx).
		Where("habit_id = ? AND completed_on = ?", habitID, util.DayOf(day)).
		Delete(&model.HabitCompletionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove habit completion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toHabitDomain converts a GORM HabitModel to a domain Habit entity.
func toHabitDomain(data *model.HabitModel) *entity.Habit {
	if data == nil {
		return nil
	}

	completed := make([]time.Time, 0, len(data.Completions))
	for _, completion := range data.Completions {
		completed = append(completed, util.DayOf(completion.CompletedOn))
	}

	return &entity.Habit{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Frequency:      entity.Frequency(data.Frequency),
		CompletedDates: completed,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromHabitDomain converts a domain Habit entity to a GORM HabitModel.
// Completions are written through AddCompletion, never via the parent row.
func fromHabitDomain(data *entity.Habit) *model.HabitModel {
	if data == nil {
		return nil
	}

	return &model.HabitModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Frequency: string(data.Frequency),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
