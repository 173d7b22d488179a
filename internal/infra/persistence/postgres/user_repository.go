// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user along with the full reset history, oldest first.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("StreakResets", func(db *gorm.DB) *gorm.DB {
			return db.Order("reset_at ASC")
		}).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email along with the full reset history.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("StreakResets", func(db *gorm.DB) *gorm.DB {
			return db.Order("reset_at ASC")
		}).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The streak start defaults to the creation
// moment when the caller leaves it zero.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.CurrentStreakStart.IsZero() {
		userM.CurrentStreakStart = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CurrentStreakStart = userM.CurrentStreakStart
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateStreakStart overwrites the user's current streak start.
func (repo *userRepository) UpdateStreakStart(ctx context.Context, userID uuid.UUID, start time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("current_streak_start", start)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update streak start")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AppendStreakReset inserts one reset marker row for the user.
func (repo *userRepository) AppendStreakReset(ctx context.Context, userID uuid.UUID, resetAt time.Time) error {
	resetM := &model.StreakResetModel{
		UserID:  userID,
		ResetAt: resetAt,
	}

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append streak reset")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	history := make([]time.Time, 0, len(data.StreakResets))
	for _, reset := range data.StreakResets {
		history = append(history, reset.ResetAt)
	}

	return &entity.User{
		ID:                 data.ID,
		Email:              data.Email,
		Name:               data.Name,
		CurrentStreakStart: data.CurrentStreakStart,
		History:            history,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// The reset history is intentionally not mapped back; it is append-only
// and written through AppendStreakReset.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Email:              data.Email,
		Name:               data.Name,
		CurrentStreakStart: data.CurrentStreakStart,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
