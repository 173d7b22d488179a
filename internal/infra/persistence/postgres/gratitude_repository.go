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

// gratitudeRepository implements the repository.GratitudeRepository interface.
type gratitudeRepository struct {
	db *gorm.DB
}

// NewGratitudeRepository is the constructor for gratitudeRepository.
func NewGratitudeRepository(db *gorm.DB) repository.GratitudeRepository {
	return &gratitudeRepository{
		db: db,
	}
}

// CreateEntry persists a new gratitude entry.
func (repo *gratitudeRepository) CreateEntry(ctx context.Context, entry *entity.GratitudeEntry) error {
	entryM := fromGratitudeDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required gratitude information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gratitude entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByID retrieves a single entry by id.
func (repo *gratitudeRepository) FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.GratitudeEntry, error) {
	var entryM model.GratitudeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGratitudeNotFound
		}

		return nil, errors.Wrap(err, "failed to find gratitude entry by ID")
	}

	return toGratitudeDomain(&entryM), nil
}

// FindEntriesInWindow retrieves a user's entries created within [start, end),
// ascending by creation time.
func (repo *gratitudeRepository) FindEntriesInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.GratitudeEntry, error) {
	var entryModels []*model.GratitudeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gratitude entries in window")
	}

	return toGratitudeDomainSlice(entryModels), nil
}

// FindRecentEntries retrieves up to limit entries for a user, newest first.
func (repo *gratitudeRepository) FindRecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GratitudeEntry, error) {
	var entryModels []*model.GratitudeModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent gratitude entries")
	}

	return toGratitudeDomainSlice(entryModels), nil
}

// UpdateChecked sets the checked state of an entry.
func (repo *gratitudeRepository) UpdateChecked(ctx context.Context, id uuid.UUID, isChecked bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GratitudeModel{}).
		Where("id = ?", id).
		Update("is_checked", isChecked)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update gratitude checked state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGratitudeNotFound
	}

	return nil
}

// DeleteEntry removes an entry by id.
func (repo *gratitudeRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GratitudeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete gratitude entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGratitudeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGratitudeDomain(data *model.GratitudeModel) *entity.GratitudeEntry {
	if data == nil {
		return nil
	}

	return &entity.GratitudeEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		IsChecked: data.IsChecked,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toGratitudeDomainSlice(models []*model.GratitudeModel) []*entity.GratitudeEntry {
	entries := make([]*entity.GratitudeEntry, 0, len(models))
	for _, entryM := range models {
		entries = append(entries, toGratitudeDomain(entryM))
	}

	return entries
}

func fromGratitudeDomain(data *entity.GratitudeEntry) *model.GratitudeModel {
	if data == nil {
		return nil
	}

	return &model.GratitudeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		IsChecked: data.IsChecked,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
