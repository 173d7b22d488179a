package postgres

import (
	"context"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// journalRepository implements the repository.JournalRepository interface.
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository is the constructor for journalRepository.
func NewJournalRepository(db *gorm.DB) repository.JournalRepository {
	return &journalRepository{
		db: db,
	}
}

// CreateEntry persists a new journal entry.
func (repo *journalRepository) CreateEntry(ctx context.Context, entry *entity.JournalEntry) error {
	entryM := fromJournalDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required journal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create journal entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindEntriesByUser retrieves all journal entries for a user, newest first.
func (repo *journalRepository) FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error) {
	var entryModels []*model.JournalModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find journal entries by user")
	}

	entries := make([]*entity.JournalEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toJournalDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toJournalDomain(data *model.JournalModel) *entity.JournalEntry {
	if data == nil {
		return nil
	}

	return &entity.JournalEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

func fromJournalDomain(data *entity.JournalEntry) *model.JournalModel {
	if data == nil {
		return nil
	}

	return &model.JournalModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
