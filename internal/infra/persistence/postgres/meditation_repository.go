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

// meditationRepository implements the repository.MeditationRepository interface.
type meditationRepository struct {
	db *gorm.DB
}

// NewMeditationRepository is the constructor for meditationRepository.
func NewMeditationRepository(db *gorm.DB) repository.MeditationRepository {
	return &meditationRepository{
		db: db,
	}
}

// CreateSession persists a new meditation session.
func (repo *meditationRepository) CreateSession(ctx context.Context, session *entity.MeditationSession) error {
	sessionM := fromMeditationDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid meditation session data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meditation session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindRecentSessions retrieves up to limit sessions for a user, newest first.
func (repo *meditationRepository) FindRecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MeditationSession, error) {
	var sessionModels []*model.MeditationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent meditation sessions")
	}

	sessions := make([]*entity.MeditationSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toMeditationDomain(sessionM))
	}

	return sessions, nil
}

// --- Mapper Functions ---

func toMeditationDomain(data *model.MeditationModel) *entity.MeditationSession {
	if data == nil {
		return nil
	}

	return &entity.MeditationSession{
		ID:        data.ID,
		UserID:    data.UserID,
		Duration:  data.Duration,
		CreatedAt: data.CreatedAt,
	}
}

func fromMeditationDomain(data *entity.MeditationSession) *model.MeditationModel {
	if data == nil {
		return nil
	}

	return &model.MeditationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Duration:  data.Duration,
		CreatedAt: data.CreatedAt,
	}
}
