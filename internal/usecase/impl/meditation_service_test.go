package impl

import (
	"context"
	"testing"

	"regain/internal/domain/constants"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	mockRepo "regain/internal/mocks/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// meditationServiceFixtures holds all test dependencies for meditation service tests.
type meditationServiceFixtures struct {
	service        usecase.MeditationUsecase
	meditationRepo *mockRepo.MockMeditationRepository
}

func createTestMeditationService(t *testing.T) meditationServiceFixtures {
	meditationRepo := mockRepo.NewMockMeditationRepository(t)

	svc := NewMeditationService(MeditationServiceParams{
		MeditationRepo: meditationRepo,
		Logger:         newDiscardLogger(),
	})

	return meditationServiceFixtures{
		service:        svc,
		meditationRepo: meditationRepo,
	}
}

func TestMeditationService_LogSession_Success(t *testing.T) {
	fx := createTestMeditationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.meditationRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.MeditationSession")).
		Run(func(ctx context.Context, session *entity.MeditationSession) {
			session.ID = uuid.New()
		}).
		Return(nil)

	session, err := fx.service.LogSession(ctx, userID, &usecase.LogMeditationInput{Duration: 600})

	require.NoError(t, err)
	assert.Equal(t, 600, session.Duration)
	assert.Equal(t, userID, session.UserID)
}

func TestMeditationService_LogSession_RejectsNonPositiveDuration(t *testing.T) {
	fx := createTestMeditationService(t)

	for _, duration := range []int{0, -60} {
		session, err := fx.service.LogSession(context.Background(), uuid.New(), &usecase.LogMeditationInput{Duration: duration})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Nil(t, session)
	}
}

func TestMeditationService_ListRecent(t *testing.T) {
	fx := createTestMeditationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.MeditationSession{{ID: uuid.New(), Duration: 300}}

	fx.meditationRepo.EXPECT().
		FindRecentSessions(ctx, userID, constants.MeditationRecentLimit).
		Return(expected, nil)

	sessions, err := fx.service.ListRecent(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, sessions)
}
