package impl

import (
	"context"
	"testing"
	"time"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	mockRepo "regain/internal/mocks/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// journalServiceFixtures holds all test dependencies for journal service tests.
type journalServiceFixtures struct {
	service     usecase.JournalUsecase
	journalRepo *mockRepo.MockJournalRepository
}

func createTestJournalService(t *testing.T) journalServiceFixtures {
	journalRepo := mockRepo.NewMockJournalRepository(t)

	svc := NewJournalService(JournalServiceParams{
		JournalRepo: journalRepo,
		Logger:      newDiscardLogger(),
	})

	return journalServiceFixtures{
		service:     svc,
		journalRepo: journalRepo,
	}
}

func TestJournalService_AddEntry_Success(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.journalRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.JournalEntry")).
		Run(func(ctx context.Context, entry *entity.JournalEntry) {
			entry.ID = uuid.New()
			entry.CreatedAt = time.Now().UTC()
		}).
		Return(nil)

	entry, err := fx.service.AddEntry(ctx, userID, &usecase.AddJournalInput{Content: "  a long day  "})

	require.NoError(t, err)
	assert.Equal(t, "a long day", entry.Content)
	assert.Equal(t, userID, entry.UserID)
}

func TestJournalService_AddEntry_EmptyContent(t *testing.T) {
	fx := createTestJournalService(t)

	entry, err := fx.service.AddEntry(context.Background(), uuid.New(), &usecase.AddJournalInput{Content: " \n "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, entry)
}

func TestJournalService_ListEntries(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.JournalEntry{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.journalRepo.EXPECT().
		FindEntriesByUser(ctx, userID).
		Return(expected, nil)

	entries, err := fx.service.ListEntries(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
