package impl

import (
	"context"
	"testing"

	"regain/internal/domain/entity"
	mockSvc "regain/internal/mocks/service"
	"regain/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedServiceFixtures holds all test dependencies for feed service tests.
type feedServiceFixtures struct {
	service usecase.FeedUsecase
	feed    *mockSvc.MockFeedService
}

func createTestFeedService(t *testing.T) feedServiceFixtures {
	feed := mockSvc.NewMockFeedService(t)

	svc := NewFeedService(FeedServiceParams{
		Feed:   feed,
		Logger: newDiscardLogger(),
	})

	return feedServiceFixtures{
		service: svc,
		feed:    feed,
	}
}

func TestFeedService_GetFeed_Success(t *testing.T) {
	fx := createTestFeedService(t)

	ctx := context.Background()
	expected := []*entity.FeedPost{{Title: "Day 30", Author: "someone"}}

	fx.feed.EXPECT().FetchPosts(ctx).Return(expected, nil)

	posts, err := fx.service.GetFeed(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}

func TestFeedService_GetFeed_UpstreamFailure(t *testing.T) {
	fx := createTestFeedService(t)

	ctx := context.Background()

	fx.feed.EXPECT().FetchPosts(ctx).Return(nil, assert.AnError)

	posts, err := fx.service.GetFeed(ctx)

	require.Error(t, err)
	assert.Nil(t, posts)
}
