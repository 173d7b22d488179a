package usecase

import (
	"context"

	"regain/internal/domain/entity"
)

// FeedUsecase exposes the community feed to the delivery layer.
type FeedUsecase interface {
	// GetFeed returns the current top community posts.
	GetFeed(ctx context.Context) ([]*entity.FeedPost, error)
}
