package service

import (
	"context"

	"regain/internal/domain/entity"
)

// FeedService abstracts the upstream community feed. Implementations must
// degrade gracefully: the feed is enrichment, never a hard dependency.
type FeedService interface {
	// FetchPosts returns the current top community posts.
	FetchPosts(ctx context.Context) ([]*entity.FeedPost, error)
}
