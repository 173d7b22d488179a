package impl

import (
	"context"
	"log/slog"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/entity"
	"regain/internal/domain/service"
	"regain/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedService implements the FeedUsecase interface on top of the upstream
// community feed client.
type feedService struct {
	feed   service.FeedService
	logger *slog.Logger
}

// FeedServiceParams holds dependencies for feedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	Feed   service.FeedService
	Logger *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		feed:   params.Feed,
		logger: params.Logger,
	}
}

func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFeed returns the current top community posts.
func (srv *feedService) GetFeed(ctx context.Context) ([]*entity.FeedPost, error) {
	posts, err := srv.feed.FetchPosts(ctx)
	if err != nil {
		srv.log(ctx).Warn("Community feed fetch failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch community feed")
	}

	return posts, nil
}
