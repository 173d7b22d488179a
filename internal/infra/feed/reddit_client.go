// Package feed implements the upstream community feed client.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"regain/config"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultFeedURL       = "https://www.reddit.com/r/NoFap/hot.json?limit=10"
	defaultFeedUserAgent = "regain-server/1.0"
	defaultFeedLimit     = 5
	defaultFeedTimeout   = 10 * time.Second
)

// redditListing mirrors the subset of the Reddit listing payload we consume.
type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID        string  `json:"id"`
				Title     string  `json:"title"`
				Permalink string  `json:"permalink"`
				Author    string  `json:"author"`
				Score     int     `json:"score"`
				CreatedAt float64 `json:"created_utc"`
				Stickied  bool    `json:"stickied"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// redditFeedService implements service.FeedService against the Reddit JSON API.
type redditFeedService struct {
	url        string
	userAgent  string
	limit      int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRedditFeedService is the constructor for redditFeedService.
func NewRedditFeedService(cfg *config.Config, logger *slog.Logger) service.FeedService {
	url := defaultFeedURL
	userAgent := defaultFeedUserAgent
	limit := defaultFeedLimit
	timeout := defaultFeedTimeout

	if feedCfg := cfg.Feed; feedCfg != nil {
		if feedCfg.URL != "" {
			url = feedCfg.URL
		}
		if feedCfg.UserAgent != "" {
			userAgent = feedCfg.UserAgent
		}
		if feedCfg.Limit > 0 {
			limit = feedCfg.Limit
		}
		if feedCfg.Timeout > 0 {
			timeout = feedCfg.Timeout
		}
	}

	return &redditFeedService{
		url:       url,
		userAgent: userAgent,
		limit:     limit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchPosts retrieves the hot listing, drops stickied posts and returns the
// top entries. Any upstream failure maps to ErrFeedUnavailable so the caller
// can degrade instead of crashing.
func (s *redditFeedService) FetchPosts(ctx context.Context) ([]*entity.FeedPost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// Reddit rejects requests without a descriptive User-Agent.
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("community feed request failed", slog.Any("error", err))

		return nil, domainerrors.ErrFeedUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("community feed returned non-OK status",
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrFeedUnavailable
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		s.logger.Warn("community feed payload decode failed", slog.Any("error", err))

		return nil, domainerrors.ErrFeedUnavailable
	}

	posts := make([]*entity.FeedPost, 0, s.limit)
	for _, child := range listing.Data.Children {
		if child.Data.Stickied {
			continue
		}

		posts = append(posts, &entity.FeedPost{
			ID:      child.Data.ID,
			Title:   child.Data.Title,
			URL:     "https://reddit.com" + child.Data.Permalink,
			Author:  child.Data.Author,
			Score:   child.Data.Score,
			Created: child.Data.CreatedAt,
		})

		if len(posts) >= s.limit {
			break
		}
	}

	return posts, nil
}
