package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"regain/config"
	domainerrors "regain/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeedConfig(url string) *config.Config {
	return &config.Config{
		Feed: &config.FeedConfig{
			Enabled:   true,
			URL:       url,
			UserAgent: "regain-test/1.0",
			Limit:     5,
			Timeout:   2 * time.Second,
		},
	}
}

func listingJSON(children string) string {
	return fmt.Sprintf(`{"data":{"children":[%s]}}`, children)
}

func childJSON(id string, score int, stickied bool) string {
	return fmt.Sprintf(
		`{"data":{"id":%q,"title":"post %s","permalink":"/r/test/%s","author":"tester","score":%d,"created_utc":1700000000,"stickied":%t}}`,
		id, id, id, score, stickied,
	)
}

func TestRedditFeedService_FetchPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "regain-test/1.0", r.Header.Get("User-Agent"))

		children := childJSON("sticky1", 999, true)
		for i := 0; i < 8; i++ {
			children += "," + childJSON(fmt.Sprintf("p%d", i), 100-i, false)
		}
		fmt.Fprint(w, listingJSON(children))
	}))
	defer server.Close()

	svc := NewRedditFeedService(testFeedConfig(server.URL), slog.Default())

	posts, err := svc.FetchPosts(context.Background())
	require.NoError(t, err)

	// Stickied dropped, capped at the configured limit
	require.Len(t, posts, 5)
	assert.Equal(t, "p0", posts[0].ID)
	assert.Equal(t, "post p0", posts[0].Title)
	assert.Equal(t, "https://reddit.com/r/test/p0", posts[0].URL)
	assert.Equal(t, "tester", posts[0].Author)
	assert.Equal(t, 100, posts[0].Score)
	assert.Equal(t, float64(1700000000), posts[0].Created)

	for _, post := range posts {
		assert.NotEqual(t, "sticky1", post.ID)
	}
}

func TestRedditFeedService_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewRedditFeedService(testFeedConfig(server.URL), slog.Default())

	posts, err := svc.FetchPosts(context.Background())
	assert.Nil(t, posts)
	assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
}

func TestRedditFeedService_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer server.Close()

	svc := NewRedditFeedService(testFeedConfig(server.URL), slog.Default())

	_, err := svc.FetchPosts(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
}

func TestRedditFeedService_UnreachableUpstream(t *testing.T) {
	svc := NewRedditFeedService(testFeedConfig("http://127.0.0.1:1"), slog.Default())

	_, err := svc.FetchPosts(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
}
