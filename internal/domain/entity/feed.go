package entity

// FeedPost is one item from the upstream community feed, trimmed to the
// fields the dashboard renders.
type FeedPost struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Author  string  `json:"author"`
	Score   int     `json:"score"`
	Created float64 `json:"created"` // Unix seconds as reported by the upstream API.
}
