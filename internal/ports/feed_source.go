package ports

import (
	"context"

	"github.com/arjun/fake-news-filter/internal/core"
)

// FeedSource defines the interface for fetching live news articles
type FeedSource interface {
	// FetchLatest retrieves the latest articles from the feed
	FetchLatest(ctx context.Context) ([]core.ArticleRecord, error)
}
