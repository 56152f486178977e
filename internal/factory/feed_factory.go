package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/adapters/feed"
	"github.com/arjun/fake-news-filter/internal/config"
	"github.com/arjun/fake-news-filter/internal/ports"
)

// FeedFactory creates news feed clients based on configuration
type FeedFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFeedFactory creates a new feed factory
func NewFeedFactory(cfg *config.Config, logger *zap.Logger) *FeedFactory {
	return &FeedFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateFeedSource creates a feed client based on the configuration
func (f *FeedFactory) CreateFeedSource() (ports.FeedSource, error) {
	feedCfg, err := f.cfg.GetFeed()
	if err != nil {
		return nil, fmt.Errorf("invalid feed configuration: %w", err)
	}

	switch feedCfg.Provider {
	case "mediastack":
		return feed.NewMediastackClient(
			feedCfg.BaseURL,
			feedCfg.APIKey,
			feedCfg.Languages,
			feedCfg.Sort,
			feedCfg.Limit,
			feedCfg.Timeout,
			f.logger,
		), nil
	default:
		return nil, fmt.Errorf("unsupported feed provider: %s", feedCfg.Provider)
	}
}
