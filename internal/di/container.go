package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/config"
	"github.com/arjun/fake-news-filter/internal/core"
	"github.com/arjun/fake-news-filter/internal/factory"
	"github.com/arjun/fake-news-filter/internal/logging"
	"github.com/arjun/fake-news-filter/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewModelFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewNormalizerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFeedFactory); err != nil {
		return nil, err
	}

	// Register model bundle. A failed artifact load yields a degraded
	// bundle rather than an error, so the service still comes up.
	if err := container.Provide(func(f *factory.ModelFactory) *core.ModelBundle {
		return f.CreateModelBundle()
	}); err != nil {
		return nil, err
	}

	// Register text normalizer
	if err := container.Provide(func(f *factory.NormalizerFactory) core.Normalizer {
		return f.CreateTextNormalizer()
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register feed source
	if err := container.Provide(func(f *factory.FeedFactory) (ports.FeedSource, error) {
		return f.CreateFeedSource()
	}); err != nil {
		return nil, err
	}

	// Register classification service
	if err := container.Provide(func(
		models *core.ModelBundle,
		normalizer core.Normalizer,
		cacheRepo core.CacheRepository,
		logger *zap.Logger,
		cfg *config.Config,
		cacheFactory *factory.CacheFactory,
	) (*core.ClassificationService, error) {
		cacheTTL, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}

		trustedSources := cfg.GetStringSlice("trusted.sources")
		if len(trustedSources) > 0 {
			logger.Info("Loaded trusted sources", zap.Strings("sources", trustedSources))
		}

		classifyCfg := cfg.GetClassify()
		return core.NewClassificationService(
			models,
			normalizer,
			cacheRepo,
			logger,
			cacheFactory.IsCacheEnabled(),
			cacheTTL,
			classifyCfg.ShortWordThreshold,
			classifyCfg.FeedShortWordThreshold,
			cfg.GetBatch().MaxRecords,
			trustedSources,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register server factory and HTTP server
	if err := container.Provide(factory.NewServerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ServerFactory) (ports.HTTPServer, error) {
		return f.CreateHTTPServer()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
