package factory

import (
	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/adapters/web"
	"github.com/arjun/fake-news-filter/internal/config"
	"github.com/arjun/fake-news-filter/internal/core"
	"github.com/arjun/fake-news-filter/internal/ports"
)

// ServerFactory creates the web-facing transport
type ServerFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.ClassificationService
	models  *core.ModelBundle
	feed    ports.FeedSource
}

// NewServerFactory creates a new server factory
func NewServerFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.ClassificationService,
	models *core.ModelBundle,
	feed ports.FeedSource,
) *ServerFactory {
	return &ServerFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
		models:  models,
		feed:    feed,
	}
}

// CreateHTTPServer creates the HTTP server from configuration
func (f *ServerFactory) CreateHTTPServer() (ports.HTTPServer, error) {
	serverCfg := f.cfg.GetServer()
	return web.NewServer(
		f.service,
		f.feed,
		f.models,
		f.logger,
		serverCfg.ListenAddress,
		serverCfg.Mode,
	), nil
}
