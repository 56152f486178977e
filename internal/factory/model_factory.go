package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/adapters/mlmodel"
	"github.com/arjun/fake-news-filter/internal/config"
	"github.com/arjun/fake-news-filter/internal/core"
)

// ModelFactory loads the ML artifacts and builds the model bundle
type ModelFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewModelFactory creates a new model factory
func NewModelFactory(cfg *config.Config, logger *zap.Logger) *ModelFactory {
	return &ModelFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateModelBundle loads the vectorizer and classifier artifacts. A failed
// load does not abort startup: it yields a degraded bundle so the service
// comes up and fails classification calls fast instead of crashing.
func (f *ModelFactory) CreateModelBundle() *core.ModelBundle {
	modelCfg := f.cfg.GetModel()

	vectorizer, err := mlmodel.LoadVectorizer(modelCfg.VectorizerPath, f.logger)
	if err != nil {
		f.logger.Error("Failed to load vectorizer artifact",
			zap.String("path", modelCfg.VectorizerPath),
			zap.Error(err))
		return core.NewUnavailableModelBundle(err)
	}

	classifier, err := mlmodel.LoadClassifier(modelCfg.ClassifierPath, f.logger)
	if err != nil {
		f.logger.Error("Failed to load classifier artifact",
			zap.String("path", modelCfg.ClassifierPath),
			zap.Error(err))
		return core.NewUnavailableModelBundle(err)
	}

	if vectorizer.Dimensions() != classifier.Dimensions() {
		err := fmt.Errorf("vectorizer dimension %d does not match classifier dimension %d",
			vectorizer.Dimensions(), classifier.Dimensions())
		f.logger.Error("Artifact dimension mismatch", zap.Error(err))
		return core.NewUnavailableModelBundle(err)
	}

	return core.NewModelBundle(vectorizer, classifier)
}
