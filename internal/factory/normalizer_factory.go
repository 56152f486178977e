package factory

import (
	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/utils"
)

// NormalizerFactory creates text normalizers
type NormalizerFactory struct {
	logger *zap.Logger
}

// NewNormalizerFactory creates a new NormalizerFactory
func NewNormalizerFactory(logger *zap.Logger) *NormalizerFactory {
	return &NormalizerFactory{
		logger: logger,
	}
}

// CreateTextNormalizer creates a new TextNormalizer
func (f *NormalizerFactory) CreateTextNormalizer() *utils.TextNormalizer {
	return utils.NewTextNormalizer(f.logger)
}
