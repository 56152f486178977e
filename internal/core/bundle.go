package core

import (
	"fmt"
)

// ModelBundle holds the vectorizer and classifier artifacts loaded at
// startup. The bundle is immutable after construction and safe for
// concurrent reads. A bundle built from a failed load is "degraded": it
// carries the load error instead of models, and Err reports
// ErrModelUnavailable until the process is restarted with valid artifacts.
type ModelBundle struct {
	vectorizer Vectorizer
	classifier Classifier
	loadErr    error
}

// NewModelBundle creates a bundle from successfully loaded artifacts
func NewModelBundle(vectorizer Vectorizer, classifier Classifier) *ModelBundle {
	return &ModelBundle{
		vectorizer: vectorizer,
		classifier: classifier,
	}
}

// NewUnavailableModelBundle creates a degraded bundle carrying the load error
func NewUnavailableModelBundle(loadErr error) *ModelBundle {
	return &ModelBundle{loadErr: loadErr}
}

// Err reports why the bundle cannot classify, or nil when it can
func (b *ModelBundle) Err() error {
	if b == nil {
		return ErrModelUnavailable
	}
	if b.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrModelUnavailable, b.loadErr)
	}
	if b.vectorizer == nil || b.classifier == nil {
		return ErrModelUnavailable
	}
	return nil
}

// Vectorizer returns the loaded vectorizer; nil on a degraded bundle
func (b *ModelBundle) Vectorizer() Vectorizer {
	return b.vectorizer
}

// Classifier returns the loaded classifier; nil on a degraded bundle
func (b *ModelBundle) Classifier() Classifier {
	return b.classifier
}
