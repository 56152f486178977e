package core

import (
	"context"
)

// Normalizer cleans raw input down to classifiable text. It must be total:
// any non-string input yields the empty string, never an error.
type Normalizer interface {
	// Normalize strips markup and non-letter characters, lowercases and
	// collapses whitespace. Idempotent.
	Normalize(input any) string

	// WordCount counts whitespace-separated tokens in cleaned text
	WordCount(cleaned string) int
}

// Vectorizer maps cleaned text into the fixed feature space learned at
// training time. Out-of-vocabulary tokens are silently ignored.
type Vectorizer interface {
	Vectorize(cleaned string) FeatureVector
}

// Classifier maps a feature vector to a label. The returned score, when the
// underlying model exposes a decision function, is the signed distance to
// the decision boundary; nil when the model has no such capability.
type Classifier interface {
	Classify(vec FeatureVector) (Label, *float64)
}

// CacheRepository defines the interface for caching classification results
type CacheRepository interface {
	// Get retrieves a cached entry by text hash
	Get(ctx context.Context, textHash string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, textHash string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
