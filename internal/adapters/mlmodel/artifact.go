package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arjun/fake-news-filter/internal/core"
	"go.uber.org/zap"
)

const (
	vectorizerFormat = "tfidf-v1"
	classifierFormat = "linear-v1"
)

// vectorizerArtifact is the on-disk shape of an exported TF-IDF vectorizer
type vectorizerArtifact struct {
	Format     string         `json:"format"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// classifierArtifact is the on-disk shape of an exported linear model
type classifierArtifact struct {
	Format    string    `json:"format"`
	Classes   []string  `json:"classes"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// LoadVectorizer reads and validates a vectorizer artifact. The vocabulary
// and weighting are fixed at training time; nothing here mutates after load.
func LoadVectorizer(path string, logger *zap.Logger) (*TFIDFVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectorizer artifact: %w", err)
	}

	var artifact vectorizerArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode vectorizer artifact: %w", err)
	}

	if artifact.Format != vectorizerFormat {
		return nil, fmt.Errorf("unsupported vectorizer artifact format %q", artifact.Format)
	}
	if len(artifact.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer artifact has an empty vocabulary")
	}
	if len(artifact.IDF) != len(artifact.Vocabulary) {
		return nil, fmt.Errorf("vectorizer artifact idf length %d does not match vocabulary size %d",
			len(artifact.IDF), len(artifact.Vocabulary))
	}
	for term, idx := range artifact.Vocabulary {
		if idx < 0 || idx >= len(artifact.IDF) {
			return nil, fmt.Errorf("vectorizer artifact term %q has out-of-range index %d", term, idx)
		}
	}

	logger.Info("Loaded vectorizer artifact",
		zap.String("path", path),
		zap.Int("vocabulary_size", len(artifact.Vocabulary)))

	return &TFIDFVectorizer{
		vocabulary: artifact.Vocabulary,
		idf:        artifact.IDF,
	}, nil
}

// LoadClassifier reads and validates a linear model artifact
func LoadClassifier(path string, logger *zap.Logger) (*LinearClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact: %w", err)
	}

	var artifact classifierArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode classifier artifact: %w", err)
	}

	if artifact.Format != classifierFormat {
		return nil, fmt.Errorf("unsupported classifier artifact format %q", artifact.Format)
	}
	if len(artifact.Classes) != 2 {
		return nil, fmt.Errorf("classifier artifact must have exactly 2 classes, got %d", len(artifact.Classes))
	}
	if len(artifact.Weights) == 0 {
		return nil, fmt.Errorf("classifier artifact has no weights")
	}

	logger.Info("Loaded classifier artifact",
		zap.String("path", path),
		zap.Strings("classes", artifact.Classes),
		zap.Int("dimensions", len(artifact.Weights)))

	return &LinearClassifier{
		classes:   [2]core.Label{core.Label(artifact.Classes[0]), core.Label(artifact.Classes[1])},
		weights:   artifact.Weights,
		intercept: artifact.Intercept,
	}, nil
}
