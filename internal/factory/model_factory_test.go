package factory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/config"
	"github.com/arjun/fake-news-filter/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func modelConfig(vectorizerPath, classifierPath string) *config.Config {
	v := config.NewEmptyViper()
	v.Set("model.vectorizer_path", vectorizerPath)
	v.Set("model.classifier_path", classifierPath)
	return config.NewFromViper(v)
}

func TestModelFactory_CreateModelBundle(t *testing.T) {
	dir := t.TempDir()
	vecPath := writeFile(t, dir, "vectorizer.json",
		`{"format": "tfidf-v1", "vocabulary": {"leopard": 0, "pune": 1}, "idf": [1.0, 2.0]}`)
	clfPath := writeFile(t, dir, "model.json",
		`{"format": "linear-v1", "classes": ["FAKE", "REAL"], "weights": [0.4, -0.2], "intercept": 0.1}`)

	f := NewModelFactory(modelConfig(vecPath, clfPath), zap.NewNop())
	bundle := f.CreateModelBundle()
	if err := bundle.Err(); err != nil {
		t.Fatalf("expected a usable bundle, got %v", err)
	}

	vec := bundle.Vectorizer().Vectorize("leopard")
	label, _ := bundle.Classifier().Classify(vec)
	if label != core.LabelReal {
		t.Errorf("label = %s, want REAL", label)
	}
}

func TestModelFactory_MissingArtifactsDegrade(t *testing.T) {
	dir := t.TempDir()
	f := NewModelFactory(modelConfig(
		filepath.Join(dir, "missing-vectorizer.json"),
		filepath.Join(dir, "missing-model.json"),
	), zap.NewNop())

	bundle := f.CreateModelBundle()
	if bundle == nil {
		t.Fatal("expected a degraded bundle, got nil")
	}
	if err := bundle.Err(); !errors.Is(err, core.ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestModelFactory_DimensionMismatchDegrades(t *testing.T) {
	dir := t.TempDir()
	vecPath := writeFile(t, dir, "vectorizer.json",
		`{"format": "tfidf-v1", "vocabulary": {"leopard": 0, "pune": 1}, "idf": [1.0, 2.0]}`)
	clfPath := writeFile(t, dir, "model.json",
		`{"format": "linear-v1", "classes": ["FAKE", "REAL"], "weights": [0.4], "intercept": 0.1}`)

	f := NewModelFactory(modelConfig(vecPath, clfPath), zap.NewNop())
	bundle := f.CreateModelBundle()
	if err := bundle.Err(); !errors.Is(err, core.ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable, got %v", err)
	}
}
