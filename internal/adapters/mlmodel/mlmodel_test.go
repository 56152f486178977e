package mlmodel

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/core"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

const validVectorizer = `{
	"format": "tfidf-v1",
	"vocabulary": {"leopard": 0, "spotted": 1, "pune": 2},
	"idf": [1.0, 2.0, 2.0]
}`

const validClassifier = `{
	"format": "linear-v1",
	"classes": ["FAKE", "REAL"],
	"weights": [1.0, -1.0, 0.0],
	"intercept": -0.5
}`

func TestLoadVectorizer(t *testing.T) {
	path := writeArtifact(t, "vectorizer.json", validVectorizer)
	v, err := LoadVectorizer(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadVectorizer returned error: %v", err)
	}
	if v.Dimensions() != 3 {
		t.Errorf("dimensions = %d, want 3", v.Dimensions())
	}
}

func TestLoadVectorizer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"wrong format", `{"format": "pickle", "vocabulary": {"a": 0}, "idf": [1.0]}`},
		{"empty vocabulary", `{"format": "tfidf-v1", "vocabulary": {}, "idf": []}`},
		{"idf length mismatch", `{"format": "tfidf-v1", "vocabulary": {"a": 0, "b": 1}, "idf": [1.0]}`},
		{"index out of range", `{"format": "tfidf-v1", "vocabulary": {"a": 5}, "idf": [1.0]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, "vectorizer.json", tt.content)
			if _, err := LoadVectorizer(path, zap.NewNop()); err == nil {
				t.Error("expected load error, got nil")
			}
		})
	}

	if _, err := LoadVectorizer(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop()); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadClassifier_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{"},
		{"wrong format", `{"format": "tree-v1", "classes": ["FAKE", "REAL"], "weights": [1.0]}`},
		{"one class", `{"format": "linear-v1", "classes": ["REAL"], "weights": [1.0]}`},
		{"no weights", `{"format": "linear-v1", "classes": ["FAKE", "REAL"], "weights": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, "model.json", tt.content)
			if _, err := LoadClassifier(path, zap.NewNop()); err == nil {
				t.Error("expected load error, got nil")
			}
		})
	}
}

func TestTFIDFVectorizer_Vectorize(t *testing.T) {
	path := writeArtifact(t, "vectorizer.json", validVectorizer)
	v, err := LoadVectorizer(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadVectorizer returned error: %v", err)
	}

	// leopard appears twice (tf 2, idf 1), spotted once (tf 1, idf 2):
	// raw weights [2, 2], so both normalize to 1/sqrt(2).
	vec := v.Vectorize("leopard spotted leopard")
	if len(vec) != 2 {
		t.Fatalf("vector has %d entries, want 2", len(vec))
	}
	want := 1 / math.Sqrt2
	for idx, value := range vec {
		if math.Abs(value-want) > 1e-9 {
			t.Errorf("vec[%d] = %f, want %f", idx, value, want)
		}
	}
}

func TestTFIDFVectorizer_IgnoresUnknownAndShortTokens(t *testing.T) {
	path := writeArtifact(t, "vectorizer.json", validVectorizer)
	v, err := LoadVectorizer(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadVectorizer returned error: %v", err)
	}

	// "airport" is out of vocabulary; "a" is below the token length the
	// training tokenizer emits.
	vec := v.Vectorize("airport a leopard")
	if len(vec) != 1 {
		t.Fatalf("vector has %d entries, want 1", len(vec))
	}
	if _, ok := vec[0]; !ok {
		t.Error("expected only the leopard feature to be set")
	}

	if got := v.Vectorize("completely unknown words"); len(got) != 0 {
		t.Errorf("all-unknown text should vectorize to an empty vector, got %v", got)
	}
}

func TestLinearClassifier_Classify(t *testing.T) {
	path := writeArtifact(t, "model.json", validClassifier)
	c, err := LoadClassifier(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadClassifier returned error: %v", err)
	}

	tests := []struct {
		name      string
		vec       core.FeatureVector
		wantLabel core.Label
		wantScore float64
	}{
		{"positive side", core.FeatureVector{0: 1.0}, "REAL", 0.5},
		{"negative side", core.FeatureVector{1: 1.0}, "FAKE", -1.5},
		{"on the boundary", core.FeatureVector{0: 0.5}, "FAKE", 0.0},
		{"empty vector", core.FeatureVector{}, "FAKE", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, score := c.Classify(tt.vec)
			if label != tt.wantLabel {
				t.Errorf("label = %s, want %s", label, tt.wantLabel)
			}
			if score == nil {
				t.Fatal("score is nil, want a decision value")
			}
			if math.Abs(*score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %f, want %f", *score, tt.wantScore)
			}
		})
	}
}

func TestLinearClassifier_IgnoresOutOfRangeIndices(t *testing.T) {
	path := writeArtifact(t, "model.json", validClassifier)
	c, err := LoadClassifier(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadClassifier returned error: %v", err)
	}

	label, score := c.Classify(core.FeatureVector{99: 1000.0})
	if label != "FAKE" {
		t.Errorf("label = %s, want FAKE", label)
	}
	if *score != -0.5 {
		t.Errorf("score = %f, want -0.5", *score)
	}
}
