package mlmodel

import (
	"math"
	"strings"

	"github.com/arjun/fake-news-filter/internal/core"
)

// TFIDFVectorizer converts cleaned text into the fixed feature space learned
// at training time. The vocabulary and IDF weights are read-only after load,
// so a single instance is safe for concurrent use.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Dimensions returns the size of the feature space
func (v *TFIDFVectorizer) Dimensions() int {
	return len(v.idf)
}

// Vectorize computes the L2-normalized TF-IDF vector for cleaned text.
// Tokens outside the training vocabulary are silently ignored, as are
// single-character tokens, which the training tokenizer never emits.
func (v *TFIDFVectorizer) Vectorize(cleaned string) core.FeatureVector {
	counts := make(map[int]float64)
	for _, token := range strings.Fields(cleaned) {
		if len(token) < 2 {
			continue
		}
		if idx, ok := v.vocabulary[token]; ok {
			counts[idx]++
		}
	}

	vec := make(core.FeatureVector, len(counts))
	var sumSquares float64
	for idx, tf := range counts {
		weight := tf * v.idf[idx]
		vec[idx] = weight
		sumSquares += weight * weight
	}

	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for idx := range vec {
			vec[idx] /= norm
		}
	}

	return vec
}
