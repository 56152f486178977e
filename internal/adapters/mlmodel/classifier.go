package mlmodel

import (
	"github.com/arjun/fake-news-filter/internal/core"
)

// LinearClassifier applies a pre-trained linear decision function. The
// weights are read-only after load, so a single instance is safe for
// concurrent use.
type LinearClassifier struct {
	classes   [2]core.Label
	weights   []float64
	intercept float64
}

// Dimensions returns the expected feature vector dimension
func (c *LinearClassifier) Dimensions() int {
	return len(c.weights)
}

// Classify computes the signed distance to the decision boundary and maps
// its sign to a label: strictly positive selects the second class. The raw
// distance is returned as the confidence score; magnitude near zero means
// the text sits close to the boundary.
func (c *LinearClassifier) Classify(vec core.FeatureVector) (core.Label, *float64) {
	score := c.intercept
	for idx, value := range vec {
		if idx >= 0 && idx < len(c.weights) {
			score += c.weights[idx] * value
		}
	}

	label := c.classes[0]
	if score > 0 {
		label = c.classes[1]
	}
	return label, &score
}
