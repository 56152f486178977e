package web

import (
	"github.com/arjun/fake-news-filter/internal/core"
)

// ClassifyRequest represents a single-text classification request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents the result of a single-text classification
type ClassifyResponse struct {
	Prediction core.Label `json:"prediction"`
	WordCount  int        `json:"word_count"`
	IsShort    bool       `json:"is_short"`
	Score      *float64   `json:"score,omitempty"`
}

// BatchResultItem pairs one input text with its prediction
type BatchResultItem struct {
	Text       string     `json:"text"`
	Prediction core.Label `json:"prediction"`
	IsShort    bool       `json:"is_short"`
}

// BatchResponse represents the aggregated result of a batch upload
type BatchResponse struct {
	Results    []BatchResultItem `json:"results"`
	RealCount  int               `json:"real_count"`
	FakeCount  int               `json:"fake_count"`
	TotalCount int               `json:"total_count"`
}

// NewsResponse represents the classified live news feed
type NewsResponse struct {
	NewsItems []core.EnrichedArticle `json:"news_items"`
}
