package core

import (
	"time"
)

// Label is the outcome of classifying a piece of news text.
type Label string

const (
	// LabelReal marks text the model considers authentic reporting.
	LabelReal Label = "REAL"
	// LabelFake marks text the model considers fabricated.
	LabelFake Label = "FAKE"
	// LabelUnknown is a policy outcome for text that cleans down to nothing.
	// It is never produced by the model itself.
	LabelUnknown Label = "UNKNOWN"
)

// FeatureVector is a sparse TF-IDF representation of cleaned text,
// keyed by vocabulary index.
type FeatureVector map[int]float64

// ClassificationResult represents the result of classifying one text
type ClassificationResult struct {
	Label        Label
	WordCount    int
	IsShort      bool
	Score        *float64
	ClassifiedAt time.Time
	ModelUsed    string
}

// BatchRecord pairs one processed input text with its result
type BatchRecord struct {
	Text   string
	Result ClassificationResult
}

// BatchSummary aggregates the results of classifying a tabular file
type BatchSummary struct {
	Results    []BatchRecord
	RealCount  int
	FakeCount  int
	TotalCount int
}

// Table is a fully materialized tabular input (e.g. a parsed CSV upload)
type Table struct {
	Columns []string
	Rows    [][]string
}

// ArticleRecord is one article as returned by the external news feed.
// Any field may be absent on the source record, hence the pointers.
type ArticleRecord struct {
	Title       *string
	Description *string
	URL         *string
	Image       *string
	Source      *string
	PublishedAt *string
}

// EnrichedArticle is a feed article annotated with its classification,
// with feed fields mapped to the canonical output names.
type EnrichedArticle struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        *string  `json:"link"`
	ImageURL    *string  `json:"image_url"`
	SourceID    *string  `json:"source_id"`
	PubDate     *string  `json:"pubDate"`
	Prediction  Label    `json:"prediction"`
	Score       *float64 `json:"score,omitempty"`
	IsShort     bool     `json:"is_short"`
}

// CacheEntry is a cached classification keyed by the hash of cleaned text
type CacheEntry struct {
	TextHash  string
	Label     Label
	Score     *float64
	LastSeen  time.Time
	ExpiresAt time.Time
}
