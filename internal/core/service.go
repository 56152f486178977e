package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// textColumnCandidates are the recognized names for the text-bearing column
// of a batch upload, in priority order.
var textColumnCandidates = []string{"text", "content", "body", "news"}

// ClassificationService is the core service for fake news detection
type ClassificationService struct {
	models             *ModelBundle
	normalizer         Normalizer
	cache              CacheRepository
	logger             *zap.Logger
	cacheEnabled       bool
	cacheTTL           time.Duration
	shortWordThreshold int
	feedWordThreshold  int
	batchLimit         int
	trustedSources     []string
}

// NewClassificationService creates a new classification service
func NewClassificationService(
	models *ModelBundle,
	normalizer Normalizer,
	cache CacheRepository,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	shortWordThreshold int,
	feedWordThreshold int,
	batchLimit int,
	trustedSources []string,
) *ClassificationService {
	return &ClassificationService{
		models:             models,
		normalizer:         normalizer,
		cache:              cache,
		logger:             logger,
		cacheEnabled:       cacheEnabled,
		cacheTTL:           cacheTTL,
		shortWordThreshold: shortWordThreshold,
		feedWordThreshold:  feedWordThreshold,
		batchLimit:         batchLimit,
		trustedSources:     trustedSources,
	}
}

// ClassifyText classifies a single submitted text using the single-item
// short-text threshold.
func (s *ClassificationService) ClassifyText(ctx context.Context, rawText string) (*ClassificationResult, error) {
	return s.classifyOne(ctx, rawText, s.shortWordThreshold)
}

// classifyOne runs the full pipeline for one text. The short-text threshold
// is caller policy: single-item and batch callers use a different
// sensitivity than feed-derived headline+description content.
func (s *ClassificationService) classifyOne(ctx context.Context, rawText string, shortWordThreshold int) (*ClassificationResult, error) {
	if err := s.models.Err(); err != nil {
		return nil, err
	}

	cleaned := s.normalizer.Normalize(rawText)
	if cleaned == "" {
		// No signal to classify. A policy outcome, not a model output.
		return &ClassificationResult{
			Label:        LabelUnknown,
			WordCount:    0,
			IsShort:      true,
			ClassifiedAt: time.Now(),
			ModelUsed:    "policy",
		}, nil
	}

	wordCount := s.normalizer.WordCount(cleaned)
	isShort := wordCount < shortWordThreshold

	// Word count and the short flag depend on caller policy, so the cache
	// stores only the model outcome.
	key := textKey(cleaned)
	if s.cacheEnabled && s.cache != nil {
		if entry, err := s.cache.Get(ctx, key); err == nil {
			s.logger.Debug("Cache hit for text", zap.String("text_hash", key))
			return &ClassificationResult{
				Label:        entry.Label,
				WordCount:    wordCount,
				IsShort:      isShort,
				Score:        entry.Score,
				ClassifiedAt: time.Now(),
				ModelUsed:    "cache",
			}, nil
		}
	}

	vec := s.models.Vectorizer().Vectorize(cleaned)
	label, score := s.models.Classifier().Classify(vec)

	if s.cacheEnabled && s.cache != nil {
		entry := &CacheEntry{
			TextHash:  key,
			Label:     label,
			Score:     score,
			LastSeen:  time.Now(),
			ExpiresAt: time.Now().Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	return &ClassificationResult{
		Label:        label,
		WordCount:    wordCount,
		IsShort:      isShort,
		Score:        score,
		ClassifiedAt: time.Now(),
		ModelUsed:    "tfidf-linear",
	}, nil
}

// ClassifyTable classifies the rows of a tabular upload and aggregates
// counts. At most batchLimit rows are processed, in original order; rows
// beyond the cap are ignored without error.
func (s *ClassificationService) ClassifyTable(ctx context.Context, table *Table, columnHint string) (*BatchSummary, error) {
	if err := s.models.Err(); err != nil {
		return nil, err
	}
	if table == nil || len(table.Columns) == 0 {
		return nil, NewMalformedInputError(errors.New("no columns in input"))
	}

	colIdx := s.selectTextColumn(table.Columns, columnHint)
	s.logger.Debug("Selected text column",
		zap.String("column", table.Columns[colIdx]),
		zap.String("hint", columnHint))

	rows := table.Rows
	if len(rows) > s.batchLimit {
		rows = rows[:s.batchLimit]
	}

	summary := &BatchSummary{Results: make([]BatchRecord, 0, len(rows))}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// A short or missing cell degrades to empty text, which
		// classifies as UNKNOWN.
		text := ""
		if colIdx < len(row) {
			text = row[colIdx]
		}

		result, err := s.classifyOne(ctx, text, s.shortWordThreshold)
		if err != nil {
			return nil, err
		}

		// REAL goes to the real bucket; FAKE and UNKNOWN both land in
		// the fake bucket.
		if result.Label == LabelReal {
			summary.RealCount++
		} else {
			summary.FakeCount++
		}

		summary.Results = append(summary.Results, BatchRecord{Text: text, Result: *result})
	}
	summary.TotalCount = len(summary.Results)

	s.logger.Info("Processed batch",
		zap.Int("total", summary.TotalCount),
		zap.Int("real", summary.RealCount),
		zap.Int("fake", summary.FakeCount))

	return summary, nil
}

// selectTextColumn picks the text-bearing column: the caller hint first,
// then the recognized candidate names in priority order, then the first
// column. The first-column fallback is a heuristic and is not guaranteed to
// contain prose.
func (s *ClassificationService) selectTextColumn(columns []string, hint string) int {
	if hint != "" {
		for i, col := range columns {
			if strings.EqualFold(col, hint) {
				return i
			}
		}
	}
	for _, candidate := range textColumnCandidates {
		for i, col := range columns {
			if strings.EqualFold(col, candidate) {
				return i
			}
		}
	}
	return 0
}

// ClassifyFeed classifies already-fetched feed articles and maps them into
// display-ready records. One malformed article never aborts the rest.
func (s *ClassificationService) ClassifyFeed(ctx context.Context, articles []ArticleRecord) ([]EnrichedArticle, error) {
	if err := s.models.Err(); err != nil {
		return nil, err
	}

	enriched := make([]EnrichedArticle, 0, len(articles))
	for _, article := range articles {
		title := derefString(article.Title)
		description := derefString(article.Description)

		// Headline plus description gives the model more context than
		// the headline alone.
		content := title + ". " + description

		var result *ClassificationResult
		if source := derefString(article.Source); source != "" && s.isTrustedSource(source) {
			s.logger.Debug("Skipping model for trusted source", zap.String("source", source))
			cleaned := s.normalizer.Normalize(content)
			wordCount := s.normalizer.WordCount(cleaned)
			result = &ClassificationResult{
				Label:        LabelReal,
				WordCount:    wordCount,
				IsShort:      wordCount < s.feedWordThreshold,
				ClassifiedAt: time.Now(),
				ModelUsed:    "trusted-source",
			}
		} else {
			var err error
			result, err = s.classifyOne(ctx, content, s.feedWordThreshold)
			if err != nil {
				return nil, err
			}
		}

		enriched = append(enriched, EnrichedArticle{
			Title:       title,
			Description: description,
			Link:        article.URL,
			ImageURL:    article.Image,
			SourceID:    article.Source,
			PubDate:     article.PublishedAt,
			Prediction:  result.Label,
			Score:       result.Score,
			IsShort:     result.IsShort,
		})
	}

	return enriched, nil
}

// isTrustedSource checks if a feed source name is in the trusted list
func (s *ClassificationService) isTrustedSource(source string) bool {
	for _, trusted := range s.trustedSources {
		if strings.EqualFold(source, trusted) {
			return true
		}
	}
	return false
}

// textKey derives the cache key for a cleaned text
func textKey(cleaned string) string {
	sum := sha256.Sum256([]byte(cleaned))
	return hex.EncodeToString(sum[:])
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
