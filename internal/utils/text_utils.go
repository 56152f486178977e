package utils

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	tagPattern        = regexp.MustCompile(`<.*?>`)
	nonLetterPattern  = regexp.MustCompile(`[^a-zA-Z\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// TextNormalizer cleans raw news text before vectorization
type TextNormalizer struct {
	logger *zap.Logger
}

// NewTextNormalizer creates a new TextNormalizer
func NewTextNormalizer(logger *zap.Logger) *TextNormalizer {
	return &TextNormalizer{
		logger: logger,
	}
}

// Normalize strips HTML-like tags, drops everything that is not an ASCII
// letter or whitespace, lowercases, and collapses whitespace runs to single
// spaces. Total over any input: non-string values yield the empty string
// rather than an error. Idempotent.
//
// The tag strip is best-effort pattern matching, not a markup parser;
// malformed or unclosed tags may survive. Digits and non-ASCII letters are
// dropped on purpose, matching the corpus the model was trained on.
func (n *TextNormalizer) Normalize(input any) string {
	text, ok := input.(string)
	if !ok {
		if input != nil && n.logger != nil {
			n.logger.Debug("Non-string input normalized to empty text")
		}
		return ""
	}

	text = tagPattern.ReplaceAllString(text, "")
	text = nonLetterPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// WordCount counts whitespace-separated tokens in cleaned text
func (n *TextNormalizer) WordCount(cleaned string) int {
	if cleaned == "" {
		return 0
	}
	return len(strings.Fields(cleaned))
}
