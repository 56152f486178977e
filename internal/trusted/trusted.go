package trusted

import (
	"strings"

	"go.uber.org/zap"
)

// Checker provides functionality to check if feed sources are trusted
type Checker struct {
	sources []string
	logger  *zap.Logger
}

// NewChecker creates a new trusted source checker
func NewChecker(sources []string, logger *zap.Logger) *Checker {
	// Normalize source names (lowercase)
	normalized := make([]string, len(sources))
	for i, source := range sources {
		normalized[i] = strings.ToLower(strings.TrimSpace(source))
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized trusted source checker", zap.Strings("sources", normalized))
	}

	return &Checker{
		sources: normalized,
		logger:  logger,
	}
}

// IsTrusted checks if the article's source is in the trusted list
func (c *Checker) IsTrusted(source string) bool {
	if len(c.sources) == 0 {
		return false
	}

	source = strings.ToLower(strings.TrimSpace(source))
	for _, trusted := range c.sources {
		if trusted == source {
			if c.logger != nil {
				c.logger.Debug("Source is trusted", zap.String("source", source))
			}
			return true
		}
	}

	return false
}

// Sources returns the normalized trusted source names
func (c *Checker) Sources() []string {
	return c.sources
}
