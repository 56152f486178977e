package config

import (
	"time"
)

// ServerConfig represents the configuration for the HTTP server
type ServerConfig struct {
	ListenAddress string
	Mode          string
}

// ModelConfig represents the configuration for the ML artifacts
type ModelConfig struct {
	VectorizerPath string
	ClassifierPath string
}

// ClassifyConfig represents the classification policy configuration
type ClassifyConfig struct {
	ShortWordThreshold     int
	FeedShortWordThreshold int
}

// BatchConfig represents the configuration for batch processing
type BatchConfig struct {
	MaxRecords int
}

// FeedConfig represents the configuration for the news feed client
type FeedConfig struct {
	Provider  string
	BaseURL   string
	APIKey    string
	Languages string
	Sort      string
	Limit     int
	Timeout   time.Duration
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress: c.GetString("server.listen_address"),
		Mode:          c.GetString("server.mode"),
	}
}

// GetModel returns the model artifact configuration
func (c *Config) GetModel() ModelConfig {
	return ModelConfig{
		VectorizerPath: c.GetString("model.vectorizer_path"),
		ClassifierPath: c.GetString("model.classifier_path"),
	}
}

// GetClassify returns the classification policy configuration
func (c *Config) GetClassify() ClassifyConfig {
	return ClassifyConfig{
		ShortWordThreshold:     c.GetInt("classify.short_word_threshold"),
		FeedShortWordThreshold: c.GetInt("classify.feed_short_word_threshold"),
	}
}

// GetBatch returns the batch processing configuration
func (c *Config) GetBatch() BatchConfig {
	return BatchConfig{
		MaxRecords: c.GetInt("batch.max_records"),
	}
}

// GetFeed returns the feed client configuration
func (c *Config) GetFeed() (FeedConfig, error) {
	timeout, err := c.GetDuration("feed.timeout")
	if err != nil {
		return FeedConfig{}, err
	}
	return FeedConfig{
		Provider:  c.GetString("feed.provider"),
		BaseURL:   c.GetString("feed.base_url"),
		APIKey:    c.GetString("feed.api_key"),
		Languages: c.GetString("feed.languages"),
		Sort:      c.GetString("feed.sort"),
		Limit:     c.GetInt("feed.limit"),
		Timeout:   timeout,
	}, nil
}
