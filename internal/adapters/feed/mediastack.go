package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/core"
)

// MediastackClient fetches live articles from the Mediastack news API
type MediastackClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	languages  string
	sort       string
	limit      int
	logger     *zap.Logger
}

// mediastackArticle mirrors one element of the API's data array. Every
// field can be null in the payload.
type mediastackArticle struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Image       *string `json:"image"`
	Source      *string `json:"source"`
	PublishedAt *string `json:"published_at"`
}

// mediastackError is the API's error object
type mediastackError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// mediastackResponse is the top-level API response
type mediastackResponse struct {
	Data  []mediastackArticle `json:"data"`
	Error *mediastackError    `json:"error"`
}

// NewMediastackClient creates a new Mediastack client
func NewMediastackClient(
	baseURL string,
	apiKey string,
	languages string,
	sort string,
	limit int,
	timeout time.Duration,
	logger *zap.Logger,
) *MediastackClient {
	return &MediastackClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		languages:  languages,
		sort:       sort,
		limit:      limit,
		logger:     logger,
	}
}

// FetchLatest retrieves the latest articles from the feed. The returned
// records keep absent fields as nil; the caller decides how to degrade them.
func (c *MediastackClient) FetchLatest(ctx context.Context) ([]core.ArticleRecord, error) {
	query := url.Values{}
	query.Set("access_key", c.apiKey)
	query.Set("languages", c.languages)
	query.Set("sort", c.sort)
	query.Set("limit", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}
	defer resp.Body.Close()

	var payload mediastackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	if payload.Error != nil {
		return nil, fmt.Errorf("feed API error %s: %s", payload.Error.Code, payload.Error.Info)
	}

	c.logger.Debug("Fetched news feed",
		zap.Int("status", resp.StatusCode),
		zap.Int("articles", len(payload.Data)))

	articles := make([]core.ArticleRecord, 0, len(payload.Data))
	for _, a := range payload.Data {
		articles = append(articles, core.ArticleRecord{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Image:       a.Image,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
		})
	}

	return articles, nil
}
