package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/core"
	"github.com/arjun/fake-news-filter/internal/ports"
)

// maxUploadSize bounds batch upload reads; the record cap already bounds
// processing, this only protects memory.
const maxUploadSize = 10 << 20 // 10 MiB

// Server exposes the classification service over HTTP
type Server struct {
	service    *core.ClassificationService
	feed       ports.FeedSource
	models     *core.ModelBundle
	logger     *zap.Logger
	srv        *http.Server
	listenAddr string
}

// NewServer creates a new HTTP server
func NewServer(
	service *core.ClassificationService,
	feed ports.FeedSource,
	models *core.ModelBundle,
	logger *zap.Logger,
	listenAddr string,
	mode string,
) *Server {
	gin.SetMode(mode)

	s := &Server{
		service:    service,
		feed:       feed,
		models:     models,
		logger:     logger,
		listenAddr: listenAddr,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", s.handleHealth)

	api := router.Group("/api/v1")
	api.POST("/classify", s.handleClassify)
	api.POST("/classify/batch", s.handleClassifyBatch)
	api.GET("/news/latest", s.handleLatestNews)

	s.srv = &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	return s
}

// Start starts serving requests in the background
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.listenAddr))
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.srv.Shutdown(ctx)
}

// handleHealth reports liveness and whether the model artifacts loaded
func (s *Server) handleHealth(c *gin.Context) {
	status := gin.H{
		"status":  "OK",
		"service": "fake-news-filter",
	}
	if err := s.models.Err(); err != nil {
		status["status"] = "degraded"
		status["model"] = err.Error()
	}
	c.JSON(http.StatusOK, status)
}

// handleClassify classifies a single submitted text
func (s *Server) handleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	result, err := s.service.ClassifyText(c.Request.Context(), req.Text)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		Prediction: result.Label,
		WordCount:  result.WordCount,
		IsShort:    result.IsShort,
		Score:      result.Score,
	})
}

// handleClassifyBatch classifies the rows of an uploaded CSV file
func (s *Server) handleClassifyBatch(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	table, err := parseUpload(file)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}

	summary, err := s.service.ClassifyTable(c.Request.Context(), table, c.PostForm("column"))
	if err != nil {
		s.renderServiceError(c, err)
		return
	}

	resp := BatchResponse{
		Results:    make([]BatchResultItem, 0, len(summary.Results)),
		RealCount:  summary.RealCount,
		FakeCount:  summary.FakeCount,
		TotalCount: summary.TotalCount,
	}
	for _, record := range summary.Results {
		resp.Results = append(resp.Results, BatchResultItem{
			Text:       record.Text,
			Prediction: record.Result.Label,
			IsShort:    record.Result.IsShort,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// handleLatestNews fetches the live feed and classifies each article
func (s *Server) handleLatestNews(c *gin.Context) {
	articles, err := s.feed.FetchLatest(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to fetch news feed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	enriched, err := s.service.ClassifyFeed(c.Request.Context(), articles)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewsResponse{NewsItems: enriched})
}

// renderServiceError maps core error conditions to HTTP statuses
func (s *Server) renderServiceError(c *gin.Context, err error) {
	var malformed *core.MalformedInputError
	switch {
	case errors.Is(err, core.ErrModelUnavailable):
		s.logger.Error("Classification model unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "classification model unavailable"})
	case errors.As(err, &malformed):
		c.JSON(http.StatusBadRequest, gin.H{"error": malformed.Error()})
	default:
		s.logger.Error("Classification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
