package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/arjun/fake-news-filter/internal/core"
	"github.com/arjun/fake-news-filter/internal/utils"
)

type stubVectorizer struct{}

func (stubVectorizer) Vectorize(cleaned string) core.FeatureVector {
	return core.FeatureVector{0: float64(len(strings.Fields(cleaned)))}
}

// stubClassifier labels text with at least three tokens REAL
type stubClassifier struct{}

func (stubClassifier) Classify(vec core.FeatureVector) (core.Label, *float64) {
	score := vec[0] - 3
	if score >= 0 {
		return core.LabelReal, &score
	}
	return core.LabelFake, &score
}

type stubFeed struct {
	articles []core.ArticleRecord
	err      error
}

func (f *stubFeed) FetchLatest(ctx context.Context) ([]core.ArticleRecord, error) {
	return f.articles, f.err
}

func newTestServer(models *core.ModelBundle, feed *stubFeed) *Server {
	service := core.NewClassificationService(
		models,
		utils.NewTextNormalizer(zap.NewNop()),
		nil,
		zap.NewNop(),
		false,
		time.Duration(0),
		50, 20, 100, nil,
	)
	return NewServer(service, feed, models, zap.NewNop(), ":0", "test")
}

func availableModels() *core.ModelBundle {
	return core.NewModelBundle(stubVectorizer{}, stubClassifier{})
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleClassify(t *testing.T) {
	s := newTestServer(availableModels(), &stubFeed{})

	body := bytes.NewBufferString(`{"text": "Leopard Spotted in Pune Airport"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", body)
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp ClassifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Prediction != core.LabelReal {
		t.Errorf("prediction = %s, want REAL", resp.Prediction)
	}
	if resp.WordCount != 5 {
		t.Errorf("word count = %d, want 5", resp.WordCount)
	}
	if !resp.IsShort {
		t.Error("expected 5-word text to be flagged short")
	}
}

func TestHandleClassify_NoText(t *testing.T) {
	s := newTestServer(availableModels(), &stubFeed{})

	for _, body := range []string{`{}`, `{"text": ""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if rec := doRequest(s, req); rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleClassify_ModelUnavailable(t *testing.T) {
	s := newTestServer(core.NewUnavailableModelBundle(errors.New("missing artifact")), &stubFeed{})

	body := bytes.NewBufferString(`{"text": "anything at all"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", body)
	req.Header.Set("Content-Type", "application/json")

	if rec := doRequest(s, req); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func multipartCSV(t *testing.T, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "upload.csv")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}

func TestHandleClassifyBatch(t *testing.T) {
	s := newTestServer(availableModels(), &stubFeed{})

	csv := "text\na story with plenty of words\nshort\n"
	body, contentType := multipartCSV(t, csv)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp BatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCount != 2 {
		t.Errorf("total = %d, want 2", resp.TotalCount)
	}
	if resp.RealCount != 1 || resp.FakeCount != 1 {
		t.Errorf("counts = %d real / %d fake, want 1/1", resp.RealCount, resp.FakeCount)
	}
	if resp.RealCount+resp.FakeCount != resp.TotalCount {
		t.Error("real + fake must equal total")
	}
}

func TestHandleClassifyBatch_Malformed(t *testing.T) {
	s := newTestServer(availableModels(), &stubFeed{})

	body, contentType := multipartCSV(t, "text\n\"unterminated quote\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", body)
	req.Header.Set("Content-Type", contentType)

	if rec := doRequest(s, req); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleClassifyBatch_NoFile(t *testing.T) {
	s := newTestServer(availableModels(), &stubFeed{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/batch", nil)
	if rec := doRequest(s, req); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLatestNews(t *testing.T) {
	title := "A long enough headline to classify"
	feed := &stubFeed{articles: []core.ArticleRecord{
		{Title: &title},
		{}, // fully null article must survive
	}}
	s := newTestServer(availableModels(), feed)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/latest", nil)
	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp NewsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.NewsItems) != 2 {
		t.Fatalf("news items = %d, want 2", len(resp.NewsItems))
	}
	if resp.NewsItems[0].Prediction != core.LabelReal {
		t.Errorf("first prediction = %s, want REAL", resp.NewsItems[0].Prediction)
	}
	if resp.NewsItems[1].Prediction != core.LabelUnknown {
		t.Errorf("null article prediction = %s, want UNKNOWN", resp.NewsItems[1].Prediction)
	}
}

func TestHandleLatestNews_FeedFailure(t *testing.T) {
	s := newTestServer(availableModels(), &stubFeed{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news/latest", nil)
	if rec := doRequest(s, req); rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandleHealth_Degraded(t *testing.T) {
	s := newTestServer(core.NewUnavailableModelBundle(errors.New("missing artifact")), &stubFeed{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "degraded") {
		t.Errorf("expected degraded status in body: %s", rec.Body.String())
	}
}
