package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClient struct {
	response string
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	return f.response, nil
}

type cancelledSummarizer struct{}

func (cancelledSummarizer) Summarize(ctx context.Context, meta models.VideoMetadata, text string) (*models.Summary, error) {
	return nil, context.Canceled
}

type fakeLookup struct {
	meta models.VideoMetadata
	err  error
	id   string
}

func (f *fakeLookup) Lookup(ctx context.Context, videoID string) (models.VideoMetadata, error) {
	f.id = videoID
	return f.meta, f.err
}

func newTestRouter(sum summarizer.Summarizer, lookup MetadataLookup) *gin.Engine {
	if sum == nil {
		sum = summarizer.New(&fakeClient{response: `{"summary_short":"Model summary."}`}, nil, logger.Nop(), 0)
	}
	if lookup == nil {
		lookup = &fakeLookup{}
	}
	return NewRouter(sum, lookup, logger.Nop())
}

func do(r http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(nil, nil), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestRequestIDEchoed(t *testing.T) {
	r := newTestRouter(nil, nil)

	w := do(r, http.MethodGet, "/health", "", http.Header{"X-Request-Id": {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))

	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Len(t, w.Header().Get("X-Request-Id"), 36)
}

func TestSummarize(t *testing.T) {
	body := `{"video_title":"Go Talk","channel_name":"Gopher TV","video_url":"https://youtu.be/abc","duration_seconds":90,"transcript":"0:05 Hello world this is a test."}`

	w := do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	m := decode(t, w)
	assert.Equal(t, true, m["success"])
	assert.Equal(t, "ai", m["source"])

	summary := m["summary"].(map[string]any)
	assert.Equal(t, "Model summary.", summary["summary_short"])
	assert.Equal(t, "Go Talk", summary["meta"].(map[string]any)["title"])
}

func TestSummarizeMissingTranscript(t *testing.T) {
	w := do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries", `{"video_title":"Go Talk"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	m := decode(t, w)
	assert.Equal(t, "error", m["source"])
	assert.Equal(t, models.ErrCodeTranscriptMissing, m["summary"].(map[string]any)["error"])
}

func TestSummarizeBadJSON(t *testing.T) {
	w := do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries", `{"video_title":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestSummarizeCancelled(t *testing.T) {
	w := do(newTestRouter(cancelledSummarizer{}, nil), http.MethodPost, "/api/v1/summaries", `{"transcript":"x"}`, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestParseTranscript(t *testing.T) {
	w := do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/transcripts/parse", `{"transcript":"0:05 hello\n1:10 world"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	segments := decode(t, w)["segments"].([]any)
	require.Len(t, segments, 2)
}

func TestVideoMetadata(t *testing.T) {
	lookup := &fakeLookup{meta: models.VideoMetadata{Title: "Go Talk", Channel: "Gopher TV"}}

	w := do(newTestRouter(nil, lookup), http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/metadata", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "dQw4w9WgXcQ", lookup.id)
	assert.Equal(t, "Gopher TV", decode(t, w)["channel"])
}

func TestVideoMetadataErrors(t *testing.T) {
	w := do(newTestRouter(nil, nil), http.MethodGet, "/api/v1/videos/short/metadata", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	lookup := &fakeLookup{err: errors.New("boom")}
	w = do(newTestRouter(nil, lookup), http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/metadata", "", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestExport(t *testing.T) {
	body := `{"error":null,"meta":{"title":"Go Talk","channel":"","url":"","duration_seconds":0},"summary_short":"Short.","key_points":[{"time":"00:05","point":"intro"}]}`

	w := do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries/export", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "# Go Talk")
	assert.Contains(t, w.Body.String(), "- **00:05** intro")

	w = do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries/export?format=json", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Short.", decode(t, w)["summary_short"])

	w = do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries/export?format=docx", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportNormalizesPostedSummary(t *testing.T) {
	body := `{"meta":{"title":"Go Talk"},"summary_short":"Short.","key_points":null,"timestamps":[{"time":"1:5","label":"intro"}],"faq":null}`

	w := do(newTestRouter(nil, nil), http.MethodPost, "/api/v1/summaries/export?format=json", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	m := decode(t, w)
	assert.Equal(t, []any{}, m["key_points"])
	assert.Equal(t, []any{}, m["faq"])
	assert.Equal(t, []any{}, m["action_items"])
	assert.Equal(t, "01:05", m["timestamps"].([]any)[0].(map[string]any)["time"])
}
