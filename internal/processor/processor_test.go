package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/summarizer"
)

type stubClient struct {
	response string
	calls    atomic.Int32
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	return s.response, nil
}

func testConfig(t *testing.T) *config.Config {
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:      filepath.Join(root, "input"),
			Processing: filepath.Join(root, "processing"),
			Output:     filepath.Join(root, "output"),
			Archived:   filepath.Join(root, "archived"),
		},
		Export: config.ExportConfig{Formats: []string{"json", "markdown"}},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))
	return cfg
}

func newTestProcessor(cfg *config.Config, client *stubClient) Processor {
	sum := summarizer.New(client, nil, logger.Nop(), 0)
	return New(cfg, sum, logger.Nop())
}

func writeInput(t *testing.T, cfg *config.Config, name, content string) string {
	path := filepath.Join(cfg.Paths.Input, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readSummary(t *testing.T, path string) map[string]any {
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestProcessJSONPayload(t *testing.T) {
	cfg := testConfig(t)
	client := &stubClient{response: `{"summary_short":"From the model."}`}
	p := newTestProcessor(cfg, client)

	payload, err := json.Marshal(models.VideoPayload{
		VideoTitle:      "Go Talk",
		ChannelName:     "Gopher TV",
		VideoURL:        "https://www.youtube.com/watch?v=abc",
		DurationSeconds: 120,
		Transcript:      "0:05 Hello world this is a test.",
	})
	require.NoError(t, err)
	input := writeInput(t, cfg, "talk.json", string(payload))

	require.NoError(t, p.Process(context.Background(), input))

	m := readSummary(t, filepath.Join(cfg.Paths.Output, "talk.summary.json"))
	assert.Equal(t, "From the model.", m["summary_short"])
	assert.Equal(t, "Go Talk", m["meta"].(map[string]any)["title"])

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "talk.summary.md"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "talk.json"))
	assert.NoFileExists(t, input)
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Processing, "talk.json"))
}

func TestProcessCaptionFileUsesStemAsTitle(t *testing.T) {
	cfg := testConfig(t)
	client := &stubClient{response: "not json at all"}
	p := newTestProcessor(cfg, client)

	input := writeInput(t, cfg, "lecture.srt", "1\n00:00:05,000 --> 00:00:07,000\nThis sentence is long enough to keep.\n")

	require.NoError(t, p.Process(context.Background(), input))

	m := readSummary(t, filepath.Join(cfg.Paths.Output, "lecture.summary.json"))
	assert.Equal(t, "lecture", m["suggested_title"])
	kp := m["key_points"].([]any)[0].(map[string]any)
	assert.Equal(t, "00:05", kp["time"])
}

func TestProcessEmptyTranscriptStillExports(t *testing.T) {
	cfg := testConfig(t)
	client := &stubClient{response: `{"summary_short":"unused"}`}
	p := newTestProcessor(cfg, client)

	input := writeInput(t, cfg, "empty.txt", "   ")

	require.NoError(t, p.Process(context.Background(), input))

	m := readSummary(t, filepath.Join(cfg.Paths.Output, "empty.summary.json"))
	assert.Equal(t, models.ErrCodeTranscriptMissing, m["error"])
	assert.Zero(t, client.calls.Load())
}

func TestProcessBadPayloadMovesToFailed(t *testing.T) {
	cfg := testConfig(t)
	p := newTestProcessor(cfg, &stubClient{})

	input := writeInput(t, cfg, "broken.json", "{not json")

	assert.Error(t, p.Process(context.Background(), input))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "failed", "broken.json"))
}

func TestProcessBacklog(t *testing.T) {
	cfg := testConfig(t)
	client := &stubClient{response: `{"summary_short":"ok"}`}
	p := newTestProcessor(cfg, client)

	writeInput(t, cfg, "a.txt", "0:01 first transcript line here")
	writeInput(t, cfg, "b.vtt", "WEBVTT\n\n00:02.000 --> 00:03.000\nsecond transcript\n")
	writeInput(t, cfg, "ignored.mp4", "binary")
	writeInput(t, cfg, ".hidden.txt", "skip me")

	require.NoError(t, p.ProcessBacklog(context.Background()))

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "a.summary.json"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "b.summary.json"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Output, "ignored.summary.json"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Input, "ignored.mp4"))
	assert.Equal(t, int32(2), client.calls.Load())
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("x.JSON"))
	assert.True(t, IsSupported("x.vtt"))
	assert.False(t, IsSupported("x.mp4"))
}

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (r *recordingLogger) Debug(ctx context.Context, msg string, args ...interface{}) {}
func (r *recordingLogger) Warn(ctx context.Context, msg string, args ...interface{})  {}
func (r *recordingLogger) Error(ctx context.Context, msg string, args ...interface{}) {}

func (r *recordingLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(msg, args...))
}

func TestProcessBacklogCancelledCountsOnlyStartedFiles(t *testing.T) {
	cfg := testConfig(t)
	client := &stubClient{response: `{"summary_short":"ok"}`}
	log := &recordingLogger{}
	p := New(cfg, summarizer.New(client, nil, logger.Nop(), 0), log)

	writeInput(t, cfg, "a.txt", "0:01 first transcript line here")
	writeInput(t, cfg, "b.txt", "0:02 second transcript line here")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.ProcessBacklog(ctx), context.Canceled)
	assert.Zero(t, client.calls.Load())
	assert.Contains(t, log.infos, "Backlog complete: 0 success, 0 failed, 2 not started")
	assert.FileExists(t, filepath.Join(cfg.Paths.Input, "a.txt"))
}

func TestSemaphoreAcquireHonoursDoneContext(t *testing.T) {
	sem := newSemaphore(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sem.acquire(ctx), context.Canceled)
	assert.NoError(t, sem.acquire(context.Background()))
}
