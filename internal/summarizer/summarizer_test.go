package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tubedigest/internal/config"
	"github.com/nguyentantai21042004/tubedigest/internal/logger"
	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/quota"
)

const sampleTranscript = "0:05 Hello world this is a test.\n0:10 This explains the concept clearly."

var sampleMeta = models.VideoMetadata{
	Title:           "Test Video",
	Channel:         "Test Channel",
	URL:             "https://www.youtube.com/watch?v=abc123",
	DurationSeconds: 60,
}

type fakeClient struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.response, f.err
}

func newTestSummarizer(client *fakeClient, limiter Limiter) Summarizer {
	return New(client, limiter, logger.Nop(), 0)
}

func TestSummarizeEndToEnd(t *testing.T) {
	client := &fakeClient{response: `{"error":null,"summary_short":"A short test.","summary_long":"A longer test.","key_points":[{"time":"0:5","point":"intro"}],"timestamps":[],"faq":[],"action_items":[],"suggested_title":"","suggested_tags":[],"suggested_description":""}`}
	s := newTestSummarizer(client, nil)

	got, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)

	assert.Nil(t, got.Error)
	assert.Equal(t, models.SourceAI, got.Source)
	assert.Equal(t, "A short test.", got.SummaryShort)
	require.Len(t, got.KeyPoints, 1)
	assert.Equal(t, "00:05", got.KeyPoints[0].Time)
	assert.Equal(t, []models.Timestamp{{Time: "00:00", Label: "Introduction"}}, got.Timestamps)
	assert.Equal(t, sampleMeta, got.Meta)
	assert.Contains(t, client.prompt, sampleTranscript)
}

func TestSummarizeBlankTranscript(t *testing.T) {
	for _, transcript := range []string{"", "   \n\t "} {
		client := &fakeClient{response: "{}"}
		s := newTestSummarizer(client, nil)

		got, err := s.Summarize(context.Background(), sampleMeta, transcript)
		require.NoError(t, err)

		assert.Equal(t, models.ErrCodeTranscriptMissing, got.ErrorCode())
		assert.Empty(t, got.KeyPoints)
		assert.Empty(t, got.Timestamps)
		assert.Empty(t, got.FAQ)
		assert.Empty(t, got.ActionItems)
		assert.Empty(t, got.SuggestedTags)
		assert.Zero(t, client.calls)
	}
}

func TestSummarizeNotJSONFallsBack(t *testing.T) {
	client := &fakeClient{response: "not json at all"}
	s := newTestSummarizer(client, nil)

	got, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)

	assert.Equal(t, Fallback(sampleMeta, sampleTranscript), got)
}

func TestSummarizeEmptyShortFallsBack(t *testing.T) {
	client := &fakeClient{response: `{"summary_short":"","summary_long":"something"}`}
	s := newTestSummarizer(client, nil)

	got, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)

	assert.Equal(t, models.SourceFallback, got.Source)
	assert.NotEmpty(t, got.SummaryShort)
	assert.Equal(t, Fallback(sampleMeta, sampleTranscript), got)
}

func TestSummarizeEmptyResponseFallsBack(t *testing.T) {
	client := &fakeClient{response: "  "}
	s := newTestSummarizer(client, nil)

	got, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, got.Source)
}

func TestSummarizeTransportFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("API error: 500 - internal")}
	s := newTestSummarizer(client, nil)

	got, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)

	assert.Nil(t, got.Error)
	assert.Equal(t, models.SourceFallback, got.Source)
	assert.Equal(t, 1, client.calls)
}

func TestSummarizeQuotaExhaustedFallsBack(t *testing.T) {
	limiter := quota.New(config.QuotaConfig{RequestsPerDay: 1})
	client := &fakeClient{response: `{"summary_short":"ok"}`}
	s := newTestSummarizer(client, limiter)

	first, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)
	assert.Equal(t, models.SourceAI, first.Source)

	second, err := s.Summarize(context.Background(), sampleMeta, sampleTranscript)
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, second.Source)
	assert.Equal(t, 1, client.calls)
}

func TestSummarizeCancelledReturnsNoSummary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{response: `{"summary_short":"ok"}`}
	s := newTestSummarizer(client, nil)

	got, err := s.Summarize(ctx, sampleMeta, sampleTranscript)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAfterTransportFailureWithoutTranscript(t *testing.T) {
	got := afterTransportFailure(sampleMeta, " ", errors.New("connection refused"))

	assert.Equal(t, "API_ERROR: connection refused", got.ErrorCode())
	assert.Equal(t, "Error: connection refused. Please ensure the transcript is available.", got.SummaryShort)
	assert.Contains(t, got.SummaryLong, "Unable to generate summary due to: connection refused.")
	assert.Equal(t, sampleMeta.Title, got.SuggestedTitle)
	assert.Empty(t, got.KeyPoints)
	assert.Empty(t, got.Timestamps)
}

func TestSummaryError(t *testing.T) {
	assert.NoError(t, SummaryError(Fallback(sampleMeta, sampleTranscript)))
	assert.ErrorIs(t, SummaryError(transcriptMissing(sampleMeta)), ErrTranscriptMissing)

	err := SummaryError(apiErrorSummary(sampleMeta, errors.New("boom")))
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "boom")

	s := models.NewSummary(sampleMeta)
	s.Error = models.StringPtr("SOMETHING_ELSE")
	assert.EqualError(t, SummaryError(s), "SOMETHING_ELSE")
}

func TestSummarizeBlankTranscriptMapsToSentinel(t *testing.T) {
	got, err := newTestSummarizer(&fakeClient{}, nil).Summarize(context.Background(), sampleMeta, "\n  ")
	require.NoError(t, err)
	assert.ErrorIs(t, SummaryError(got), ErrTranscriptMissing)
}
