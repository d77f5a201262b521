package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/tubedigest/internal/llm"
	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

// Summarize runs one pipeline invocation: a single model call, tolerant
// interpretation of the answer and the fallback summary on any failure.
func (s *implSummarizer) Summarize(ctx context.Context, meta models.VideoMetadata, transcript string) (*models.Summary, error) {
	if strings.TrimSpace(transcript) == "" {
		summary := transcriptMissing(meta)
		s.logger.Warn(ctx, "Skipping model call for %q: %v", meta.Title, SummaryError(summary))
		return summary, nil
	}

	startTime := time.Now()
	prompt := BuildPrompt(meta, transcript)
	s.logger.Debug(ctx, "Calling %s: transcript %d chars, prompt %d chars", s.client.Name(), len(transcript), len(prompt))

	raw, err := s.call(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn(ctx, "Model call failed after %s, using fallback: %v", time.Since(startTime), err)
		return afterTransportFailure(meta, transcript, err), nil
	}

	summary, err := Interpret(raw, meta)
	if err != nil {
		s.logger.Warn(ctx, "Unusable model response (%d chars), using fallback: %v", len(raw), err)
		return Fallback(meta, transcript), nil
	}

	s.logger.Info(ctx, "Summarized %q with %s in %s: %d key points, %d timestamps",
		meta.Title, s.client.Name(), time.Since(startTime), len(summary.KeyPoints), len(summary.Timestamps))
	return summary, nil
}

// call reserves quota and performs the single model request.
func (s *implSummarizer) call(ctx context.Context, prompt string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Reserve(ctx); err != nil {
			return "", fmt.Errorf("%w: %w", ErrTransport, err)
		}
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.client.Generate(callCtx, prompt)
	if err != nil {
		if llm.IsRateLimited(err) {
			s.logger.Warn(ctx, "%s rejected the call as rate limited", s.client.Name())
		}
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return raw, nil
}

// afterTransportFailure falls back when there is transcript text to work
// with and otherwise reports the transport error.
func afterTransportFailure(meta models.VideoMetadata, transcript string, err error) *models.Summary {
	if strings.TrimSpace(transcript) != "" {
		return Fallback(meta, transcript)
	}
	return apiErrorSummary(meta, err)
}

func apiErrorSummary(meta models.VideoMetadata, err error) *models.Summary {
	msg := err.Error()

	s := models.NewSummary(meta)
	s.Source = models.SourceError
	s.Error = models.StringPtr(models.ErrCodeAPIPrefix + msg)
	s.SummaryShort = "Error: " + msg + ". Please ensure the transcript is available."
	s.SummaryLong = "Unable to generate summary due to: " + msg +
		". Please make sure the transcript panel is open on YouTube and try again."
	s.SuggestedTitle = meta.Title
	return s
}
