package summarizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

var (
	// ErrTranscriptMissing marks a summary produced without any transcript.
	ErrTranscriptMissing = errors.New("transcript missing")
	// ErrTransport wraps provider, quota and credential failures of the model call.
	ErrTransport = errors.New("transport failure")
	// ErrEmptyResponse is returned by Interpret for a blank model answer.
	ErrEmptyResponse = errors.New("empty model response")
	// ErrMalformedResponse is returned by Interpret when no usable summary
	// can be decoded.
	ErrMalformedResponse = errors.New("malformed model response")
)

// SummaryError maps the error code carried by s back to a sentinel error,
// or nil when s has none.
func SummaryError(s *models.Summary) error {
	code := s.ErrorCode()
	switch {
	case code == "":
		return nil
	case code == models.ErrCodeTranscriptMissing:
		return ErrTranscriptMissing
	case strings.HasPrefix(code, models.ErrCodeAPIPrefix):
		return fmt.Errorf("%w: %s", ErrTransport, strings.TrimPrefix(code, models.ErrCodeAPIPrefix))
	default:
		return errors.New(code)
	}
}
