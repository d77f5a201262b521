package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

// Summarizer turns a transcript into a structured Summary. It always returns
// a Summary unless ctx is cancelled, in which case it returns ctx's error.
type Summarizer interface {
	Summarize(ctx context.Context, meta models.VideoMetadata, transcript string) (*models.Summary, error)
}

// Limiter gates outbound model calls.
type Limiter interface {
	Reserve(ctx context.Context) error
}
