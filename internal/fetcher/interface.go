package fetcher

import (
	"context"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

// Fetcher downloads captions for a video URL.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) (*Result, error)
}

// Result is the fetched metadata plus the captions as a line-oriented
// transcript. Transcript is empty when the video has no captions.
type Result struct {
	Meta       models.VideoMetadata
	Transcript string
}
