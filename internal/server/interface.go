package server

import (
	"context"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

// Server exposes the summarizer over HTTP.
type Server interface {
	// Start serves until ctx is done, then shuts down gracefully.
	Start(ctx context.Context) error
}

// MetadataLookup resolves a video id to its metadata.
type MetadataLookup interface {
	Lookup(ctx context.Context, videoID string) (models.VideoMetadata, error)
}
