package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

const defaultOEmbedEndpoint = "https://www.youtube.com/oembed"

// OEmbed looks up video titles and channels without an api key.
type OEmbed struct {
	endpoint string
	client   *http.Client
}

// NewOEmbed returns a client for endpoint, or YouTube's when empty.
func NewOEmbed(endpoint string) *OEmbed {
	if endpoint == "" {
		endpoint = defaultOEmbedEndpoint
	}
	return &OEmbed{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type oEmbedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Lookup fetches metadata for videoID. oEmbed carries no duration, so
// DurationSeconds is always 0.
func (o *OEmbed) Lookup(ctx context.Context, videoID string) (models.VideoMetadata, error) {
	meta := models.VideoMetadata{URL: WatchURL(videoID)}

	q := url.Values{}
	q.Set("url", meta.URL)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return meta, fmt.Errorf("build oembed request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return meta, fmt.Errorf("fetch oembed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return meta, fmt.Errorf("fetch oembed: unexpected status %d", resp.StatusCode)
	}

	var body oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return meta, fmt.Errorf("decode oembed: %w", err)
	}

	meta.Title = body.Title
	meta.Channel = body.AuthorName
	return meta, nil
}
