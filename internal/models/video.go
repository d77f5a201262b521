package models

import "strings"

// VideoMetadata describes the video a transcript belongs to.
// Empty Title or Channel means the value was not available.
type VideoMetadata struct {
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
}

// Segment is one timed line of a transcript.
type Segment struct {
	TimeSeconds int    `json:"time_seconds"`
	Text        string `json:"text"`
}

// VideoPayload is the request body sent by the browser extension and
// accepted by the drop folder as a .json file.
type VideoPayload struct {
	VideoTitle      string `json:"video_title"`
	ChannelName     string `json:"channel_name"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds"`
	Transcript      string `json:"transcript"`
}

// Metadata converts the payload header into VideoMetadata.
func (p VideoPayload) Metadata() VideoMetadata {
	d := p.DurationSeconds
	if d < 0 {
		d = 0
	}
	return VideoMetadata{
		Title:   strings.TrimSpace(p.VideoTitle),
		Channel: strings.TrimSpace(p.ChannelName),
		URL:     strings.TrimSpace(p.VideoURL),

		DurationSeconds: d,
	}
}
