package scraper

import (
	"errors"
	"regexp"
)

// ErrNoVideoID is returned when a URL does not point at a video.
var ErrNoVideoID = errors.New("no video id in url")

var reVideoID = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|shorts/|embed/|live/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
var reBareID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID returns the 11 character video id from a watch, short,
// embed or youtu.be URL. A bare id is returned as is.
func ExtractVideoID(url string) (string, error) {
	if reBareID.MatchString(url) {
		return url, nil
	}
	m := reVideoID.FindStringSubmatch(url)
	if m == nil {
		return "", ErrNoVideoID
	}
	return m[1], nil
}

// WatchURL returns the canonical watch URL for id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
