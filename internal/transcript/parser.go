// Package transcript turns raw transcript text and caption files into timed
// segments.
package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

// TimeMarker matches the first m:ss or mm:ss marker on a transcript line.
var TimeMarker = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// Parse splits a line-oriented transcript into timed segments. Lines without
// a time marker, or with no text left after removing it, are dropped.
// Input order is preserved and the function never fails.
func Parse(raw string) []models.Segment {
	segments := []models.Segment{}

	for _, line := range strings.Split(raw, "\n") {
		loc := TimeMarker.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		minutes, _ := strconv.Atoi(line[loc[2]:loc[3]])
		seconds, _ := strconv.Atoi(line[loc[4]:loc[5]])

		text := strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
		if text == "" {
			continue
		}

		segments = append(segments, models.Segment{
			TimeSeconds: minutes*60 + seconds,
			Text:        text,
		})
	}

	return segments
}

// StripMarker removes the first time marker from line and returns the marker
// (empty when none) and the trimmed remainder.
func StripMarker(line string) (marker, text string) {
	loc := TimeMarker.FindStringIndex(line)
	if loc == nil {
		return "", strings.TrimSpace(line)
	}
	return line[loc[0]:loc[1]], strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
}
