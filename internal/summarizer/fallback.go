package summarizer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
	"github.com/nguyentantai21042004/tubedigest/internal/transcript"
)

const (
	minSentenceLen     = 10
	minKeyPointLineLen = 20
	maxKeyPoints       = 8
	maxKeyPointLen     = 100
	maxShortLen        = 200
	maxLongLen         = 500
	maxFallbackStamps  = 5

	defaultShort        = "Summary generated from transcript."
	placeholderFallback = "Video content extracted from transcript"
)

var reSentenceEnd = regexp.MustCompile(`[.!?]+`)

// Fallback builds a summary from the transcript alone. It never calls out
// and is deterministic for a given input.
func Fallback(meta models.VideoMetadata, text string) *models.Summary {
	if strings.TrimSpace(text) == "" {
		return transcriptMissing(meta)
	}

	s := models.NewSummary(meta)
	s.Source = models.SourceFallback
	s.SuggestedTitle = meta.Title

	sentences := splitSentences(text)
	n := len(sentences)

	first := joinSentences(window(sentences, 0, 3))
	middle := joinSentences(window(sentences, n/2, n/2+3))
	last := joinSentences(window(sentences, n-2, n))

	if first == "" {
		s.SummaryShort = defaultShort
		s.SummaryLong = truncate(strings.TrimSpace(text), maxLongLen)
	} else {
		s.SummaryShort = truncate(first, maxShortLen)
		s.SummaryLong = first + "\n\n" + middle + "\n\n" + last
	}

	s.KeyPoints = fallbackKeyPoints(text)
	for i, kp := range s.KeyPoints {
		if i == maxFallbackStamps {
			break
		}
		s.Timestamps = append(s.Timestamps, models.Timestamp{
			Time:  kp.Time,
			Label: "Section " + strconv.Itoa(i+1),
		})
	}
	if len(s.KeyPoints) == 0 {
		s.KeyPoints = []models.KeyPoint{{Time: zeroTime, Point: placeholderFallback}}
	}

	return s
}

func transcriptMissing(meta models.VideoMetadata) *models.Summary {
	s := models.NewSummary(meta)
	s.Source = models.SourceError
	s.Error = models.StringPtr(models.ErrCodeTranscriptMissing)
	s.SuggestedTitle = meta.Title
	return s
}

func splitSentences(text string) []string {
	var out []string
	for _, part := range reSentenceEnd.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > minSentenceLen {
			out = append(out, part)
		}
	}
	return out
}

// window returns s[from:to] clamped to the slice bounds.
func window(s []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return nil
	}
	return s[from:to]
}

func joinSentences(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return strings.Join(s, ". ") + "."
}

// fallbackKeyPoints uses the first long lines of the transcript, keeping
// their time marker when they have one.
func fallbackKeyPoints(text string) []models.KeyPoint {
	points := []models.KeyPoint{}

	taken := 0
	for _, line := range strings.Split(text, "\n") {
		if taken == maxKeyPoints {
			break
		}
		if utf8.RuneCountInString(strings.TrimSpace(line)) <= minKeyPointLineLen {
			continue
		}
		taken++

		marker, rest := transcript.StripMarker(line)
		t := zeroTime
		if marker != "" {
			t = timecode.NormalizeTimeString(marker)
		}

		rest = truncateRunes(rest, maxKeyPointLen)
		if rest == "" {
			continue
		}
		points = append(points, models.KeyPoint{Time: t, Point: rest})
	}

	return points
}

// truncate cuts s to limit runes and appends an ellipsis when it was longer.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return truncateRunes(s, limit) + "..."
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:limit]))
}
