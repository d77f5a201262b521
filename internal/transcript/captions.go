package transcript

import (
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
)

var (
	reCueTiming = regexp.MustCompile(`^((?:\d{1,2}:)?\d{2}:\d{2})[.,]\d{1,3}\s+-->`)
	reCueIndex  = regexp.MustCompile(`^\d+$`)
	reCueTag    = regexp.MustCompile(`<[^>]*>`)
)

// maxMarkerSeconds is 99:59, the largest time a two-digit TimeMarker reads.
const maxMarkerSeconds = 99*60 + 59

// IsCaptionFile reports whether name has an SRT or WebVTT extension.
func IsCaptionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".srt", ".vtt":
		return true
	}
	return false
}

// FromCaptions converts SRT or WebVTT content into a line-oriented
// transcript, one "mm:ss text" line per cue. Rolling auto-captions that
// repeat the previous cue are collapsed.
func FromCaptions(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var (
		out      []string
		start    string
		cueLines []string
		last     string
		inNote   bool
	)

	flush := func() {
		if start == "" {
			cueLines = nil
			return
		}
		text := strings.Join(strings.Fields(strings.Join(cueLines, " ")), " ")
		if text != "" && text != last {
			out = append(out, start+" "+text)
			last = text
		}
		start = ""
		cueLines = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			inNote = false
			continue
		}
		if inNote {
			continue
		}
		if strings.HasPrefix(trimmed, "WEBVTT") || strings.HasPrefix(trimmed, "NOTE") ||
			strings.HasPrefix(trimmed, "STYLE") || strings.HasPrefix(trimmed, "REGION") {
			inNote = true
			continue
		}

		if m := reCueTiming.FindStringSubmatch(trimmed); m != nil {
			flush()
			start = cueMarker(timecode.ParseDuration(m[1]))
			continue
		}
		if start == "" && reCueIndex.MatchString(trimmed) {
			continue
		}
		if start == "" {
			continue
		}

		cueLines = append(cueLines, html.UnescapeString(reCueTag.ReplaceAllString(trimmed, "")))
	}
	flush()

	return strings.Join(out, "\n")
}

// cueMarker formats a cue start for Parse. Cues past 99:59 are clamped so
// the line still parses with its text intact.
func cueMarker(seconds int) string {
	if seconds > maxMarkerSeconds {
		seconds = maxMarkerSeconds
	}
	return timecode.FormatSeconds(seconds)
}
