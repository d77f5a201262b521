package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
)

const (
	minSegmentText    = 3
	minTranscriptText = 50
)

var reISODuration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// Page is a parsed watch page.
type Page struct {
	doc *goquery.Document
	url string
}

// ParsePage reads watch-page HTML. pageURL is echoed into the metadata.
func ParsePage(r io.Reader, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Page{doc: doc, url: pageURL}, nil
}

// Metadata returns what the page says about the video.
func (p *Page) Metadata() models.VideoMetadata {
	return models.VideoMetadata{
		Title:           FirstMatch(p.doc, titleStrategies),
		Channel:         FirstMatch(p.doc, channelStrategies),
		URL:             p.url,
		DurationSeconds: parseAnyDuration(FirstMatch(p.doc, durationStrategies)),
	}
}

// Transcript returns the transcript panel as "m:ss text" lines, or "" when
// the page carries no usable transcript.
func (p *Page) Transcript() string {
	for _, selector := range segmentSelectors {
		segments := p.doc.Find(selector)
		if segments.Length() == 0 {
			continue
		}

		var lines []string
		segments.Each(func(_ int, seg *goquery.Selection) {
			if line := segmentLine(seg); line != "" {
				lines = append(lines, line)
			}
		})

		text := strings.Join(lines, "\n")
		if len(strings.TrimSpace(text)) > minTranscriptText {
			return text
		}
	}

	for _, selector := range transcriptPanelSelectors {
		panel := p.doc.Find(selector).First()
		if panel.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(panel.Text()); len(text) > minTranscriptText {
			return text
		}
	}

	return ""
}

func segmentLine(seg *goquery.Selection) string {
	timeText := firstWithin(seg, segmentTimeStrategies)
	text := firstWithin(seg, segmentTextStrategies)
	if text == "" {
		text = textOf(seg)
	}

	if timeText != "" && strings.Contains(text, timeText) {
		text = strings.TrimSpace(strings.Replace(text, timeText, "", 1))
	}
	text = strings.Join(strings.Fields(text), " ")

	if len(text) <= minSegmentText {
		return ""
	}
	if timeText == "" {
		return text
	}
	return timeText + " " + text
}

func firstWithin(sel *goquery.Selection, strategies []Strategy) string {
	for _, st := range strategies {
		if v := st.Extract(sel.Find(st.Selector).First()); v != "" {
			return v
		}
	}
	return ""
}

// parseAnyDuration accepts clock strings and ISO 8601 "PT#H#M#S" values.
func parseAnyDuration(raw string) int {
	raw = strings.TrimSpace(raw)
	if m := reISODuration.FindStringSubmatch(raw); m != nil && raw != "PT" {
		total := 0
		for i, unit := range []int{3600, 60, 1} {
			if m[i+1] != "" {
				n, _ := strconv.Atoi(m[i+1])
				total += n * unit
			}
		}
		return total
	}
	return timecode.ParseDuration(raw)
}
