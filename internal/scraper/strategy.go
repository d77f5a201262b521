// Package scraper reads video metadata and transcripts out of watch-page
// HTML and the oEmbed endpoint.
package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one way of pulling a value out of a page. Strategies for a
// field are tried in order and the first non-empty result wins.
type Strategy struct {
	Selector string
	Extract  func(*goquery.Selection) string
}

// textOf returns the collapsed text content of the selection.
func textOf(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// attrOf returns an extractor reading attribute name.
func attrOf(name string) func(*goquery.Selection) string {
	return func(s *goquery.Selection) string {
		v, _ := s.Attr(name)
		return strings.TrimSpace(v)
	}
}

// FirstMatch runs strategies in order against doc.
func FirstMatch(doc *goquery.Document, strategies []Strategy) string {
	for _, st := range strategies {
		var found string
		doc.Find(st.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			found = st.Extract(sel)
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}

var titleStrategies = []Strategy{
	{Selector: "h1.ytd-watch-metadata yt-formatted-string", Extract: textOf},
	{Selector: "h1.title yt-formatted-string", Extract: textOf},
	{Selector: `h1[class*="title"]`, Extract: textOf},
	{Selector: `meta[property="og:title"]`, Extract: attrOf("content")},
	{Selector: `meta[name="title"]`, Extract: attrOf("content")},
	{Selector: "title", Extract: func(s *goquery.Selection) string {
		return strings.TrimSpace(strings.TrimSuffix(textOf(s), " - YouTube"))
	}},
}

var channelStrategies = []Strategy{
	{Selector: "#channel-name a", Extract: textOf},
	{Selector: "ytd-channel-name a", Extract: textOf},
	{Selector: "#owner-sub-count a", Extract: textOf},
	{Selector: `span[itemprop="author"] link[itemprop="name"]`, Extract: attrOf("content")},
}

var durationStrategies = []Strategy{
	{Selector: ".ytp-time-duration", Extract: textOf},
	{Selector: `meta[itemprop="duration"]`, Extract: attrOf("content")},
}

var segmentSelectors = []string{
	"ytd-transcript-segment-renderer",
	"ytd-transcript-body-renderer ytd-transcript-segment-renderer",
	".segment-text",
	`[class*="segment"]`,
}

var segmentTimeStrategies = []Strategy{
	{Selector: ".segment-timestamp", Extract: textOf},
	{Selector: `[class*="timestamp"]`, Extract: textOf},
}

var segmentTextStrategies = []Strategy{
	{Selector: ".segment-text", Extract: textOf},
	{Selector: `[class*="text"]`, Extract: textOf},
}

var transcriptPanelSelectors = []string{
	"ytd-transcript-renderer",
	"ytd-transcript-body-renderer",
	"#transcript",
}
