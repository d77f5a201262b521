package export

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
)

// Markdown renders s as a readable study sheet.
func Markdown(s *models.Summary) string {
	var b strings.Builder

	title := s.Meta.Title
	if title == "" {
		title = "Untitled video"
	}
	b.WriteString(fmt.Sprintf("# %s\n\n", title))

	if s.Meta.Channel != "" {
		b.WriteString(fmt.Sprintf("**Channel:** %s\n", s.Meta.Channel))
	}
	if s.Meta.DurationSeconds > 0 {
		b.WriteString(fmt.Sprintf("**Duration:** %s\n", timecode.FormatDuration(s.Meta.DurationSeconds)))
	}
	if s.Meta.URL != "" {
		b.WriteString(fmt.Sprintf("**URL:** %s\n", s.Meta.URL))
	}
	if code := s.ErrorCode(); code != "" {
		b.WriteString(fmt.Sprintf("**Error:** %s\n", code))
	}
	b.WriteString("\n---\n\n")

	if s.SummaryShort != "" {
		b.WriteString("## Overview\n\n")
		b.WriteString(s.SummaryShort + "\n\n")
	}
	if s.SummaryLong != "" && s.SummaryLong != s.SummaryShort {
		b.WriteString("## Summary\n\n")
		b.WriteString(s.SummaryLong + "\n\n")
	}

	if len(s.KeyPoints) > 0 {
		b.WriteString("## Key Points\n\n")
		for _, kp := range s.KeyPoints {
			b.WriteString(fmt.Sprintf("- **%s** %s\n", kp.Time, kp.Point))
		}
		b.WriteString("\n")
	}

	if len(s.Timestamps) > 0 {
		b.WriteString("## Timestamps\n\n")
		for _, ts := range s.Timestamps {
			b.WriteString(fmt.Sprintf("- **%s** %s\n", ts.Time, ts.Label))
		}
		b.WriteString("\n")
	}

	if len(s.FAQ) > 0 {
		b.WriteString("## FAQ\n\n")
		for _, f := range s.FAQ {
			b.WriteString(fmt.Sprintf("**Q:** %s\n\n", f.Question))
			b.WriteString(fmt.Sprintf("**A:** %s\n\n", f.Answer))
		}
	}

	if len(s.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		for i, item := range s.ActionItems {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
		b.WriteString("\n")
	}

	if s.SuggestedTitle != "" || s.SuggestedDescription != "" || len(s.SuggestedTags) > 0 {
		b.WriteString("## Suggestions\n\n")
		if s.SuggestedTitle != "" {
			b.WriteString(fmt.Sprintf("**Title:** %s\n\n", s.SuggestedTitle))
		}
		if s.SuggestedDescription != "" {
			b.WriteString(fmt.Sprintf("**Description:** %s\n\n", s.SuggestedDescription))
		}
		if len(s.SuggestedTags) > 0 {
			b.WriteString(fmt.Sprintf("**Tags:** %s\n", strings.Join(s.SuggestedTags, ", ")))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
