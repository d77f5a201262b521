// Package export renders a Summary as JSON, Markdown or DOCX.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
)

// Supported formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatDOCX     = "docx"
)

var extensions = map[string]string{
	FormatJSON:     ".summary.json",
	FormatMarkdown: ".summary.md",
	FormatDOCX:     ".summary.docx",
}

// Normalize fills nil lists with empty ones and pads every time to mm:ss,
// for summaries that did not come out of the pipeline.
func Normalize(s *models.Summary) {
	if s.KeyPoints == nil {
		s.KeyPoints = []models.KeyPoint{}
	}
	if s.Timestamps == nil {
		s.Timestamps = []models.Timestamp{}
	}
	if s.FAQ == nil {
		s.FAQ = []models.FAQ{}
	}
	if s.ActionItems == nil {
		s.ActionItems = []string{}
	}
	if s.SuggestedTags == nil {
		s.SuggestedTags = []string{}
	}

	for i := range s.KeyPoints {
		s.KeyPoints[i].Time = timecode.NormalizeTimeString(s.KeyPoints[i].Time)
	}
	for i := range s.Timestamps {
		s.Timestamps[i].Time = timecode.NormalizeTimeString(s.Timestamps[i].Time)
	}
}

// JSON returns the indented canonical JSON form of s.
func JSON(s *models.Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return append(data, '\n'), nil
}

// Render returns s in a text format. DOCX is binary and goes through
// WriteDOCX instead.
func Render(s *models.Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return JSON(s)
	case FormatMarkdown, "md":
		return []byte(Markdown(s)), nil
	default:
		return nil, fmt.Errorf("format %q cannot be rendered as text", format)
	}
}

// WriteFiles writes s into dir once per format, named after stem, and
// returns the written paths.
func WriteFiles(s *models.Summary, dir, stem string, formats []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, format := range formats {
		ext, ok := extensions[format]
		if !ok {
			return written, fmt.Errorf("unsupported export format %q", format)
		}
		path := filepath.Join(dir, stem+ext)

		if err := WriteFile(s, path, format); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteFile writes s to path in the given format.
func WriteFile(s *models.Summary, path, format string) error {
	if format == FormatDOCX {
		if err := WriteDOCX(s, path); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		return nil
	}

	data, err := Render(s, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}
