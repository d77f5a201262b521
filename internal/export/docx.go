package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	fontColor = "000000"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
)

// WriteDOCX saves s as a styled Word document at path.
func WriteDOCX(s *models.Summary, path string) error {
	title := s.Meta.Title
	if title == "" {
		title = "Untitled video"
	}

	// The markdown title line becomes the document title run.
	body := Markdown(s)
	if i := strings.Index(body, "\n"); i >= 0 && strings.HasPrefix(body, "# ") {
		body = body[i+1:]
	}

	return markdownToDocx(title, body, path)
}

// WriteTranscriptDOCX saves timed transcript segments as a document with
// one paragraph per segment.
func WriteTranscriptDOCX(title string, segments []models.Segment, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, seg := range segments {
		p := doc.AddParagraph("")
		p.AddText(timecode.FormatSeconds(seg.TimeSeconds)+"  ").Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
		p.AddText(seg.Text).Font(fontName).Size(fontSize).Color(fontColor)
	}

	return doc.SaveTo(path)
}

// markdownToDocx converts the small markdown subset produced by Markdown
// into docx paragraphs.
func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if m := reNumbered.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			p.AddText(m[1]+". ").Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
			addRichText(p, m[2])
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}

// addRichText writes text as alternating plain and bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color(fontColor)
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
