package summarizer

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

// summaryPrompt is the contract with the model. The interpreter relies on the
// field names and shapes requested here.
const summaryPrompt = `You are an expert educational content summarizer. Help a learner understand this video as quickly as possible without losing context or clarity.

VIDEO INFORMATION:
- Title: %s
- Channel: %s
- Duration: %d seconds

TRANSCRIPT:
%s

Write an educational summary that:
1. Covers every important concept and idea in the video
2. Explains difficult topics in plain language
3. Keeps the logical order of the original content
4. Lets a learner follow the video without watching it
5. Is organised so it is easy to study and remember

Answer with this EXACT JSON structure (return ONLY valid JSON, no markdown, no code blocks):

{
  "error": null,
  "meta": {
    "title": %s,
    "channel": %s,
    "url": %s,
    "duration_seconds": %d
  },
  "summary_short": "A 2-3 sentence overview of the whole video",
  "summary_long": "A thorough summary of 3-5 paragraphs covering all major concepts, examples and takeaways, and how they connect",
  "key_points": [
    {"time": "mm:ss", "point": "An important concept or idea, explained with context"}
  ],
  "timestamps": [
    {"time": "mm:ss", "label": "Name of the section or chapter"}
  ],
  "faq": [
    {"q": "A question a learner is likely to ask", "a": "A clear answer"}
  ],
  "action_items": [
    "A practical step or idea to remember and apply"
  ],
  "suggested_title": "Improved title suggestion",
  "suggested_tags": ["tag1", "tag2", "tag3"],
  "suggested_description": "Search-friendly description"
}

CRITICAL REQUIREMENTS:
- summary_long MUST cover all major topics in 3-5 paragraphs
- Each key point must be detailed enough to understand the concept on its own
- Generate 8-15 key points
- Generate 5-8 timestamps for the major sections
- Generate 5-8 FAQ items
- Generate 3-6 action items
- Use mm:ss format for every time value
- Return ONLY the JSON object, with no extra text and no markdown formatting`

const unknownValue = "Unknown"

// BuildPrompt embeds the metadata and the full transcript into the
// instruction template.
func BuildPrompt(meta models.VideoMetadata, transcript string) string {
	return fmt.Sprintf(summaryPrompt,
		orUnknown(meta.Title),
		orUnknown(meta.Channel),
		meta.DurationSeconds,
		transcript,
		jsonString(meta.Title),
		jsonString(meta.Channel),
		jsonString(meta.URL),
		meta.DurationSeconds,
	)
}

func orUnknown(s string) string {
	if s == "" {
		return unknownValue
	}
	return s
}

func jsonString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
