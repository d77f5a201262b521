package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(sampleMeta, "0:01 the transcript body")

	for _, want := range []string{
		"- Title: Test Video",
		"- Channel: Test Channel",
		"- Duration: 60 seconds",
		"0:01 the transcript body",
		`"url": "https://www.youtube.com/watch?v=abc123"`,
		`"duration_seconds": 60`,
		"8-15 key points",
		"5-8 timestamps",
		"5-8 FAQ items",
		"3-6 action items",
		"mm:ss",
	} {
		assert.Contains(t, p, want)
	}

	for _, field := range []string{
		"error", "meta", "summary_short", "summary_long", "key_points", "timestamps",
		"faq", "action_items", "suggested_title", "suggested_tags", "suggested_description",
	} {
		assert.Contains(t, p, `"`+field+`"`)
	}
}

func TestBuildPromptUnknownMetadata(t *testing.T) {
	p := BuildPrompt(models.VideoMetadata{}, "text")

	assert.Contains(t, p, "- Title: Unknown")
	assert.Contains(t, p, "- Channel: Unknown")
	assert.Contains(t, p, `"title": ""`)
}

func TestBuildPromptEscapesMetadata(t *testing.T) {
	p := BuildPrompt(models.VideoMetadata{Title: `Say "hi"`}, "text")

	assert.Contains(t, p, `"title": "Say \"hi\""`)
	assert.False(t, strings.Contains(p, `"title": "Say "hi""`))
}
