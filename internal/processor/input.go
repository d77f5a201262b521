package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/transcript"
)

// ReadInput loads metadata and transcript from a drop-folder file. Plain
// text and caption files use the file name as the video title.
func ReadInput(path string) (models.VideoMetadata, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.VideoMetadata{}, "", fmt.Errorf("read input: %w", err)
	}

	stem := fileStem(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var payload models.VideoPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return models.VideoMetadata{}, "", fmt.Errorf("decode payload: %w", err)
		}
		meta := payload.Metadata()
		if meta.Title == "" {
			meta.Title = stem
		}
		return meta, payload.Transcript, nil
	case ".srt", ".vtt":
		return models.VideoMetadata{Title: stem}, transcript.FromCaptions(string(data)), nil
	case ".txt":
		return models.VideoMetadata{Title: stem}, string(data), nil
	default:
		return models.VideoMetadata{}, "", fmt.Errorf("unsupported input %s", filepath.Ext(path))
	}
}

// IsSupported reports whether path has an extension Process accepts.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
