package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/tubedigest/internal/models"
	"github.com/nguyentantai21042004/tubedigest/internal/timecode"
)

const (
	placeholderKeyPoint  = "Key points from video content"
	placeholderTimestamp = "Introduction"
	zeroTime             = "00:00"
)

// wireSummary mirrors the JSON the model is asked for. Nothing in it is
// assumed present; defaults are applied after decoding.
type wireSummary struct {
	Error                json.RawMessage `json:"error"`
	SummaryShort         string          `json:"summary_short"`
	SummaryLong          string          `json:"summary_long"`
	KeyPoints            []wireKeyPoint  `json:"key_points"`
	Timestamps           []wireTimestamp `json:"timestamps"`
	FAQ                  []models.FAQ    `json:"faq"`
	ActionItems          []string        `json:"action_items"`
	SuggestedTitle       string          `json:"suggested_title"`
	SuggestedTags        []string        `json:"suggested_tags"`
	SuggestedDescription string          `json:"suggested_description"`
}

type wireKeyPoint struct {
	Time  flexTime `json:"time"`
	Point string   `json:"point"`
}

type wireTimestamp struct {
	Time  flexTime `json:"time"`
	Label string   `json:"label"`
}

// flexTime accepts "m:ss" strings as well as plain second counts.
type flexTime string

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = flexTime(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = flexTime(timecode.FormatSeconds(int(n)))
		return nil
	}

	if string(data) == "null" {
		*t = ""
		return nil
	}
	return fmt.Errorf("time must be a string or a number, got %s", data)
}

// Interpret turns raw model output into a Summary. It returns
// ErrEmptyResponse or ErrMalformedResponse when the text cannot be used;
// callers fall back in both cases.
func Interpret(raw string, meta models.VideoMetadata) (summary *models.Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			summary = nil
			err = fmt.Errorf("%w: %v", ErrMalformedResponse, r)
		}
	}()

	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyResponse
	}

	var w wireSummary
	if err := json.Unmarshal([]byte(extractJSON(raw)), &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if strings.TrimSpace(w.SummaryShort) == "" {
		return nil, fmt.Errorf("%w: summary_short is empty", ErrMalformedResponse)
	}

	return w.toSummary(meta), nil
}

// InterpretOrFallback is Interpret with every failure replaced by the
// fallback summary of transcript.
func InterpretOrFallback(raw string, meta models.VideoMetadata, transcript string) *models.Summary {
	s, err := Interpret(raw, meta)
	if err != nil {
		return Fallback(meta, transcript)
	}
	return s
}

// extractJSON strips code fences and returns the span from the first '{' to
// the last '}', or the whole trimmed text when there is no such span.
func extractJSON(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func (w *wireSummary) toSummary(meta models.VideoMetadata) *models.Summary {
	s := models.NewSummary(meta)
	s.Source = models.SourceAI
	s.Error = decodeErrorCode(w.Error)

	s.SummaryShort = strings.TrimSpace(w.SummaryShort)
	s.SummaryLong = strings.TrimSpace(w.SummaryLong)
	if s.SummaryLong == "" {
		s.SummaryLong = s.SummaryShort
	}

	for _, kp := range w.KeyPoints {
		s.KeyPoints = append(s.KeyPoints, models.KeyPoint{
			Time:  normalizeTime(string(kp.Time)),
			Point: strings.TrimSpace(kp.Point),
		})
	}
	if len(s.KeyPoints) == 0 {
		s.KeyPoints = []models.KeyPoint{{Time: zeroTime, Point: placeholderKeyPoint}}
	}

	for _, ts := range w.Timestamps {
		s.Timestamps = append(s.Timestamps, models.Timestamp{
			Time:  normalizeTime(string(ts.Time)),
			Label: strings.TrimSpace(ts.Label),
		})
	}
	if len(s.Timestamps) == 0 {
		s.Timestamps = []models.Timestamp{{Time: zeroTime, Label: placeholderTimestamp}}
	}

	s.FAQ = append(s.FAQ, w.FAQ...)
	s.ActionItems = append(s.ActionItems, w.ActionItems...)
	s.SuggestedTags = append(s.SuggestedTags, w.SuggestedTags...)
	s.SuggestedTitle = strings.TrimSpace(w.SuggestedTitle)
	s.SuggestedDescription = strings.TrimSpace(w.SuggestedDescription)

	return s
}

// normalizeTime treats a missing time as the start of the video.
func normalizeTime(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return zeroTime
	}
	return timecode.NormalizeTimeString(raw)
}

// decodeErrorCode keeps a non-empty string error and drops anything else.
func decodeErrorCode(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		return nil
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	return &code
}
