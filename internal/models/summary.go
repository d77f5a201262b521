package models

// Error codes carried in Summary.Error.
const (
	ErrCodeTranscriptMissing = "TRANSCRIPT_MISSING"
	ErrCodeAPIPrefix         = "API_ERROR: "
)

// Source tells which path of the pipeline produced a Summary.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
	SourceError    Source = "error"
)

// KeyPoint is a single highlighted moment in the video.
type KeyPoint struct {
	Time  string `json:"time"`
	Point string `json:"point"`
}

// Timestamp is a chapter marker.
type Timestamp struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

// FAQ is a question the video answers.
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Summary is the canonical output record. Its JSON form matches the shape
// requested from the language model, so it can be shown or exported as-is.
type Summary struct {
	Error                *string       `json:"error"`
	Meta                 VideoMetadata `json:"meta"`
	SummaryShort         string        `json:"summary_short"`
	SummaryLong          string        `json:"summary_long"`
	KeyPoints            []KeyPoint    `json:"key_points"`
	Timestamps           []Timestamp   `json:"timestamps"`
	FAQ                  []FAQ         `json:"faq"`
	ActionItems          []string      `json:"action_items"`
	SuggestedTitle       string        `json:"suggested_title"`
	SuggestedTags        []string      `json:"suggested_tags"`
	SuggestedDescription string        `json:"suggested_description"`

	Source Source `json:"-"`
}

// NewSummary returns a Summary with every list initialised so it never
// serialises a null array.
func NewSummary(meta VideoMetadata) *Summary {
	return &Summary{
		Meta:          meta,
		KeyPoints:     []KeyPoint{},
		Timestamps:    []Timestamp{},
		FAQ:           []FAQ{},
		ActionItems:   []string{},
		SuggestedTags: []string{},
	}
}

// ErrorCode returns the error code or "" when the summary is successful.
func (s *Summary) ErrorCode() string {
	if s == nil || s.Error == nil {
		return ""
	}
	return *s.Error
}

// HasError reports whether the summary carries an error code.
func (s *Summary) HasError() bool {
	return s.ErrorCode() != ""
}

// StringPtr is a small helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}
