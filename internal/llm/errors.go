package llm

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyResponse is returned when the provider answered without text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// IsRateLimited reports whether err looks like a provider quota rejection.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "rate_limit")
}
