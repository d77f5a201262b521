// Package timecode converts between seconds and the mm:ss strings used in
// transcripts and summary records.
package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reNormalized = regexp.MustCompile(`^\d{2}:\d{2}$`)
	reDigits     = regexp.MustCompile(`^\d+$`)
)

// FormatSeconds renders total seconds as mm:ss. Minutes are not wrapped into
// hours, so 6000 becomes "100:00". Negative input is treated as zero.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// NormalizeTimeString pads m:ss style values to mm:ss. An h:mm:ss value has
// its hours folded into the minutes field. Anything else is returned trimmed
// but otherwise untouched.
func NormalizeTimeString(raw string) string {
	s := strings.TrimSpace(raw)
	if reNormalized.MatchString(s) {
		return s
	}

	parts := strings.Split(s, ":")
	for _, p := range parts {
		if !reDigits.MatchString(p) {
			return s
		}
	}

	switch len(parts) {
	case 2:
		return pad(parts[0]) + ":" + pad(parts[1])
	case 3:
		h, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		return fmt.Sprintf("%02d:%s", h*60+m, pad(parts[2]))
	default:
		return s
	}
}

// ParseDuration accepts h:mm:ss, mm:ss or a bare number of seconds and
// returns the total seconds. Unrecognised shapes yield 0.
func ParseDuration(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0
	}

	total := 0
	for _, p := range parts {
		if !reDigits.MatchString(p) {
			return 0
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// FormatDuration renders seconds for humans, e.g. "1h 02m 03s" or "4m 05s".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

func pad(s string) string {
	if len(s) >= 2 {
		return s
	}
	return "0" + s
}
