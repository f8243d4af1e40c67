package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// LeadingInt extracts the integer prefix of a string, truncating at the first
// character that is not a digit. Scheduler logs occasionally append garbage to
// numeric columns ("12000*" or "500," etc.), so a plain Atoi is too strict.
// Returns false when the string has no digit prefix at all.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// LeadingFloat extracts the leading decimal number of a string, truncating at
// the first character that is neither a digit nor a single decimal point.
// Returns false when no numeric prefix exists.
func LeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 || (end == 1 && seenDot) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseWalltime converts a scheduler walltime string into seconds.
// Supported formats:
//   - HH:MM:SS ("12:00:00")
//   - MM:SS ("30:00")
//   - plain seconds ("3600")
//
// Malformed strings parse to 0 rather than erroring: a missing or garbled
// walltime field downgrades the report, it must never abort it.
func ParseWalltime(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if !strings.Contains(s, ":") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		return n
	}

	parts := strings.Split(s, ":")
	var fields []int64
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		fields = append(fields, n)
	}

	switch len(fields) {
	case 2: // MM:SS
		return fields[0]*60 + fields[1]
	case 3: // HH:MM:SS
		return fields[0]*3600 + fields[1]*60 + fields[2]
	default:
		return 0
	}
}

// FormatWalltime renders seconds as HH:MM:SS.
func FormatWalltime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHours renders a duration in seconds as fractional hours ("1.50h").
func FormatHours(seconds float64) string {
	return fmt.Sprintf("%.2fh", seconds/3600.0)
}
