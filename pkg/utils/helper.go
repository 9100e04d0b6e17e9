package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value. Non-numeric or
// non-positive input falls back to the default rather than failing.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, returning ok=false when the value
// is empty or not a number.
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}

// ParseYear converts string to a release year, returning ok=false when the
// value is empty or not a number.
func ParseYear(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return result, true
}

// TrimmedOrEmpty trims surrounding whitespace and reports whether anything
// is left.
func TrimmedOrEmpty(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	return trimmed, trimmed != ""
}
