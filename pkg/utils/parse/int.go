// ABOUTME: Utility functions for parsing numbers from strings
// ABOUTME: Provides safe parsing with fallback values

package parse

import (
	"strconv"
	"strings"
)

// IntOr parses an integer from s, returning fallback if parsing fails
func IntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

// FloatOr parses a float from s, returning fallback if parsing fails
func FloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}
