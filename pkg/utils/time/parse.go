// ABOUTME: Time parsing utilities for article timestamps
// ABOUTME: Accepts the ISO-8601 variants news APIs emit for publishedAt

package time

import (
	"strings"
	"time"
)

// Formats carrying their own zone, most common first. A bare date is read
// as UTC midnight.
var zonedFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Date-time formats without a zone; they are wall-clock times in the
// caller's location.
var localFormats = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseFlexibleTime attempts to parse a time string using various formats,
// reading zone-less date-times as UTC. It returns the zero time when nothing
// matches.
func ParseFlexibleTime(timeStr string) time.Time {
	return ParseInLocation(timeStr, time.UTC)
}

// ParseInLocation is ParseFlexibleTime with zone-less date-times read as
// wall-clock time in loc. A nil loc means time.Local.
func ParseInLocation(timeStr string, loc *time.Location) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}

	for _, format := range zonedFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}
	for _, format := range localFormats {
		if t, err := time.ParseInLocation(format, timeStr, loc); err == nil {
			return t
		}
	}

	return time.Time{}
}
