package domain

import "time"

// TimestampLayout renders UTC timestamps as ISO-8601 with millisecond precision,
// e.g. 2024-01-01T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
