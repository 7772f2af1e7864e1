package time_parser

import (
	"fmt"
	"time"
)

const DateFormat = "2006-01-02"

// ParseDate converts a date query parameter to a UTC time.
// Accepted formats, in order of preference:
//   - "2006-01-02" (the documented format for start_date/end_date)
//   - RFC3339 timestamps, for clients that send full instants
//
// There is no current-time fallback: a date filter that fails to parse
// must be rejected, not silently widened.
func ParseDate(value string) (time.Time, error) {
	formats := []string{
		DateFormat,
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// FormatDate renders a time as the wire date format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}
