package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MonthLayout defines the month format used for monthly sitemap files (YYYY-MM).
const MonthLayout = "2006-01"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonth formats a time as YYYY-MM in its current location.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// DatePart extracts the YYYY-MM-DD prefix from an ISO-8601 timestamp.
// Plain dates pass through unchanged; anything shorter is returned as is.
func DatePart(iso string) string {
	if len(iso) >= len(DateLayout) {
		return iso[:len(DateLayout)]
	}
	return iso
}
