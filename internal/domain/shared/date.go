package shared

import "time"

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// Date truncates t to a calendar date (UTC midnight). All date-scoped
// rules in this system (expiry, manufacture, sale day) compare at day
// granularity, so every date entering the domain goes through here.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return Date(time.Now().UTC())
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
