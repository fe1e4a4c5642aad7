package helpers

import "time"

// DateLayout is the accepted achievement date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// dateLayouts also tolerates single-digit month and day, e.g. 2024-3-5
var dateLayouts = []string{DateLayout, "2006-1-2"}

// ParseDate parses a calendar date in YYYY-MM-DD form. Out-of-range
// components such as month 13 are rejected.
func ParseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// DateOnly truncates t to midnight in t's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TrailingWindow returns the inclusive [from, to] calendar-day range covering
// the given number of days before now's date, up to now's date.
func TrailingWindow(now time.Time, days int) (from, to time.Time) {
	to = DateOnly(now)
	from = to.AddDate(0, 0, -days)
	return from, to
}
