// Package season classifies travel dates into high and low demand
// periods. The rules are Brazil-oriented travel seasonality and are
// deliberately fixed business constants: late December through
// Carnival, plus the July school holidays.
package season

import "time"

// IsHighSeason reports whether the calendar date falls in a
// high-demand period. It is a pure function of month and day; the time
// and zone components of t are ignored.
func IsHighSeason(t time.Time) bool {
	month := t.Month()
	day := t.Day()

	switch month {
	case time.December:
		return day >= 15
	case time.January:
		return true
	case time.February:
		// Approximation of the moving Carnival holiday
		return day <= 20
	case time.July:
		return true
	}
	return false
}
