// Package period resolves symbolic reporting windows into concrete dates.
package period

import (
	"math"
	"time"
)

// Tokens understood by Resolve.
const (
	CurrentMonth = "current_month"
	LastMonth    = "last_month"
	Last3Months  = "last_3_months"
)

// Range is a resolved reporting window. To carries the database query bound
// (end of the current day) while ToDate is the externally reported bound,
// a bare calendar date.
type Range struct {
	From   time.Time
	To     time.Time
	ToDate string
	Days   int
}

// Resolve maps a period token to a concrete date range relative to now.
// An unrecognized token resolves like current_month; the second return
// value reports whether the token was recognized so callers can warn.
func Resolve(token string, now time.Time) (Range, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var from time.Time
	var days int
	known := true

	switch token {
	case CurrentMonth:
		from = firstOfMonth(now, 0)
		days = elapsedDays(from, today)
	case LastMonth:
		from = firstOfMonth(now, -1)
		// The full length of the previous month, regardless of today's date.
		days = time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location()).Day()
	case Last3Months:
		from = firstOfMonth(now, -3)
		days = elapsedDays(from, today)
	default:
		known = false
		from = firstOfMonth(now, 0)
		days = elapsedDays(from, today)
	}

	return Range{
		From:   from,
		To:     time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 999000000, now.Location()),
		ToDate: today.Format("2006-01-02"),
		Days:   days,
	}, known
}

func firstOfMonth(now time.Time, monthOffset int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(monthOffset), 1, 0, 0, 0, 0, now.Location())
}

func elapsedDays(from, today time.Time) int {
	return int(math.Ceil(today.Sub(from).Hours() / 24))
}
