// Package report contains financial reporting use cases.
package report

import "time"

// AccountableDate returns the date on which a sale (or registration) dated
// d becomes accountable: the last calendar day of the second month
// following d's month. A sale in February is accountable after the end of
// April — one full month of grace plus the remainder of the origin month.
func AccountableDate(d time.Time) time.Time {
	// Day 0 of month+3 is the last day of month+2; time.Date normalizes.
	return time.Date(d.Year(), d.Month()+3, 0, 0, 0, 0, 0, time.UTC)
}

// IsAccountable reports whether a sale or registration dated d may be
// recognized as of now. The boundary is strict: the accountable date
// itself is still within the grace period.
func IsAccountable(d, now time.Time) bool {
	return dateOnly(now).After(AccountableDate(d))
}

// dateOnly truncates a timestamp to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// wholeMonthsBetween returns the number of whole calendar months elapsed
// from from to to, never negative.
func wholeMonthsBetween(from, to time.Time) int {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
