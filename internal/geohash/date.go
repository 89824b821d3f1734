package geohash

import (
	"time"

	"github.com/rotisserie/eris"
)

// dateLayout is the zero-padded ISO form used for parsing and as the date
// half of the digest input.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. Dates are compared and
// offset in whole-day increments.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates that the components form a real Gregorian date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.valid() {
		return Date{}, eris.Wrapf(ErrInvalidDate, "geohash: %04d-%02d-%02d", year, int(month), day)
	}
	return d, nil
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, eris.Wrapf(ErrInvalidDate, "geohash: parse %q", s)
	}
	return DateOf(t), nil
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// valid reports whether the components survive a time.Date round-trip.
func (d Date) valid() bool {
	t := d.time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// AddDays returns the date offset by n whole days (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

// String renders the zero-padded ISO form, e.g. "2005-05-26".
func (d Date) String() string {
	return d.time().Format(dateLayout)
}
