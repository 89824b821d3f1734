package geohash

import (
	"time"

	"github.com/rotisserie/eris"
)

// Side forces or defers the east/west classification used by the 30W rule.
type Side int

const (
	// SideAuto classifies by the graticule's longitude.
	SideAuto Side = iota
	// SideEast forces east-of-30W behavior regardless of longitude.
	SideEast
	// SideWest forces west-of-30W behavior regardless of longitude.
	SideWest
)

// thirtyWEpoch is the first date the 30W rule applies to.
var thirtyWEpoch = Date{Year: 2008, Month: time.May, Day: 27}

// Selector decides which calendar date's DJIA opening value governs a
// target date. Sourcing the value itself is the DJIA provider's job; the
// selector only picks the date.
type Selector struct {
	// BoundaryExclusive excludes the -30° meridian itself from the west
	// side. The default (false) follows the convention that lon == -30
	// counts as west.
	BoundaryExclusive bool

	// Holidays optionally marks non-trading weekdays. Weekends are always
	// skipped; when nil, no weekday is treated as a holiday and holiday
	// gaps surface as missing data at the provider instead.
	Holidays func(Date) bool
}

// Select resolves the effective DJIA date for a graticule hash: the most
// recent trading day at or before target, shifted one trading day earlier
// for graticules west of -30° once the 30W rule is in force (2008-05-27).
func (s Selector) Select(target Date, g Graticule, side Side) (Date, error) {
	if !target.valid() {
		return Date{}, eris.Wrapf(ErrInvalidDate, "geohash: select for %s", target)
	}
	effective := s.tradingDay(target)
	if s.west(g, side) && !target.Before(thirtyWEpoch) {
		effective = s.tradingDay(effective.AddDays(-1))
	}
	return effective, nil
}

// SelectGlobal resolves the effective DJIA date for a globalhash. The 30W
// rule never applies; there is no graticule to classify.
func (s Selector) SelectGlobal(target Date) (Date, error) {
	if !target.valid() {
		return Date{}, eris.Wrapf(ErrInvalidDate, "geohash: select for %s", target)
	}
	return s.tradingDay(target), nil
}

// west classifies the graticule against the -30° meridian, honoring an
// explicit side override first.
func (s Selector) west(g Graticule, side Side) bool {
	switch side {
	case SideEast:
		return false
	case SideWest:
		return true
	}
	if !g.West {
		return false
	}
	if s.BoundaryExclusive {
		return g.Lon > 30
	}
	return g.Lon >= 30
}

// tradingDay returns the most recent trading day at or before d.
func (s Selector) tradingDay(d Date) Date {
	for {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			if s.Holidays == nil || !s.Holidays(d) {
				return d
			}
		}
		d = d.AddDays(-1)
	}
}
