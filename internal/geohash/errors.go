package geohash

import "errors"

// Sentinel errors for the calculator. Call sites wrap these with eris so
// callers can classify failures with errors.Is while keeping context.
var (
	// ErrInvalidDate means the input is not a real Gregorian calendar day.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidDJIAValue means the Dow value is negative or does not carry
	// exactly two fractional digits.
	ErrInvalidDJIAValue = errors.New("invalid DJIA value")

	// ErrOutOfRange means a coordinate falls outside the latitude/longitude
	// domain.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrUnresolvableDJIA means no DJIA opening value could be resolved for
	// the required effective date.
	ErrUnresolvableDJIA = errors.New("no DJIA value for effective date")
)
