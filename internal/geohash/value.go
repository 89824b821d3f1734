package geohash

import (
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// Value is a Dow Jones opening value: a non-negative decimal with exactly
// two fractional digits, as published by the DJIA sources. The value is
// immutable once parsed.
type Value struct {
	dec decimal.Decimal
}

// ParseValue parses an opening value like "10458.68". Negative values and
// values without exactly two fractional digits are rejected, since a
// differently formatted value would hash to a different geohash.
func ParseValue(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, eris.Wrapf(ErrInvalidDJIAValue, "geohash: parse %q", s)
	}
	if d.IsNegative() {
		return Value{}, eris.Wrapf(ErrInvalidDJIAValue, "geohash: negative value %q", s)
	}
	if d.Exponent() != -2 {
		return Value{}, eris.Wrapf(ErrInvalidDJIAValue, "geohash: %q must have exactly two fractional digits", s)
	}
	return Value{dec: d}, nil
}

// String renders the canonical two-decimal form used as the second half of
// the digest input.
func (v Value) String() string {
	return v.dec.StringFixed(2)
}
