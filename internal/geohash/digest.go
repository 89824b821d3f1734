package geohash

import (
	"crypto/md5" //nolint:gosec // the game's published rules mandate MD5
	"encoding/binary"
	"math"
)

// Fractions are the two independent [0,1) offsets derived from one digest.
// They are computed once per (date, DJIA) pair and reused for latitude and
// longitude.
type Fractions struct {
	Lat float64
	Lon float64
}

// twoPow64 scales a 64-bit integer into [0,1).
const twoPow64 = 1 << 64

// Digest hashes the effective DJIA date and opening value in the canonical
// "YYYY-MM-DD-D.DD" form. The algorithm must stay MD5 bit-for-bit: every
// other implementation of the game hashes the same bytes, and swapping the
// hash would break cross-implementation compatibility.
func Digest(date Date, value Value) [md5.Size]byte {
	return md5.Sum([]byte(date.String() + "-" + value.String())) //nolint:gosec
}

// ExtractFractions splits the 16-byte digest into two 8-byte halves and
// interprets each as 64 fractional bits: the first half drives latitude,
// the second longitude.
func ExtractFractions(sum [md5.Size]byte) Fractions {
	return Fractions{
		Lat: fraction(binary.BigEndian.Uint64(sum[:8])),
		Lon: fraction(binary.BigEndian.Uint64(sum[8:])),
	}
}

// fraction converts a 64-bit fixed-point value into [0,1). Values within
// 2^11 of 2^64 round up to exactly 1.0 in float64, so the result is clamped
// just below 1 to hold the half-open interval invariant.
func fraction(u uint64) float64 {
	f := float64(u) / twoPow64
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	return f
}
