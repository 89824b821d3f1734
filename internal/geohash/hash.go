package geohash

import (
	"math"

	"github.com/rotisserie/eris"
)

// Result is a computed geohash coordinate. Negative means south/west.
type Result struct {
	Lat float64
	Lon float64
}

// Hash combines a graticule with the digest fractions. The offset stays
// inside the cell and on the cell's hemisphere, so the zero graticules keep
// their sign.
func Hash(g Graticule, fr Fractions) Result {
	return Result{
		Lat: applySign(float64(g.Lat)+fr.Lat, g.South),
		Lon: applySign(float64(g.Lon)+fr.Lon, g.West),
	}
}

// HashGlobal maps the fractions onto the whole globe: latitude spans
// [-90,90), longitude [-180,180). There is no graticule input and no 30W
// adjustment.
func HashGlobal(fr Fractions) Result {
	return Result{
		Lat: fr.Lat*180 - 90,
		Lon: fr.Lon*360 - 180,
	}
}

// HashCenticule anchors the hash inside the 0.01°×0.01° cell containing
// the given location: the base is the location truncated toward zero at
// two decimals and the fractional offset is scaled by 0.01. The hemisphere
// comes from the float sign bit, so a signed-zero input keeps -0.00x
// locations south/west.
//
// The north and east bounds are exclusive: a base of exactly 90 (or 180)
// would name a cell extending past the pole or the antimeridian. -90 and
// -180 are admitted, matching the southernmost/westernmost graticule rows.
func HashCenticule(lat, lon float64, fr Fractions) (Result, error) {
	if lat >= 90 || lat < -90 || lon >= 180 || lon < -180 {
		return Result{}, eris.Wrapf(ErrOutOfRange, "geohash: centicule base (%v, %v)", lat, lon)
	}
	return Result{
		Lat: centi(lat, fr.Lat),
		Lon: centi(lon, fr.Lon),
	}, nil
}

func centi(base, frac float64) float64 {
	// The nudge keeps bases like 0.29 (whose *100 lands one ulp below the
	// integer) in their own cell instead of the one south/west of it.
	cell := math.Trunc(math.Abs(base)*100+1e-9) / 100
	return applySign(cell+frac/100, math.Signbit(base))
}

func applySign(v float64, negative bool) float64 {
	if negative {
		return -v
	}
	return v
}
