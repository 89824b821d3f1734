package geohash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fractionsFor(t *testing.T, date string, value string) Fractions {
	t.Helper()
	d, err := ParseDate(date)
	require.NoError(t, err)
	return ExtractFractions(Digest(d, mustValue(t, value)))
}

func TestHash_FoundingExample(t *testing.T) {
	t.Parallel()

	// The canonical published regression vector from xkcd #426.
	fr := fractionsFor(t, "2005-05-26", "10458.68")
	res := Hash(mustGraticule(t, 37, -122), fr)
	assert.InDelta(t, 37.857713, res.Lat, 1e-6)
	assert.InDelta(t, -122.544543, res.Lon, 1e-6)
}

func TestHash_ThirtyWVectors(t *testing.T) {
	t.Parallel()

	// Published 30W test vectors for 2008-05-27: the west side hashes the
	// prior trading day's opening, the east side its own.
	west := Hash(mustGraticule(t, 68, -30), fractionsFor(t, "2008-05-26", "12620.90"))
	assert.InDelta(t, 68.67313, west.Lat, 1e-5)
	assert.InDelta(t, -30.60731, west.Lon, 1e-5)

	east := Hash(mustGraticule(t, 68, -29), fractionsFor(t, "2008-05-27", "12479.63"))
	assert.InDelta(t, 68.20968, east.Lat, 1e-5)
	assert.InDelta(t, -29.10144, east.Lon, 1e-5)
}

func TestHash_SignsFollowHemisphere(t *testing.T) {
	t.Parallel()

	fr := Fractions{Lat: 0.25, Lon: 0.75}

	res := Hash(Graticule{Lat: 26, Lon: 28, South: true}, fr)
	assert.InDelta(t, -26.25, res.Lat, 1e-12)
	assert.InDelta(t, 28.75, res.Lon, 1e-12)

	// Zero graticules keep their explicit sign.
	res = Hash(Graticule{Lat: 0, Lon: 0, South: true, West: true}, fr)
	assert.InDelta(t, -0.25, res.Lat, 1e-12)
	assert.InDelta(t, -0.75, res.Lon, 1e-12)
	assert.True(t, math.Signbit(res.Lat))
	assert.True(t, math.Signbit(res.Lon))
}

func TestHash_OffsetWithinCell(t *testing.T) {
	t.Parallel()

	dates := []string{"2005-05-26", "2008-05-26", "2008-05-27", "2012-02-26"}
	values := []string{"10458.68", "12620.90", "12479.63", "12981.20"}
	g := mustGraticule(t, 37, -122)
	for i, date := range dates {
		fr := fractionsFor(t, date, values[i])
		res := Hash(g, fr)
		assert.GreaterOrEqual(t, res.Lat, 37.0)
		assert.Less(t, res.Lat, 38.0)
		assert.LessOrEqual(t, res.Lon, -122.0)
		assert.Greater(t, res.Lon, -123.0)
	}
}

func TestHashGlobal(t *testing.T) {
	t.Parallel()

	fr := fractionsFor(t, "2008-05-27", "12479.63")
	res := HashGlobal(fr)
	assert.InDelta(t, -52.2580395846894, res.Lat, 1e-9)
	assert.InDelta(t, -143.480993539544, res.Lon, 1e-9)
}

func TestHashGlobal_Range(t *testing.T) {
	t.Parallel()

	res := HashGlobal(Fractions{Lat: 0, Lon: 0})
	assert.Equal(t, -90.0, res.Lat)
	assert.Equal(t, -180.0, res.Lon)

	res = HashGlobal(Fractions{Lat: math.Nextafter(1, 0), Lon: math.Nextafter(1, 0)})
	assert.Less(t, res.Lat, 90.0)
	assert.Less(t, res.Lon, 180.0)
}

func TestHashCenticule(t *testing.T) {
	t.Parallel()

	fr := fractionsFor(t, "2005-05-26", "10458.68")
	res, err := HashCenticule(37.85, -122.54, fr)
	require.NoError(t, err)
	assert.InDelta(t, 37.85+fr.Lat/100, res.Lat, 1e-12)
	assert.InDelta(t, -(122.54+fr.Lon/100), res.Lon, 1e-12)

	// Result stays within the base centicule cell.
	assert.GreaterOrEqual(t, res.Lat, 37.85)
	assert.Less(t, res.Lat, 37.86)
	assert.LessOrEqual(t, res.Lon, -122.54)
	assert.Greater(t, res.Lon, -122.55)
}

func TestHashCenticule_TruncatesBase(t *testing.T) {
	t.Parallel()

	fr := Fractions{Lat: 0.5, Lon: 0.5}

	// Extra precision in the input is truncated toward zero, not rounded.
	res, err := HashCenticule(37.8577, -122.5449, fr)
	require.NoError(t, err)
	assert.InDelta(t, 37.855, res.Lat, 1e-9)
	assert.InDelta(t, -122.545, res.Lon, 1e-9)
}

func TestHashCenticule_SignedZeroCell(t *testing.T) {
	t.Parallel()

	fr := Fractions{Lat: 0.5, Lon: 0.5}
	res, err := HashCenticule(-0.004, -0.004, fr)
	require.NoError(t, err)
	assert.True(t, math.Signbit(res.Lat))
	assert.True(t, math.Signbit(res.Lon))
	assert.InDelta(t, -0.005, res.Lat, 1e-9)
	assert.InDelta(t, -0.005, res.Lon, 1e-9)
}

func TestHashCenticule_OutOfRange(t *testing.T) {
	t.Parallel()

	fr := Fractions{}
	_, err := HashCenticule(91, 0, fr)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = HashCenticule(0, -180.5, fr)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// The north pole and antimeridian themselves are rejected: their cells
	// would reach past the coordinate domain.
	_, err = HashCenticule(90, 0, fr)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = HashCenticule(0, 180, fr)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHashCenticule_SouthWestBoundsAdmitted(t *testing.T) {
	t.Parallel()

	res, err := HashCenticule(-90, -180, Fractions{Lat: 0.5, Lon: 0.5})
	require.NoError(t, err)
	assert.True(t, math.Signbit(res.Lat))
	assert.True(t, math.Signbit(res.Lon))
	assert.InDelta(t, -90.005, res.Lat, 1e-9)
	assert.InDelta(t, -180.005, res.Lon, 1e-9)
}
