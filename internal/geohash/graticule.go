package geohash

import (
	"strconv"

	"github.com/rotisserie/eris"
)

// Graticule identifies a 1°×1° cell. Lat and Lon hold absolute integer
// degrees; South and West carry the hemispheres explicitly, because the
// graticules along the equator and prime meridian (e.g. -0, 5) cannot
// encode their sign in the integer alone.
type Graticule struct {
	Lat   int
	Lon   int
	South bool
	West  bool
}

// NewGraticule builds a graticule from signed integer degrees, inferring
// the hemispheres from the signs. The south/west zero graticules are not
// reachable this way; use NewSignedGraticule for those.
func NewGraticule(lat, lon int) (Graticule, error) {
	return NewSignedGraticule(abs(lat), abs(lon), lat < 0, lon < 0)
}

// NewSignedGraticule builds a graticule from absolute degrees and explicit
// hemisphere flags. Latitude rows run 0..89 north and 0..90 south,
// longitude columns 0..179 east and 0..180 west.
func NewSignedGraticule(lat, lon int, south, west bool) (Graticule, error) {
	g := Graticule{Lat: lat, Lon: lon, South: south, West: west}
	if lat < 0 || lon < 0 {
		return Graticule{}, eris.Wrapf(ErrOutOfRange, "geohash: absolute degrees (%d, %d)", lat, lon)
	}
	if !g.inRange() {
		return Graticule{}, eris.Wrapf(ErrOutOfRange, "geohash: graticule %s", g)
	}
	return g, nil
}

func (g Graticule) inRange() bool {
	maxLat, maxLon := 89, 179
	if g.South {
		maxLat = 90
	}
	if g.West {
		maxLon = 180
	}
	return g.Lat <= maxLat && g.Lon <= maxLon
}

// Offset returns the graticule shifted by whole cells. Shifts work on cell
// indices, so stepping across the equator or prime meridian moves between
// the -0 and 0 graticules rather than skipping a cell.
func (g Graticule) Offset(dLat, dLon int) (Graticule, error) {
	latIdx := cellIndex(g.Lat, g.South) + dLat
	lonIdx := cellIndex(g.Lon, g.West) + dLon
	lat, south := cellName(latIdx)
	lon, west := cellName(lonIdx)
	return NewSignedGraticule(lat, lon, south, west)
}

// String renders the signed degree pair, keeping the explicit minus on the
// zero graticules, e.g. "(-0, 122)".
func (g Graticule) String() string {
	return "(" + signedDegree(g.Lat, g.South) + ", " + signedDegree(g.Lon, g.West) + ")"
}

// cellIndex maps a named graticule to a signed cell index: north/east cell
// n covers [n, n+1), south/west cell s covers (-s-1, -s].
func cellIndex(deg int, negative bool) int {
	if negative {
		return -(deg + 1)
	}
	return deg
}

// cellName is the inverse of cellIndex.
func cellName(idx int) (deg int, negative bool) {
	if idx < 0 {
		return -idx - 1, true
	}
	return idx, false
}

func signedDegree(deg int, negative bool) string {
	s := strconv.Itoa(deg)
	if negative {
		return "-" + s
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
