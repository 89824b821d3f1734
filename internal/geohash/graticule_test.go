package geohash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraticule_InfersHemispheres(t *testing.T) {
	t.Parallel()

	g, err := NewGraticule(37, -122)
	require.NoError(t, err)
	assert.Equal(t, Graticule{Lat: 37, Lon: 122, South: false, West: true}, g)

	g, err = NewGraticule(-26, 28)
	require.NoError(t, err)
	assert.Equal(t, Graticule{Lat: 26, Lon: 28, South: true, West: false}, g)
}

func TestNewSignedGraticule_ZeroGraticules(t *testing.T) {
	t.Parallel()

	// The four cells touching (0,0) are distinct; only the explicit flags
	// can tell them apart.
	se, err := NewSignedGraticule(0, 0, true, false)
	require.NoError(t, err)
	ne, err := NewSignedGraticule(0, 0, false, false)
	require.NoError(t, err)
	assert.NotEqual(t, se, ne)
	assert.Equal(t, "(-0, 0)", se.String())
	assert.Equal(t, "(0, 0)", ne.String())
}

func TestNewGraticule_OutOfRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lat, lon int
	}{
		{91, 0},
		{90, 0}, // north rows stop at 89
		{-91, 0},
		{0, 181},
		{0, 180}, // east columns stop at 179
		{0, -181},
	}
	for _, tc := range cases {
		_, err := NewGraticule(tc.lat, tc.lon)
		require.Error(t, err, "(%d, %d)", tc.lat, tc.lon)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}

	// The extreme south/west rows are valid.
	_, err := NewGraticule(-90, -180)
	assert.NoError(t, err)
	_, err = NewGraticule(89, 179)
	assert.NoError(t, err)
}

func TestGraticule_Offset(t *testing.T) {
	t.Parallel()

	base, err := NewGraticule(37, -122)
	require.NoError(t, err)

	g, err := base.Offset(1, -1)
	require.NoError(t, err)
	assert.Equal(t, Graticule{Lat: 38, Lon: 123, West: true}, g)

	g, err = base.Offset(0, 0)
	require.NoError(t, err)
	assert.Equal(t, base, g)
}

func TestGraticule_OffsetAcrossEquator(t *testing.T) {
	t.Parallel()

	// Stepping north out of the -0 row lands in the 0 row, not in 1.
	south, err := NewSignedGraticule(0, 5, true, false)
	require.NoError(t, err)

	g, err := south.Offset(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Graticule{Lat: 0, Lon: 5}, g)

	back, err := g.Offset(-1, 0)
	require.NoError(t, err)
	assert.Equal(t, south, back)

	g, err = south.Offset(2, 0)
	require.NoError(t, err)
	assert.Equal(t, Graticule{Lat: 1, Lon: 5}, g)
}

func TestGraticule_OffsetOutOfRange(t *testing.T) {
	t.Parallel()

	base, err := NewGraticule(89, 179)
	require.NoError(t, err)
	_, err = base.Offset(1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = base.Offset(0, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestGraticule_String(t *testing.T) {
	t.Parallel()

	g, err := NewGraticule(37, -122)
	require.NoError(t, err)
	assert.Equal(t, "(37, -122)", g.String())
}
