package wgs84

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceZero(t *testing.T) {
	c := Coordinate{Lon: 13.41, Lat: 52.525}
	require.InDelta(t, 0.0, Distance(c, c), 1e-9)
}

func TestDistanceKnownPoints(t *testing.T) {
	// Berlin Alexanderplatz-ish to a point ~539m away in a straight line
	// (the first and second anchors of the decoder's own 3-LRP test fixture).
	a := Coordinate{Lon: 13.41, Lat: 52.525}
	b := Coordinate{Lon: 13.4145, Lat: 52.529}
	got := Distance(a, b)
	assert.InDelta(t, 539.4, got, 5.0)
}

func TestBearingCardinal(t *testing.T) {
	north := Bearing(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 1, Lon: 0})
	assert.InDelta(t, 0.0, north, 1e-6)

	east := Bearing(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 0, Lon: 1})
	assert.InDelta(t, math.Pi/2, east, 1e-6)
}

func TestExtrapolateThenDistance(t *testing.T) {
	start := Coordinate{Lon: 13.41, Lat: 52.525}
	dest := Extrapolate(start, 1000, 90)
	assert.InDelta(t, 1000, Distance(start, dest), 1.0)
}

func TestInterpolateClampsAtEnd(t *testing.T) {
	line := []Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}}
	total := LineStringLength(line)

	mid := Interpolate(line, total/2)
	assert.InDelta(t, 0.5, mid.Lat, 0.01)

	clamped := Interpolate(line, total*10)
	assert.InDelta(t, line[1].Lat, clamped.Lat, 1e-9)
}

func TestLineStringLengthEmptyAndSingle(t *testing.T) {
	assert.Equal(t, 0.0, LineStringLength(nil))
	assert.Equal(t, 0.0, LineStringLength([]Coordinate{{Lon: 1, Lat: 1}}))
}

func TestProjectOnInteriorPoint(t *testing.T) {
	line := []Coordinate{{Lon: 13.41, Lat: 52.525}, {Lon: 13.414, Lat: 52.525}}
	target := Coordinate{Lon: 13.412, Lat: 52.5251}

	frac, dist := Project(line, target)
	assert.InDelta(t, 0.5, frac, 0.05)
	assert.Less(t, dist, 50.0)
}

func TestSubstringByLengthMidSegment(t *testing.T) {
	line := []Coordinate{{Lon: 13.41, Lat: 52.525}, {Lon: 13.414, Lat: 52.525}}
	total := LineStringLength(line)

	sub := SubstringByLength(line, total*0.25, total*0.75)
	require.Len(t, sub, 2)
	assert.Greater(t, sub[0].Lon, line[0].Lon)
	assert.Less(t, sub[1].Lon, line[1].Lon)
}
