package memmap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlr-community/openlr-dereferencer-go/config"
	"github.com/openlr-community/openlr-dereferencer-go/decoder"
	"github.com/openlr-community/openlr-dereferencer-go/memmap"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

func frcPtr(f openlr.FRC) *openlr.FRC { return &f }
func distPtr(d float64) *float64      { return &d }

// TestDecodeOverMemmap reproduces spec.md §8 scenario 1 end to end against
// a real memmap.Graph instead of a package-local test double, exercising
// the LinesCloseTo query and the Line/Node accessors the decoder calls on
// any map backend.
func TestDecodeOverMemmap(t *testing.T) {
	g := memmap.NewGraph()
	a := g.AddNode(1, openlr.Coordinate{Lon: 13.41, Lat: 52.525})
	mid := g.AddNode(2, openlr.Coordinate{Lon: 13.414, Lat: 52.525})
	b := g.AddNode(3, openlr.Coordinate{Lon: 13.4145, Lat: 52.529})
	c := g.AddNode(4, openlr.Coordinate{Lon: 13.416, Lat: 52.525})

	l1, err := g.AddLine(1, a.ID(), mid.ID(), openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)
	l2, err := g.AddLine(2, mid.ID(), b.ID(), openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)
	l3, err := g.AddLine(3, b.ID(), c.ID(), openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)

	dAB := l1.Length() + l2.Length()
	dBC := l3.Length()

	ref := openlr.LineLocationReference{
		Points: []openlr.LocationReferencePoint{
			{Coordinate: a.Coordinates(), FRC: openlr.FRC0, FOW: openlr.FOWSingleCarriageway, Bearing: 90, LowestFRCToNext: frcPtr(openlr.FRC2), DistanceToNext: distPtr(dAB)},
			{Coordinate: b.Coordinates(), FRC: openlr.FRC2, FOW: openlr.FOWSingleCarriageway, Bearing: 170, LowestFRCToNext: frcPtr(openlr.FRC2), DistanceToNext: distPtr(dBC)},
			{Coordinate: c.Coordinates(), FRC: openlr.FRC2, FOW: openlr.FOWSingleCarriageway, Bearing: 320},
		},
	}

	loc, err := decoder.Decode(context.Background(), ref, g, config.Default(), nil, false)
	require.NoError(t, err)

	lineLoc, ok := loc.(decoder.LineLocation)
	require.True(t, ok)

	ids := make([]int64, len(lineLoc.Lines()))
	for i, line := range lineLoc.Lines() {
		ids[i] = line.ID()
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
