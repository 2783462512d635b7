package memmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

func TestAddLineRejectsUnknownNodes(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, openlr.Coordinate{Lon: 13.0, Lat: 52.0})

	_, err := g.AddLine(1, 1, 2, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.Error(t, err)
	assert.True(t, errors.Is(err, maps.ErrNodeNotFound))
}

func TestAddNodeIsIdempotent(t *testing.T) {
	g := NewGraph()
	first := g.AddNode(1, openlr.Coordinate{Lon: 13.0, Lat: 52.0})
	second := g.AddNode(1, openlr.Coordinate{Lon: 99.0, Lat: 99.0})
	assert.Same(t, first, second)
	assert.Equal(t, 13.0, second.Coordinates().Lon)
}

func TestLineGeometryDefaultsToStraightSegment(t *testing.T) {
	g := NewGraph()
	a := openlr.Coordinate{Lon: 13.0, Lat: 52.0}
	b := openlr.Coordinate{Lon: 13.01, Lat: 52.0}
	g.AddNode(1, a)
	g.AddNode(2, b)

	line, err := g.AddLine(1, 1, 2, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)
	assert.Equal(t, []openlr.Coordinate{a, b}, line.Geometry())
	assert.Greater(t, line.Length(), 0.0)
}

func TestAdjacencyWiresBothEnds(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, openlr.Coordinate{Lon: 13.0, Lat: 52.0})
	g.AddNode(2, openlr.Coordinate{Lon: 13.01, Lat: 52.0})
	g.AddNode(3, openlr.Coordinate{Lon: 13.02, Lat: 52.0})

	l1, err := g.AddLine(1, 1, 2, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)
	l2, err := g.AddLine(2, 2, 3, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)

	n2, err := g.GetNode(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, n2.Incoming(), 1)
	require.Len(t, n2.Outgoing(), 1)
	assert.Equal(t, l1.ID(), n2.Incoming()[0].ID())
	assert.Equal(t, l2.ID(), n2.Outgoing()[0].ID())
}

func TestLinesCloseToFiltersByRadius(t *testing.T) {
	g := NewGraph()
	near := openlr.Coordinate{Lon: 13.0, Lat: 52.0}
	far := openlr.Coordinate{Lon: 20.0, Lat: 52.0}

	g.AddNode(1, near)
	g.AddNode(2, openlr.Coordinate{Lon: 13.001, Lat: 52.0})
	g.AddNode(3, far)
	g.AddNode(4, openlr.Coordinate{Lon: 20.001, Lat: 52.0})

	nearLine, err := g.AddLine(1, 1, 2, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)
	_, err = g.AddLine(2, 3, 4, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)

	lines, err := g.LinesCloseTo(context.Background(), near, 50)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, nearLine.ID(), lines[0].ID())
}

func TestGetLineAndNodeNotFound(t *testing.T) {
	g := NewGraph()

	_, err := g.GetLine(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, maps.ErrLineNotFound))

	_, err = g.GetNode(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, maps.ErrNodeNotFound))
}

func TestQueriesRespectCanceledContext(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, openlr.Coordinate{Lon: 13.0, Lat: 52.0})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GetNode(ctx, 1)
	require.Error(t, err)

	_, err = g.LinesCloseTo(ctx, openlr.Coordinate{Lon: 13.0, Lat: 52.0}, 10)
	require.Error(t, err)
}
