package cachemap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/memmap"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// countingBackend wraps a memmap.Graph and counts how many times each
// method is actually invoked, so tests can assert a cache hit never
// reaches the backend.
type countingBackend struct {
	*memmap.Graph
	getLineCalls int
	getNodeCalls int
}

func (b *countingBackend) GetLine(ctx context.Context, id int64) (maps.Line, error) {
	b.getLineCalls++
	return b.Graph.GetLine(ctx, id)
}

func (b *countingBackend) GetNode(ctx context.Context, id int64) (maps.Node, error) {
	b.getNodeCalls++
	return b.Graph.GetNode(ctx, id)
}

func newFixture(t *testing.T) (*countingBackend, *Map) {
	t.Helper()
	g := memmap.NewGraph()
	g.AddNode(1, openlr.Coordinate{Lon: 13.0, Lat: 52.0})
	g.AddNode(2, openlr.Coordinate{Lon: 13.01, Lat: 52.0})
	_, err := g.AddLine(1, 1, 2, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)

	backend := &countingBackend{Graph: g}
	cache, err := New(backend, 8)
	require.NoError(t, err)
	return backend, cache
}

func TestGetLineCachesAfterFirstMiss(t *testing.T) {
	backend, cache := newFixture(t)
	ctx := context.Background()

	_, err := cache.GetLine(ctx, 1)
	require.NoError(t, err)
	_, err = cache.GetLine(ctx, 1)
	require.NoError(t, err)
	_, err = cache.GetLine(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, backend.getLineCalls)
}

func TestGetNodeCachesAfterFirstMiss(t *testing.T) {
	backend, cache := newFixture(t)
	ctx := context.Background()

	_, err := cache.GetNode(ctx, 1)
	require.NoError(t, err)
	_, err = cache.GetNode(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, backend.getNodeCalls)
}

func TestLinesCloseToWarmsLineCache(t *testing.T) {
	backend, cache := newFixture(t)
	ctx := context.Background()

	lines, err := cache.LinesCloseTo(ctx, openlr.Coordinate{Lon: 13.0, Lat: 52.0}, 1000)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	_, err = cache.GetLine(ctx, lines[0].ID())
	require.NoError(t, err)

	assert.Equal(t, 0, backend.getLineCalls)
}

func TestDistinctIDsDoNotShareCacheSlot(t *testing.T) {
	g := memmap.NewGraph()
	g.AddNode(1, openlr.Coordinate{Lon: 13.0, Lat: 52.0})
	g.AddNode(2, openlr.Coordinate{Lon: 13.01, Lat: 52.0})
	g.AddNode(3, openlr.Coordinate{Lon: 13.02, Lat: 52.0})
	_, err := g.AddLine(1, 1, 2, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)
	_, err = g.AddLine(2, 2, 3, openlr.FRC2, openlr.FOWSingleCarriageway)
	require.NoError(t, err)

	backend := &countingBackend{Graph: g}
	cache, err := New(backend, 8)
	require.NoError(t, err)

	ctx := context.Background()
	l1, err := cache.GetLine(ctx, 1)
	require.NoError(t, err)
	l2, err := cache.GetLine(ctx, 2)
	require.NoError(t, err)

	assert.NotEqual(t, l1.ID(), l2.ID())
	assert.Equal(t, 2, backend.getLineCalls)
}
