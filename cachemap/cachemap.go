// Package cachemap decorates any maps.Map with an LRU cache over its
// GetLine/GetNode lookups, the same id-keyed-cache shape
// hashicorp/golang-lru/v2 is used for elsewhere in this module's lineage
// (mmp-vice's wx/manifest.go caches weather lookups behind
// expirable.LRU). A road network id is immutable for the lifetime of a
// decode, so the plain, non-expiring Cache fits here; there is no TTL to
// model the way there is for weather data.
//
// LinesCloseTo is not cached: its key space (an arbitrary coordinate and
// radius) does not repeat often enough across a single decode to be worth
// an LRU slot, unlike GetLine/GetNode which the pairwise matcher and
// candidate nomination call repeatedly for the same handful of ids as
// backtracking revisits anchors.
package cachemap

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// Map wraps a backend maps.Map, caching its GetLine and GetNode results.
type Map struct {
	backend maps.Map
	lines   *lru.Cache[int64, maps.Line]
	nodes   *lru.Cache[int64, maps.Node]
}

// New wraps backend with two size-bounded LRU caches, one for lines and
// one for nodes. size must be positive.
func New(backend maps.Map, size int) (*Map, error) {
	lines, err := lru.New[int64, maps.Line](size)
	if err != nil {
		return nil, err
	}
	nodes, err := lru.New[int64, maps.Node](size)
	if err != nil {
		return nil, err
	}

	return &Map{backend: backend, lines: lines, nodes: nodes}, nil
}

// LinesCloseTo delegates to the backend uncached, warming the line cache
// with whatever it returns so a later GetLine for the same id is free.
func (m *Map) LinesCloseTo(ctx context.Context, coord openlr.Coordinate, radiusMeters float64) ([]maps.Line, error) {
	lines, err := m.backend.LinesCloseTo(ctx, coord, radiusMeters)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		m.lines.Add(l.ID(), l)
	}
	return lines, nil
}

// GetLine returns the cached line for id, falling back to the backend and
// populating the cache on a miss.
func (m *Map) GetLine(ctx context.Context, id int64) (maps.Line, error) {
	if l, ok := m.lines.Get(id); ok {
		return l, nil
	}

	l, err := m.backend.GetLine(ctx, id)
	if err != nil {
		return nil, err
	}
	m.lines.Add(id, l)
	return l, nil
}

// GetNode returns the cached node for id, falling back to the backend and
// populating the cache on a miss.
func (m *Map) GetNode(ctx context.Context, id int64) (maps.Node, error) {
	if n, ok := m.nodes.Get(id); ok {
		return n, nil
	}

	n, err := m.backend.GetNode(ctx, id)
	if err != nil {
		return nil, err
	}
	m.nodes.Add(id, n)
	return n, nil
}

var _ maps.Map = (*Map)(nil)
