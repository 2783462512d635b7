// Package memmap is the simplest maps.Map a caller can stand up: a
// road network built entirely in process memory, one AddNode/AddLine call
// at a time, with no backing store.
//
// It plays the role the teacher's core.Graph plays for its own
// algorithms — "the thing you hand to decode" — but the vertex/edge shape
// of core.Graph has no room for a line's geometry, FRC, or FOW, so the
// adjacency here is kept directly on the exported Node/Line types
// instead of a side table. Locking mirrors core.Graph: one sync.RWMutex
// guards both the node and line maps, held for writes during AddNode/
// AddLine and for reads during every maps.Map query.
package memmap

import (
	"context"
	"fmt"
	"sync"

	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/wgs84"
)

// Graph is an in-memory maps.Map. The zero value is not usable; build one
// with NewGraph.
type Graph struct {
	mu    sync.RWMutex
	nodes map[int64]*Node
	lines map[int64]*Line
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]*Node),
		lines: make(map[int64]*Line),
	}
}

// AddNode inserts a node at coord under id. Re-adding an existing id is a
// no-op, matching core.Graph.AddVertex's behavior for repeat inserts.
func (g *Graph) AddNode(id int64, coord openlr.Coordinate) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, exists := g.nodes[id]; exists {
		return n
	}
	n := &Node{id: id, coord: coord}
	g.nodes[id] = n
	return n
}

// AddLine creates a directed line id from startID to endID, classified by
// frc/fow. geometry is the line's polyline, start node to end node; when
// omitted, the straight segment between the two endpoints' coordinates is
// used. Both endpoints must already exist (via AddNode); AddLine returns
// maps.ErrNodeNotFound wrapped with the missing id otherwise.
func (g *Graph) AddLine(id, startID, endID int64, frc openlr.FRC, fow openlr.FOW, geometry ...openlr.Coordinate) (*Line, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	start, ok := g.nodes[startID]
	if !ok {
		return nil, fmt.Errorf("memmap: AddLine %d: start node %d: %w", id, startID, maps.ErrNodeNotFound)
	}
	end, ok := g.nodes[endID]
	if !ok {
		return nil, fmt.Errorf("memmap: AddLine %d: end node %d: %w", id, endID, maps.ErrNodeNotFound)
	}

	if len(geometry) == 0 {
		geometry = []openlr.Coordinate{start.coord, end.coord}
	}

	l := &Line{
		id:       id,
		start:    start,
		end:      end,
		frc:      frc,
		fow:      fow,
		geometry: geometry,
		length:   wgs84.LineStringLength(toWGS(geometry)),
	}

	g.lines[id] = l
	start.out = append(start.out, l)
	end.in = append(end.in, l)
	return l, nil
}

// LinesCloseTo implements maps.Map: every line within radiusMeters of
// coord, filtered by true great-circle distance.
func (g *Graph) LinesCloseTo(ctx context.Context, coord openlr.Coordinate, radiusMeters float64) ([]maps.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]maps.Line, 0, len(g.lines))
	for _, l := range g.lines {
		if l.DistanceTo(coord) <= radiusMeters {
			out = append(out, l)
		}
	}
	return out, nil
}

// GetLine implements maps.Map.
func (g *Graph) GetLine(ctx context.Context, id int64) (maps.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	l, ok := g.lines[id]
	if !ok {
		return nil, fmt.Errorf("memmap: line %d: %w", id, maps.ErrLineNotFound)
	}
	return l, nil
}

// GetNode implements maps.Map.
func (g *Graph) GetNode(ctx context.Context, id int64) (maps.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("memmap: node %d: %w", id, maps.ErrNodeNotFound)
	}
	return n, nil
}

var _ maps.Map = (*Graph)(nil)

func toWGS(cs []openlr.Coordinate) []wgs84.Coordinate {
	out := make([]wgs84.Coordinate, len(cs))
	for i, c := range cs {
		out[i] = wgs84.Coordinate{Lon: c.Lon, Lat: c.Lat}
	}
	return out
}
