// Package maps declares the abstract contract the decoder consumes from a
// target road network: a read-only capability set {lines close to a
// coordinate, a line by id, a node by id}, plus the Line and Node value
// accessors built on top of it.
//
// Per spec.md §4.2/§9 this is "dynamic dispatch over map-interface" —
// implementations are reached only through these three interfaces, never
// through a concrete struct, so the decoder stays map-agnostic. The
// teacher's core.Graph plays the analogous role of "the thing algorithms
// are handed" for its own algorithms; here that role is split across Map,
// Line and Node because a road network carries geometry and per-edge
// attributes a plain vertex/edge graph does not.
package maps

import (
	"context"
	"errors"

	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// Sentinel errors a Map implementation should return from GetLine/GetNode
// when the requested id does not exist.
var (
	ErrLineNotFound = errors.New("maps: line not found")
	ErrNodeNotFound = errors.New("maps: node not found")
)

// Line is a directed segment of the target road network.
type Line interface {
	// ID uniquely identifies this line within its map.
	ID() int64
	// StartNode is the node this line runs from.
	StartNode() Node
	// EndNode is the node this line runs to.
	EndNode() Node
	// FRC is this line's functional road class.
	FRC() openlr.FRC
	// FOW is this line's form of way.
	FOW() openlr.FOW
	// Geometry is this line's polyline, start node to end node.
	Geometry() []openlr.Coordinate
	// Length is this line's real-world length in meters, derived from
	// Geometry. A Length of 0 makes the line ineligible as a candidate
	// (spec.md §3).
	Length() float64
	// DistanceTo returns the great-circle distance, in meters, from coord
	// to the closest point on this line.
	DistanceTo(coord openlr.Coordinate) float64
	// Project returns the length-proportional fraction, in [0, 1], of the
	// point on this line closest to coord.
	Project(coord openlr.Coordinate) (fraction float64)
}

// Node is a junction of the target road network.
type Node interface {
	// ID uniquely identifies this node within its map.
	ID() int64
	// Coordinates is this node's location.
	Coordinates() openlr.Coordinate
	// Outgoing lists every line starting at this node.
	Outgoing() []Line
	// Incoming lists every line ending at this node.
	Incoming() []Line
}

// Map is the read-only contract the decoder requires from a target road
// network. Implementations may perform blocking I/O (a database query, a
// remote service call) — the decoder treats every call as an opaque,
// potentially latent read and never mutates the map (spec.md §5).
type Map interface {
	// LinesCloseTo yields every line whose geometry is within radiusMeters
	// of coord. Order is unspecified; over-yielding false positives is
	// allowed; the decoder filters by true distance itself.
	LinesCloseTo(ctx context.Context, coord openlr.Coordinate, radiusMeters float64) ([]Line, error)
	// GetLine looks up a line by id.
	GetLine(ctx context.Context, id int64) (Line, error)
	// GetNode looks up a node by id.
	GetNode(ctx context.Context, id int64) (Node, error)
}
