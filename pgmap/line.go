package pgmap

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/wgs84"
)

// line is a maps.Line fetched from a single openlr_lines row. Its
// geometry, length, and node ids are resolved eagerly at scan time;
// StartNode/EndNode issue a further query the first time they are
// called, caching the result.
type line struct {
	m       *Map
	ctx     context.Context
	id      int64
	startID int64
	endID   int64
	frc     openlr.FRC
	fow     openlr.FOW
	length  float64
	geom    []openlr.Coordinate

	start, end maps.Node
}

// geojsonLineString is the subset of a GeoJSON LineString this package
// needs: ST_AsGeoJSON(path) on a geography(LineString, 4326) column
// produces exactly this shape.
type geojsonLineString struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

func scanLine(ctx context.Context, m *Map, row rowScanner) (*line, error) {
	var (
		l       line
		geoJSON string
		frc     int
		fow     int
	)
	l.m, l.ctx = m, ctx

	if err := row.Scan(&l.id, &l.startID, &l.endID, &frc, &fow, &l.length, &geoJSON); err != nil {
		return nil, err
	}
	l.frc, l.fow = openlr.FRC(frc), openlr.FOW(fow)

	var parsed geojsonLineString
	if err := json.Unmarshal([]byte(geoJSON), &parsed); err != nil {
		return nil, fmt.Errorf("parsing line %d geometry: %w", l.id, err)
	}
	l.geom = make([]openlr.Coordinate, len(parsed.Coordinates))
	for i, c := range parsed.Coordinates {
		l.geom[i] = openlr.Coordinate{Lon: c[0], Lat: c[1]}
	}

	return &l, nil
}

// ID implements maps.Line.
func (l *line) ID() int64 { return l.id }

// FRC implements maps.Line.
func (l *line) FRC() openlr.FRC { return l.frc }

// FOW implements maps.Line.
func (l *line) FOW() openlr.FOW { return l.fow }

// Geometry implements maps.Line.
func (l *line) Geometry() []openlr.Coordinate { return l.geom }

// Length implements maps.Line.
func (l *line) Length() float64 { return l.length }

// StartNode implements maps.Line, querying openlr_nodes for startID on
// first use. maps.Node has no ctx parameter of its own, so the context
// captured when this line was scanned is reused here, mirroring how the
// ported original threads its map_reader's already-open cursor into
// every lazily-evaluated property without a fresh context per call.
func (l *line) StartNode() maps.Node {
	if l.start == nil {
		n, err := l.m.GetNode(l.ctx, l.startID)
		if err != nil {
			return &errNode{id: l.startID, err: err}
		}
		l.start = n
	}
	return l.start
}

// EndNode implements maps.Line; see StartNode.
func (l *line) EndNode() maps.Node {
	if l.end == nil {
		n, err := l.m.GetNode(l.ctx, l.endID)
		if err != nil {
			return &errNode{id: l.endID, err: err}
		}
		l.end = n
	}
	return l.end
}

// DistanceTo implements maps.Line using the same planar-projection math
// every other maps.Line implementation in this module shares, rather
// than a further round trip to PostGIS: the geometry is already in hand
// from Geometry, and wgs84.Project approximates the distance
// ST_Distance would otherwise compute server-side.
func (l *line) DistanceTo(coord openlr.Coordinate) float64 {
	_, dist := wgs84.Project(toWGS(l.geom), wgsCoord(coord))
	return dist
}

// Project implements maps.Line; see DistanceTo.
func (l *line) Project(coord openlr.Coordinate) float64 {
	frac, _ := wgs84.Project(toWGS(l.geom), wgsCoord(coord))
	return frac
}

func toWGS(cs []openlr.Coordinate) []wgs84.Coordinate {
	out := make([]wgs84.Coordinate, len(cs))
	for i, c := range cs {
		out[i] = wgsCoord(c)
	}
	return out
}

func wgsCoord(c openlr.Coordinate) wgs84.Coordinate {
	return wgs84.Coordinate{Lon: c.Lon, Lat: c.Lat}
}

var _ maps.Line = (*line)(nil)
