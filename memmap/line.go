package memmap

import (
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/wgs84"
)

// Line is a directed segment of a Graph.
type Line struct {
	id         int64
	start, end *Node
	frc        openlr.FRC
	fow        openlr.FOW
	geometry   []openlr.Coordinate
	length     float64
}

// ID implements maps.Line.
func (l *Line) ID() int64 { return l.id }

// StartNode implements maps.Line.
func (l *Line) StartNode() maps.Node { return l.start }

// EndNode implements maps.Line.
func (l *Line) EndNode() maps.Node { return l.end }

// FRC implements maps.Line.
func (l *Line) FRC() openlr.FRC { return l.frc }

// FOW implements maps.Line.
func (l *Line) FOW() openlr.FOW { return l.fow }

// Geometry implements maps.Line.
func (l *Line) Geometry() []openlr.Coordinate { return l.geometry }

// Length implements maps.Line.
func (l *Line) Length() float64 { return l.length }

// DistanceTo implements maps.Line.
func (l *Line) DistanceTo(coord openlr.Coordinate) float64 {
	_, dist := wgs84.Project(toWGS(l.geometry), wgsCoord(coord))
	return dist
}

// Project implements maps.Line.
func (l *Line) Project(coord openlr.Coordinate) float64 {
	frac, _ := wgs84.Project(toWGS(l.geometry), wgsCoord(coord))
	return frac
}

func wgsCoord(c openlr.Coordinate) wgs84.Coordinate {
	return wgs84.Coordinate{Lon: c.Lon, Lat: c.Lat}
}

var _ maps.Line = (*Line)(nil)
