// Package routes holds the two immutable value types the rest of the
// decoder passes around once a candidate has been nominated: PointOnLine,
// a single point expressed as (line, fraction), and Route, a directed path
// built from a start PointOnLine, zero or more interior lines, and an end
// PointOnLine.
//
// Both types are pure value math over a maps.Line/maps.Node — they never
// touch the map beyond reading geometry and length.
package routes

import (
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/wgs84"
)

// PointOnLine is a point expressed relative to one line of the map: a
// fraction along that line's length.
//
// Two fraction interpretations exist (spec.md §3, §9): by default
// EqualArea is false and Fraction is length-proportional (cumulative arc
// length divided by line length, meters-accurate). When EqualArea is true,
// Fraction is instead parametric in the line's own geometry space, which
// can differ from the arc-length fraction on a non-uniform polyline; it is
// kept only for compatibility with callers that need it.
type PointOnLine struct {
	Line      maps.Line
	Fraction  float64
	EqualArea bool
}

// NewPointOnLine builds a PointOnLine at the given fraction.
func NewPointOnLine(line maps.Line, fraction float64, equalArea bool) PointOnLine {
	return PointOnLine{Line: line, Fraction: fraction, EqualArea: equalArea}
}

// FromAbsoluteOffset builds a PointOnLine from an absolute offset in
// meters along line. A zero-length line always yields fraction 0.
func FromAbsoluteOffset(line maps.Line, meters float64, equalArea bool) PointOnLine {
	length := line.Length()
	if length == 0 {
		return PointOnLine{Line: line, Fraction: 0, EqualArea: equalArea}
	}

	return PointOnLine{Line: line, Fraction: meters / length, EqualArea: equalArea}
}

// AbsoluteOffset returns the offset, in meters, this point lies along its
// line: Fraction * Line.Length(), regardless of fraction interpretation.
func (p PointOnLine) AbsoluteOffset() float64 {
	return p.Fraction * p.Line.Length()
}

func toWGS(cs []openlr.Coordinate) []wgs84.Coordinate {
	out := make([]wgs84.Coordinate, len(cs))
	for i, c := range cs {
		out[i] = wgs84.Coordinate{Lon: c.Lon, Lat: c.Lat}
	}
	return out
}

func fromWGS(cs []wgs84.Coordinate) []openlr.Coordinate {
	out := make([]openlr.Coordinate, len(cs))
	for i, c := range cs {
		out[i] = openlr.Coordinate{Lon: c.Lon, Lat: c.Lat}
	}
	return out
}

// Coordinate returns the exact geographic coordinate this point denotes.
func (p PointOnLine) Coordinate() openlr.Coordinate {
	geom := toWGS(p.Line.Geometry())
	if len(geom) == 0 {
		return openlr.Coordinate{}
	}
	if len(geom) == 1 {
		return fromWGS(geom)[0]
	}

	if p.EqualArea {
		sub := wgs84.SubstringNormalized(geom, 0, p.Fraction)
		if len(sub) == 0 {
			return fromWGS(geom)[:1][0]
		}
		return fromWGS(sub)[len(sub)-1]
	}

	c := wgs84.Interpolate(geom, p.AbsoluteOffset())
	return openlr.Coordinate{Lon: c.Lon, Lat: c.Lat}
}

// Split returns the line's geometry cut at this point: before is the part
// from the line's start up to this point, after is the part from this
// point to the line's end. Either half may be a zero-length (degenerate)
// polyline, its points coinciding, if the point sits at an endpoint.
func (p PointOnLine) Split() (before, after []openlr.Coordinate) {
	geom := toWGS(p.Line.Geometry())
	if len(geom) < 2 {
		return fromWGS(geom), fromWGS(geom)
	}

	if p.EqualArea {
		return fromWGS(wgs84.SubstringNormalized(geom, 0, p.Fraction)),
			fromWGS(wgs84.SubstringNormalized(geom, p.Fraction, 1))
	}

	offset := p.AbsoluteOffset()
	length := p.Line.Length()
	return fromWGS(wgs84.SubstringByLength(geom, 0, offset)),
		fromWGS(wgs84.SubstringByLength(geom, offset, length))
}
