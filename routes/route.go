package routes

import (
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/wgs84"
)

// Route is a directed path on the map: a start point, zero or more whole
// interior lines, and an end point. Per spec.md §3:
//   - if Interior is empty, Start.Line must equal End.Line and
//     Start.Fraction <= End.Fraction;
//   - otherwise Start.Line is the first line entered and End.Line the
//     last, and consecutive lines share a node.
type Route struct {
	Start    PointOnLine
	Interior []maps.Line
	End      PointOnLine
}

// isSingleSegment reports whether this route never leaves Start.Line.
func (r Route) isSingleSegment() bool {
	return len(r.Interior) == 0 && r.Start.Line.ID() == r.End.Line.ID()
}

// Length returns this route's real-world length in meters.
func (r Route) Length() float64 {
	if r.isSingleSegment() {
		return (r.End.Fraction - r.Start.Fraction) * r.Start.Line.Length()
	}

	length := (1 - r.Start.Fraction) * r.Start.Line.Length()
	for _, line := range r.Interior {
		length += line.Length()
	}
	length += r.End.Fraction * r.End.Line.Length()

	return length
}

// Lines returns the ordered sequence of lines this route touches. A
// single-segment route yields that one line exactly once.
func (r Route) Lines() []maps.Line {
	if r.isSingleSegment() {
		return []maps.Line{r.Start.Line}
	}

	lines := make([]maps.Line, 0, len(r.Interior)+2)
	lines = append(lines, r.Start.Line)
	lines = append(lines, r.Interior...)
	lines = append(lines, r.End.Line)

	return lines
}

// AbsoluteStartOffset returns how far, in meters, this route's path
// begins into its first line.
func (r Route) AbsoluteStartOffset() float64 {
	return r.Start.AbsoluteOffset()
}

// AbsoluteEndOffset returns how far, in meters, this route's path ends
// before the close of its last line.
func (r Route) AbsoluteEndOffset() float64 {
	return r.End.Line.Length() - r.End.AbsoluteOffset()
}

// lineSubstring returns the part of line's geometry between two fractions
// of that same line, honoring the equal-area/length-proportional
// interpretation consistently with PointOnLine.Coordinate.
func lineSubstring(line maps.Line, from, to float64, equalArea bool) []openlr.Coordinate {
	geom := make([]wgs84.Coordinate, len(line.Geometry()))
	for i, c := range line.Geometry() {
		geom[i] = wgs84.Coordinate{Lon: c.Lon, Lat: c.Lat}
	}
	if len(geom) < 2 {
		out := make([]openlr.Coordinate, len(geom))
		for i, c := range geom {
			out[i] = openlr.Coordinate{Lon: c.Lon, Lat: c.Lat}
		}
		return out
	}

	var sub []wgs84.Coordinate
	if equalArea {
		sub = wgs84.SubstringNormalized(geom, from, to)
	} else {
		length := line.Length()
		sub = wgs84.SubstringByLength(geom, from*length, to*length)
	}

	out := make([]openlr.Coordinate, len(sub))
	for i, c := range sub {
		out[i] = openlr.Coordinate{Lon: c.Lon, Lat: c.Lat}
	}
	return out
}

// Coordinates returns the exact polyline this route traces, with
// consecutive duplicate coordinates collapsed (spec.md §8).
func (r Route) Coordinates() []openlr.Coordinate {
	var out []openlr.Coordinate

	if r.isSingleSegment() {
		out = lineSubstring(r.Start.Line, r.Start.Fraction, r.End.Fraction, r.Start.EqualArea)
		return dedup(out)
	}

	out = append(out, lineSubstring(r.Start.Line, r.Start.Fraction, 1, r.Start.EqualArea)...)
	for _, line := range r.Interior {
		out = append(out, line.Geometry()...)
	}
	out = append(out, lineSubstring(r.End.Line, 0, r.End.Fraction, r.End.EqualArea)...)

	return dedup(out)
}

func dedup(cs []openlr.Coordinate) []openlr.Coordinate {
	if len(cs) == 0 {
		return cs
	}
	out := cs[:1]
	for _, c := range cs[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
