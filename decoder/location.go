package decoder

import (
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/routes"
)

// Location is implemented by every value Decode can return (spec.md §6):
// LineLocation, PointAlongLine, PoiWithAccessPoint, and a bare Coordinate.
// It is a closed, sealed set: isLocation is unexported so no package
// outside decoder can add a fifth variant.
type Location interface {
	isLocation()
}

// LineLocation is the decoded form of a LineLocationReference: a route on
// the map together with the absolute offsets trimming its ends.
type LineLocation struct {
	Route routes.Route
}

func (LineLocation) isLocation() {}

// Lines returns the ordered sequence of lines this location covers.
func (l LineLocation) Lines() []maps.Line { return l.Route.Lines() }

// POff is how many meters into the first line this location starts.
func (l LineLocation) POff() float64 { return l.Route.AbsoluteStartOffset() }

// NOff is how many meters before the end of the last line this location
// ends.
func (l LineLocation) NOff() float64 { return l.Route.AbsoluteEndOffset() }

// Coordinates returns the exact polyline this location traces.
func (l LineLocation) Coordinates() []openlr.Coordinate { return l.Route.Coordinates() }

// PointAlongLine is the decoded form of a PointAlongLineLocationReference:
// a single point expressed relative to one line of the map, plus the
// reference's orientation and side-of-road metadata.
type PointAlongLine struct {
	Point       routes.PointOnLine
	Orientation openlr.Orientation
	SideOfRoad  openlr.SideOfRoad
}

func (PointAlongLine) isLocation() {}

// Coordinate returns the single geographic coordinate this location
// denotes.
func (p PointAlongLine) Coordinate() openlr.Coordinate { return p.Point.Coordinate() }

// PoiWithAccessPoint is the decoded form of a
// PoiWithAccessPointLocationReference: an access point (decoded exactly
// like PointAlongLine) plus the point of interest it leads to.
type PoiWithAccessPoint struct {
	AccessPoint PointAlongLine
	POI         openlr.Coordinate
}

func (PoiWithAccessPoint) isLocation() {}

// GeoCoordinate is the decoded form of a GeoCoordinateLocationReference:
// decoding it is the identity function, routed through Decode only so
// callers can treat all four reference kinds uniformly.
type GeoCoordinate struct {
	Coordinate openlr.Coordinate
}

func (GeoCoordinate) isLocation() {}
