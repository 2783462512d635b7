// Package openlr defines the map-agnostic data model a location reference
// is built from: coordinates, the FRC/FOW road classifications, location
// reference points (anchors) and the four reference kinds the decoder
// accepts.
//
// Nothing in this package talks to a map. It is pure value types, the
// vocabulary every other package in this module shares.
package openlr

import "fmt"

// Coordinate is a WGS-84 longitude/latitude pair, in decimal degrees.
//
// Field order matches the OpenLR wire convention (longitude first); callers
// must never swap the two when building a Coordinate by hand.
type Coordinate struct {
	Lon float64
	Lat float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Lon, c.Lat)
}

// FRC is the Functional Road Class, an ordered 0..7 importance ranking
// where 0 is the most important (fastest) class. Because the ranking is
// ordered, "a <= b" is a meaningful, intentional comparison: it means a is
// at least as important as b.
type FRC int

const (
	FRC0 FRC = iota
	FRC1
	FRC2
	FRC3
	FRC4
	FRC5
	FRC6
	FRC7
)

// frcNames mirrors the enumeration above in declaration order.
var frcNames = [...]string{"FRC0", "FRC1", "FRC2", "FRC3", "FRC4", "FRC5", "FRC6", "FRC7"}

func (f FRC) String() string {
	if f < FRC0 || f > FRC7 {
		return fmt.Sprintf("FRC(%d)", int(f))
	}
	return frcNames[f]
}

// Valid reports whether f is one of the eight defined classes.
func (f FRC) Valid() bool { return f >= FRC0 && f <= FRC7 }

// FOW is the Form of Way, an unordered categorical descriptor. Unlike FRC,
// there is no meaningful "<" between two FOW values — similarity between
// two forms of way is only defined through a configurable lookup table
// (see package scoring).
type FOW int

const (
	FOWUndefined FOW = iota
	FOWMotorway
	FOWMultipleCarriageway
	FOWSingleCarriageway
	FOWRoundabout
	FOWTrafficSquare
	FOWSlipRoad
	FOWOther
)

var fowNames = [...]string{
	"Undefined", "Motorway", "MultipleCarriageway", "SingleCarriageway",
	"Roundabout", "TrafficSquare", "SlipRoad", "Other",
}

func (f FOW) String() string {
	if f < FOWUndefined || f > FOWOther {
		return fmt.Sprintf("FOW(%d)", int(f))
	}
	return fowNames[f]
}

// Valid reports whether f is one of the eight defined forms of way.
func (f FOW) Valid() bool { return f >= FOWUndefined && f <= FOWOther }

// LocationReferencePoint is one anchor of a location reference: a
// geographic point plus the road attributes describing the segment the
// original map chose at that point.
//
// LowestFRCToNext and DistanceToNext are nil on the last anchor of a
// reference, which has no "next point" to describe.
type LocationReferencePoint struct {
	Coordinate
	FRC             FRC
	FOW             FOW
	Bearing         float64 // degrees, [0, 360)
	LowestFRCToNext *FRC
	DistanceToNext  *float64 // meters
}

// IsLastPoint reports whether this anchor is the final one in its
// reference (no declared distance/lowest-FRC to a next point).
func (p LocationReferencePoint) IsLastPoint() bool {
	return p.DistanceToNext == nil
}

// Orientation describes, for a point-along-line or POI-with-access-point
// reference, how the referenced point relates to the digitized direction
// of the line it sits on.
type Orientation int

const (
	NoOrientationOrUnknown Orientation = iota
	WithLineDirection
	AgainstLineDirection
	BothDirections
)

// SideOfRoad describes, for a POI-with-access-point reference, which side
// of the referenced road the point of interest lies on.
type SideOfRoad int

const (
	OnRoadOrUnknown SideOfRoad = iota
	SideRight
	SideLeft
	SideBoth
)

// Reference is implemented by the four kinds of location reference this
// module can decode. It is a closed set by design — spec.md's Non-goals
// exclude inventing further variants.
type Reference interface {
	isReference()
}

// LineLocationReference is the primary reference kind: an ordered sequence
// of at least two anchors plus relative start/end offsets.
type LineLocationReference struct {
	Points []LocationReferencePoint
	// POffs and NOffs are fractions in [0, 1) of the first/last segment's
	// length, trimming the decoded path's head/tail.
	POffs float64
	NOffs float64
}

func (LineLocationReference) isReference() {}

// PointAlongLineLocationReference locates a single point by referencing the
// two-anchor line around it plus a positive offset, in meters, measured
// from the start of the path decoded for those two anchors.
type PointAlongLineLocationReference struct {
	Points               []LocationReferencePoint // exactly 2
	PositiveOffsetMeters float64
	Orientation          Orientation
	SideOfRoad           SideOfRoad
}

func (PointAlongLineLocationReference) isReference() {}

// PoiWithAccessPointLocationReference locates a point of interest together
// with its access point on the road network; the access point is decoded
// exactly like a PointAlongLineLocationReference.
type PoiWithAccessPointLocationReference struct {
	Points               []LocationReferencePoint // exactly 2
	PositiveOffsetMeters float64
	POI                  Coordinate
	Orientation          Orientation
	SideOfRoad           SideOfRoad
}

func (PoiWithAccessPointLocationReference) isReference() {}

// GeoCoordinateLocationReference is a bare coordinate: decoding it is the
// identity function, but it is still routed through Decode so callers can
// treat all four reference kinds uniformly.
type GeoCoordinateLocationReference struct {
	Coordinate
}

func (GeoCoordinateLocationReference) isReference() {}
