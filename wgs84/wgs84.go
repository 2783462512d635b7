// Package wgs84 provides the WGS-84 geodesy primitives the decoder is built
// on: great-circle distance and bearing, interpolation and extrapolation
// along a polyline, and polyline-length/substring/projection helpers.
//
// None of these functions return an error. Per spec.md §4.1, malformed
// input (a polyline with fewer than two points) is a caller error; the
// functions here clamp or degenerate rather than fail, so a decode never
// aborts mid-computation because of a geometry edge case.
package wgs84

import "math"

// EarthRadiusMeters is the mean radius of the spherical Earth model used
// for all great-circle calculations in this package.
const EarthRadiusMeters = 6371000.0

// Coordinate is a local alias kept in sync with openlr.Coordinate's layout
// (Lon, Lat in decimal degrees) so this package has no dependency on
// package openlr — it is the leaf of the module's import graph.
type Coordinate struct {
	Lon float64
	Lat float64
}

func toRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func toDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// Distance returns the great-circle distance between a and b, in meters,
// using the haversine formula.
func Distance(a, b Coordinate) float64 {
	lat1, lat2 := toRad(a.Lat), toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Bearing returns the initial bearing, in radians within (-π, π], of the
// great-circle path from a to b. 0 points north, positive is clockwise.
func Bearing(a, b Coordinate) float64 {
	lat1, lat2 := toRad(a.Lat), toRad(b.Lat)
	dLon := toRad(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Atan2(y, x)
}

// Extrapolate returns the destination point reached by travelling meters
// along the given bearing (degrees, clockwise from north) starting at
// coord.
func Extrapolate(coord Coordinate, meters float64, bearingDeg float64) Coordinate {
	delta := meters / EarthRadiusMeters
	theta := toRad(bearingDeg)
	lat1 := toRad(coord.Lat)
	lon1 := toRad(coord.Lon)

	sinLat2 := math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta)
	lat2 := math.Asin(sinLat2)
	y := math.Sin(theta) * math.Sin(delta) * math.Cos(lat1)
	x := math.Cos(delta) - math.Sin(lat1)*sinLat2
	lon2 := lon1 + math.Atan2(y, x)

	// Normalize longitude back into (-180, 180].
	lon2 = math.Mod(lon2+3*math.Pi, 2*math.Pi) - math.Pi

	return Coordinate{Lon: toDeg(lon2), Lat: toDeg(lat2)}
}

// LineStringLength sums the great-circle length, in meters, of each
// consecutive pair of points in polyline. A polyline of fewer than two
// points has zero length.
func LineStringLength(polyline []Coordinate) float64 {
	var total float64
	for i := 1; i < len(polyline); i++ {
		total += Distance(polyline[i-1], polyline[i])
	}

	return total
}

// Interpolate returns the coordinate meters along polyline, measured from
// index 0, linearly interpolating within whichever segment that distance
// falls in. A negative distance clamps to the first point; a distance
// beyond the polyline's length clamps to the last point.
func Interpolate(polyline []Coordinate, meters float64) Coordinate {
	if len(polyline) == 0 {
		return Coordinate{}
	}
	if len(polyline) == 1 || meters <= 0 {
		return polyline[0]
	}

	remaining := meters
	for i := 1; i < len(polyline); i++ {
		segLen := Distance(polyline[i-1], polyline[i])
		if remaining <= segLen {
			if segLen == 0 {
				return polyline[i-1]
			}
			t := remaining / segLen
			return Coordinate{
				Lon: polyline[i-1].Lon + t*(polyline[i].Lon-polyline[i-1].Lon),
				Lat: polyline[i-1].Lat + t*(polyline[i].Lat-polyline[i-1].Lat),
			}
		}
		remaining -= segLen
	}

	return polyline[len(polyline)-1]
}

// cartesianLength sums the planar (lon, lat treated as Cartesian x, y)
// length of polyline. It has no geodesic meaning on its own; it exists
// only so NormalizedFraction and SubstringNormalized can locate the
// closest point on a polyline the same way a planar-geometry library
// (e.g. the shapely-based Python original this module is ported from)
// would, before converting the result back to a real arc-length fraction.
func cartesianLength(polyline []Coordinate) float64 {
	var total float64
	for i := 1; i < len(polyline); i++ {
		dx := polyline[i].Lon - polyline[i-1].Lon
		dy := polyline[i].Lat - polyline[i-1].Lat
		total += math.Hypot(dx, dy)
	}

	return total
}

// NormalizedFraction returns the parametric fraction, in [0, 1], of the
// point on polyline closest to target, computed in planar (lon, lat)
// space. It is the first step of Project; see that function's doc for why
// this two-step approach is used.
func NormalizedFraction(polyline []Coordinate, target Coordinate) float64 {
	if len(polyline) < 2 {
		return 0
	}

	total := cartesianLength(polyline)
	if total == 0 {
		return 0
	}

	var bestDist = math.Inf(1)
	var bestCumulative float64
	var cumulative float64

	for i := 1; i < len(polyline); i++ {
		p0, p1 := polyline[i-1], polyline[i]
		dx := p1.Lon - p0.Lon
		dy := p1.Lat - p0.Lat
		segLen := math.Hypot(dx, dy)

		var t float64
		if segLen > 0 {
			t = ((target.Lon-p0.Lon)*dx + (target.Lat-p0.Lat)*dy) / (segLen * segLen)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}

		projLon := p0.Lon + t*dx
		projLat := p0.Lat + t*dy
		dist := math.Hypot(target.Lon-projLon, target.Lat-projLat)

		if dist < bestDist {
			bestDist = dist
			bestCumulative = cumulative + t*segLen
		}

		cumulative += segLen
	}

	return bestCumulative / total
}

// SubstringNormalized returns the portion of polyline between the two
// planar-parametric fractions from/to (each clamped to [0, 1]), inserting
// interpolated endpoints so the result starts and ends exactly at those
// fractions. from must be <= to; an empty result is returned otherwise.
func SubstringNormalized(polyline []Coordinate, from, to float64) []Coordinate {
	if from > to || len(polyline) < 2 {
		return nil
	}
	from = clamp01(from)
	to = clamp01(to)

	total := cartesianLength(polyline)
	if total == 0 {
		return []Coordinate{polyline[0], polyline[len(polyline)-1]}
	}

	fromLen := from * total
	toLen := to * total

	var result []Coordinate
	var cumulative float64

	for i := 1; i < len(polyline); i++ {
		p0, p1 := polyline[i-1], polyline[i]
		segLen := math.Hypot(p1.Lon-p0.Lon, p1.Lat-p0.Lat)
		segStart := cumulative
		segEnd := cumulative + segLen

		if segEnd >= fromLen && segStart <= toLen {
			// The [fromLen, toLen] window overlaps this segment: emit the
			// clipped start point (once) and the clipped end point.
			start := p0
			if fromLen > segStart && segLen > 0 {
				t := (fromLen - segStart) / segLen
				start = lerp(p0, p1, t)
			}
			if len(result) == 0 {
				result = append(result, start)
			}

			end := p1
			if toLen < segEnd && segLen > 0 {
				t := (toLen - segStart) / segLen
				end = lerp(p0, p1, t)
			}
			result = append(result, end)
		}

		cumulative = segEnd
		if segStart > toLen {
			break
		}
	}

	if len(result) == 0 {
		return []Coordinate{polyline[0]}
	}

	return result
}

func lerp(a, b Coordinate, t float64) Coordinate {
	return Coordinate{Lon: a.Lon + t*(b.Lon-a.Lon), Lat: a.Lat + t*(b.Lat-a.Lat)}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Project finds the point on polyline closest to target and returns its
// length-proportional fraction (arc length from polyline's start, divided
// by polyline's total arc length) together with the great-circle distance
// from target to that point, in meters.
//
// The closest point itself is located in planar (lon, lat) space first
// (NormalizedFraction), matching how the Python original this module is
// ported from uses shapely's Cartesian project/substring; the result is
// then re-expressed as a real arc-length fraction so PointOnLine.Fraction
// stays meters-accurate by default (spec.md §3, §9).
func Project(polyline []Coordinate, target Coordinate) (fraction float64, distanceMeters float64) {
	if len(polyline) < 2 {
		if len(polyline) == 1 {
			return 0, Distance(polyline[0], target)
		}
		return 0, 0
	}

	normFrac := NormalizedFraction(polyline, target)
	totalMeters := LineStringLength(polyline)
	if totalMeters == 0 {
		return 0, Distance(polyline[0], target)
	}

	sub := SubstringNormalized(polyline, 0, normFrac)
	metersToProjection := LineStringLength(sub)
	fraction = metersToProjection / totalMeters

	projected := Interpolate(polyline, metersToProjection)

	return fraction, Distance(target, projected)
}
