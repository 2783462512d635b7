package scoring

import (
	"math"

	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// Weights are the convex-combination coefficients over the four candidate
// scores. They need not sum to 1, but in practice should.
type Weights struct {
	Geo     float64
	Bearing float64
	FRC     float64
	FOW     float64
}

// DefaultWeights splits the combined score evenly across all four terms.
func DefaultWeights() Weights {
	return Weights{Geo: 0.25, Bearing: 0.25, FRC: 0.25, FOW: 0.25}
}

// Geo scores a candidate by how close its projected point sits to the
// anchor, relative to the search radius: 1.0 when the candidate sits
// exactly on the anchor, 0.0 once distanceMeters reaches or exceeds
// searchRadiusMeters.
func Geo(distanceMeters, searchRadiusMeters float64) float64 {
	if searchRadiusMeters <= 0 {
		return 0
	}
	score := 1 - distanceMeters/searchRadiusMeters
	return math.Max(0, score)
}

// AngleDifference scores how close two bearings (degrees) are, folding
// the 360-degree wraparound: identical bearings score 1.0, bearings 180
// degrees apart score 0.0.
func AngleDifference(a, b float64) float64 {
	diff := circularDiff(a, b)
	return 1 - diff/180
}

// circularDiff returns the smaller of the two arcs between a and b,
// mod 360, in [0, 180].
func circularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// FRC scores the ordinal distance between two functional road classes: 1.0
// for equal classes, decreasing linearly to 0.0 at the maximal distance
// between FRC0 and FRC7.
func FRC(anchor, candidate openlr.FRC) float64 {
	diff := anchor - candidate
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/7
}

// Combine folds the four per-criterion scores into the overall candidate
// score using w.
func Combine(w Weights, geo, bearing, frc, fow float64) float64 {
	return w.Geo*geo + w.Bearing*bearing + w.FRC*frc + w.FOW*fow
}
