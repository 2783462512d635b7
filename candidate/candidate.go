// Package candidate nominates, scores, and ranks the segments a map offers
// near one anchor of a location reference (spec.md §4.4).
package candidate

import (
	"context"
	"math"
	"sort"

	"github.com/openlr-community/openlr-dereferencer-go/config"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/routes"
	"github.com/openlr-community/openlr-dereferencer-go/scoring"
	"github.com/openlr-community/openlr-dereferencer-go/wgs84"
)

// Candidate is a line (possibly entered mid-segment) proposed to match one
// anchor, together with its combined score in [0, 1].
type Candidate struct {
	Point routes.PointOnLine
	Score float64
}

// Observer receives nomination events. It is a minimal, consumer-defined
// interface (package observer implements it structurally) so this package
// never has to import package observer.
type Observer interface {
	OnCandidateFound(lrp openlr.LocationReferencePoint, c Candidate)
	OnCandidateRejected(lrp openlr.LocationReferencePoint, line maps.Line, reason string)
}

// MakeCandidate projects lrp onto line and scores the result, returning
// nil if the line is unusable (zero length), falls outside the search
// radius, or fails the MaxBearDeviation bearing pre-filter. isLastAnchor selects which half of the split line bearing is
// measured along (spec.md §4.3: forward for non-last anchors, backward
// for the last).
func MakeCandidate(lrp openlr.LocationReferencePoint, line maps.Line, cfg config.Config, equalArea bool, isLastAnchor bool) *Candidate {
	if line.Length() == 0 {
		return nil
	}

	anchorCoord := lrp.Coordinate
	dist := line.DistanceTo(anchorCoord)
	if dist > cfg.SearchRadius {
		return nil
	}

	fraction := line.Project(anchorCoord)
	point := routes.NewPointOnLine(line, fraction, equalArea)

	// Partial-line rule (spec.md §4.4 step 2): snap to the segment start
	// unless the projection has traveled far enough past it.
	if point.AbsoluteOffset() <= cfg.CandidateThreshold {
		point = routes.NewPointOnLine(line, 0, equalArea)
	}

	candBearing := computeBearing(point, isLastAnchor, cfg.BearDist)
	if cfg.MaxBearDeviation != nil {
		if circularDiff(lrp.Bearing, candBearing) > *cfg.MaxBearDeviation {
			return nil
		}
	}

	scoreGeo := scoring.Geo(dist, cfg.SearchRadius)
	scoreBearing := scoring.AngleDifference(lrp.Bearing, candBearing)
	scoreFRC := scoring.FRC(lrp.FRC, line.FRC())
	scoreFOW := cfg.FOWStandinScore.At(lrp.FOW, line.FOW())

	combined := scoring.Combine(cfg.Weights, scoreGeo, scoreBearing, scoreFRC, scoreFOW)

	return &Candidate{Point: point, Score: combined}
}

// computeBearing measures the bearing of the partial line starting at
// point: forward along the line past the point for non-last anchors,
// backward (from the point towards the line's start, reversed) for the
// last anchor. Ported from path_math.compute_bearing.
func computeBearing(point routes.PointOnLine, isLastAnchor bool, bearDist float64) float64 {
	before, after := point.Split()

	var coords []openlr.Coordinate
	if isLastAnchor {
		if len(before) < 2 {
			return 0
		}
		coords = reverseCoords(before)
	} else {
		if len(after) < 2 {
			return 0
		}
		coords = after
	}

	wgsCoords := make([]wgs84.Coordinate, len(coords))
	for i, c := range coords {
		wgsCoords[i] = wgs84.Coordinate{Lon: c.Lon, Lat: c.Lat}
	}

	bp := wgs84.Interpolate(wgsCoords, bearDist)
	b := wgs84.Bearing(wgsCoords[0], bp)
	return math.Mod(toDeg(b)+360, 360)
}

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

func reverseCoords(cs []openlr.Coordinate) []openlr.Coordinate {
	out := make([]openlr.Coordinate, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

func circularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Nominate runs the full candidate-nomination procedure for one anchor
// (spec.md §4.4): query the map, score every surviving line, and return
// the candidates in descending score order. obs may be nil.
func Nominate(ctx context.Context, m maps.Map, lrp openlr.LocationReferencePoint, cfg config.Config, equalArea bool, isLastAnchor bool, obs Observer) ([]Candidate, error) {
	lines, err := m.LinesCloseTo(ctx, lrp.Coordinate, cfg.SearchRadius)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(lines))
	for _, line := range lines {
		if line.Length() == 0 {
			notifyRejected(obs, lrp, line, "zero-length line")
			continue
		}

		c := MakeCandidate(lrp, line, cfg, equalArea, isLastAnchor)
		if c == nil {
			notifyRejected(obs, lrp, line, "outside search radius or bearing pre-filter")
			continue
		}
		if c.Score < cfg.MinScore {
			notifyRejected(obs, lrp, line, "score below min_score")
			continue
		}

		candidates = append(candidates, *c)
		if obs != nil {
			obs.OnCandidateFound(lrp, *c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Point.Line.ID() < candidates[j].Point.Line.ID()
	})

	return candidates, nil
}

func notifyRejected(obs Observer, lrp openlr.LocationReferencePoint, line maps.Line, reason string) {
	if obs != nil {
		obs.OnCandidateRejected(lrp, line, reason)
	}
}
