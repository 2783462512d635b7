// Package decoder implements the top-level entry point: DFS backtracking
// across anchor pairs (spec.md §4.6), offset trimming, and dispatch over
// the four reference kinds a location reference may take (spec.md §6).
package decoder

import (
	"context"

	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/config"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/match"
	"github.com/openlr-community/openlr-dereferencer-go/observer"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/routes"
)

// Decode resolves any of the four supported reference kinds against m
// (spec.md §6). cfg is used as given and is not validated here; callers
// normally pass config.Default() or an override that passes Validate.
// obs may be nil.
func Decode(ctx context.Context, reference openlr.Reference, m maps.Map, cfg config.Config, obs observer.Observer, equalArea bool) (Location, error) {
	// Every call site below reaches obs only through this wrapper, so a
	// panicking callback is recovered here once rather than trusted to
	// behave at each of its many call sites (spec.md §9).
	if obs != nil {
		safe := observer.NewSafe(obs, nil)
		obs = safe
	}

	switch ref := reference.(type) {
	case openlr.LineLocationReference:
		route, err := decodeLineReference(ctx, ref, m, cfg, obs, equalArea)
		if err != nil {
			return nil, err
		}
		return LineLocation{Route: route}, nil

	case openlr.PointAlongLineLocationReference:
		return decodePointAlongLine(ctx, ref, m, cfg, obs, equalArea)

	case openlr.PoiWithAccessPointLocationReference:
		return decodePoiWithAccessPoint(ctx, ref, m, cfg, obs, equalArea)

	case openlr.GeoCoordinateLocationReference:
		return GeoCoordinate{Coordinate: ref.Coordinate}, nil

	default:
		return nil, openlr.NewDecodeError(openlr.InvalidReference, "unsupported reference kind")
	}
}

// decodeLineReference is the DFS-backtracking core of spec.md §4.6,
// shared by the line-location path and the point-along-line/POI variants
// (which decode their two-anchor line first and interpret the result).
func decodeLineReference(ctx context.Context, ref openlr.LineLocationReference, m maps.Map, cfg config.Config, obs observer.Observer, equalArea bool) (routes.Route, error) {
	points := ref.Points
	if len(points) < 2 {
		return routes.Route{}, openlr.NewDecodeError(openlr.InvalidReference, "a line location reference needs at least two anchors")
	}

	n := len(points)
	candidatesByAnchor := make([][]candidate.Candidate, n)
	chosenIdx := make([]int, n)
	pairRoutes := make([]routes.Route, n-1)

	nominate := func(i int) error {
		if candidatesByAnchor[i] != nil {
			return nil
		}
		cands, err := candidate.Nominate(ctx, m, points[i], cfg, equalArea, i == n-1, obs)
		if err != nil {
			return err
		}
		if len(cands) == 0 {
			cands = []candidate.Candidate{}
		}
		candidatesByAnchor[i] = cands
		return nil
	}

	if err := nominate(0); err != nil {
		return routes.Route{}, err
	}
	if len(candidatesByAnchor[0]) == 0 {
		return routes.Route{}, openlr.NewDecodeError(openlr.NoCandidates, "no candidates found for the first anchor")
	}

	// i==0 retries its own candidate list directly on failure: anchor 0 has
	// no predecessor, so trying its next-best candidate never invalidates
	// an already-recorded partial route. For i>0, a chosen[i] that fails
	// to reach anchor i+1 is abandoned outright and the decoder backs off
	// to the predecessor instead of substituting a different candidate of
	// anchor i in place: chosen[i] is always exactly the candidate the
	// predecessor's match produced (pairRoutes[i-1].Chosen), and swapping
	// it independently would leave pairRoutes[i-1] pointing at a point the
	// route no longer passes through. Backing off lets the predecessor's
	// own retry naturally produce a different chosen[i] next time.
	i := 0
	for i < n-1 {
		if err := nominate(i + 1); err != nil {
			return routes.Route{}, err
		}

		if chosenIdx[i] >= len(candidatesByAnchor[i]) {
			if obs != nil {
				obs.OnMatchingFail(points[i], points[i+1], candidatesByAnchor[i], candidatesByAnchor[i+1], "every candidate of this anchor was exhausted")
			}
			if i == 0 {
				return routes.Route{}, openlr.NewDecodeError(openlr.NoMatch, "backtracking exhausted every candidate combination")
			}
			i--
			chosenIdx[i]++
			continue
		}

		aCand := candidatesByAnchor[i][chosenIdx[i]]

		lowestFRC := cfg.LowestAcceptableFRC(*points[i].LowestFRCToNext)
		bounds := match.NewBounds(*points[i].DistanceToNext, cfg.MaxDNPDeviation, cfg.TolerableDNPDev)

		result, err := match.Match(aCand.Point, candidatesByAnchor[i+1], lowestFRC, bounds, equalArea)
		if err != nil {
			notifyRouteFail(obs, points[i], points[i+1], aCand.Point.Line, err)

			if i == 0 {
				chosenIdx[0]++
				continue
			}

			if obs != nil {
				obs.OnMatchingFail(points[i], points[i+1], candidatesByAnchor[i], candidatesByAnchor[i+1], "this anchor's candidate did not yield a route")
			}
			i--
			chosenIdx[i]++
			continue
		}

		pairRoutes[i] = result.Route
		chosenIdx[i+1] = indexOfCandidate(candidatesByAnchor[i+1], result.Chosen)
		notifyRouteSuccess(obs, points[i], points[i+1], aCand.Point.Line, result)
		i++
	}

	combined := routes.Combine(pairRoutes, equalArea)
	pOff := ref.POffs * combined.Start.Line.Length()
	nOff := ref.NOffs * combined.End.Line.Length()
	trimmed, err := routes.RemoveOffsets(combined, pOff, nOff)
	if err != nil {
		return routes.Route{}, err
	}

	return trimmed, nil
}

func indexOfCandidate(cands []candidate.Candidate, target candidate.Candidate) int {
	for i, c := range cands {
		if c.Point.Line.ID() == target.Point.Line.ID() && c.Point.Fraction == target.Point.Fraction {
			return i
		}
	}
	return 0
}

func notifyRouteFail(obs observer.Observer, from, to openlr.LocationReferencePoint, fromLine maps.Line, err error) {
	if obs == nil {
		return
	}
	reason := err.Error()
	obs.OnRouteFail(from, to, fromLine, nil, reason)
}

func notifyRouteSuccess(obs observer.Observer, from, to openlr.LocationReferencePoint, fromLine maps.Line, result *match.Result) {
	if obs == nil {
		return
	}
	obs.OnRouteSuccess(from, to, fromLine, result.Chosen.Point.Line, result.Route.Lines())
}
