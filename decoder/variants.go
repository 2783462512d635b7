package decoder

import (
	"context"

	"github.com/openlr-community/openlr-dereferencer-go/config"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/observer"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/routes"
)

// decodePointAlongLine and decodePoiWithAccessPoint both reduce to the
// line-location case (spec.md §4.7's Non-goals: "specialized location
// reference variants whose decoding reduces trivially to the line-location
// case"): decode the reference's two anchors as an ordinary, untrimmed
// line location, then locate the single point PositiveOffsetMeters into
// the resulting route.
func decodePointAlongLine(ctx context.Context, ref openlr.PointAlongLineLocationReference, m maps.Map, cfg config.Config, obs observer.Observer, equalArea bool) (Location, error) {
	point, err := resolveOffsetPoint(ctx, ref.Points, ref.PositiveOffsetMeters, m, cfg, obs, equalArea)
	if err != nil {
		return nil, err
	}

	return PointAlongLine{
		Point:       point,
		Orientation: ref.Orientation,
		SideOfRoad:  ref.SideOfRoad,
	}, nil
}

func decodePoiWithAccessPoint(ctx context.Context, ref openlr.PoiWithAccessPointLocationReference, m maps.Map, cfg config.Config, obs observer.Observer, equalArea bool) (Location, error) {
	point, err := resolveOffsetPoint(ctx, ref.Points, ref.PositiveOffsetMeters, m, cfg, obs, equalArea)
	if err != nil {
		return nil, err
	}

	return PoiWithAccessPoint{
		AccessPoint: PointAlongLine{
			Point:       point,
			Orientation: ref.Orientation,
			SideOfRoad:  ref.SideOfRoad,
		},
		POI: ref.POI,
	}, nil
}

// resolveOffsetPoint decodes points (exactly two anchors) as an untrimmed
// line location and walks offsetMeters into the resulting route to find
// the line and fraction the offset lands on.
func resolveOffsetPoint(ctx context.Context, points []openlr.LocationReferencePoint, offsetMeters float64, m maps.Map, cfg config.Config, obs observer.Observer, equalArea bool) (routes.PointOnLine, error) {
	if len(points) != 2 {
		return routes.PointOnLine{}, openlr.NewDecodeError(openlr.InvalidReference, "a point-along-line reference needs exactly two anchors")
	}

	route, err := decodeLineReference(ctx, openlr.LineLocationReference{Points: points}, m, cfg, obs, equalArea)
	if err != nil {
		return routes.PointOnLine{}, err
	}

	remaining := offsetMeters + route.AbsoluteStartOffset()
	for _, line := range route.Lines() {
		if remaining <= line.Length() {
			return routes.FromAbsoluteOffset(line, remaining, equalArea), nil
		}
		remaining -= line.Length()
	}

	// The offset reaches past the route's end: clamp to the last line's end.
	lines := route.Lines()
	lastLine := lines[len(lines)-1]
	return routes.FromAbsoluteOffset(lastLine, lastLine.Length(), equalArea), nil
}
