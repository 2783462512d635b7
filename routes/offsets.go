package routes

import (
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// RemoveOffsets trims pOff meters from the start and nOff meters from the
// end of route and returns the resulting, shorter Route. Whole lines fully
// consumed by an offset are dropped; the new start/end lines keep whatever
// fraction of themselves remains.
//
// It returns an *openlr.LRDecodeError of kind OffsetsTooLarge if pOff+nOff
// is at least route.Length() (ported from
// openlr_dereferencer.decoding.path_math.remove_offsets).
func RemoveOffsets(route Route, pOff, nOff float64) (Route, error) {
	lines := route.Lines()
	if pOff+nOff >= route.Length() {
		return Route{}, openlr.NewDecodeError(openlr.OffsetsTooLarge, "offsets exceed the route length")
	}

	remainingPOff := pOff + route.AbsoluteStartOffset()
	for len(lines) > 0 && remainingPOff >= lines[0].Length() {
		remainingPOff -= lines[0].Length()
		lines = lines[1:]
		if len(lines) == 0 {
			return Route{}, openlr.NewDecodeError(openlr.OffsetsTooLarge, "positive offset exceeds the route")
		}
	}

	remainingNOff := nOff + route.AbsoluteEndOffset()
	for len(lines) > 0 && remainingNOff >= lines[len(lines)-1].Length() {
		remainingNOff -= lines[len(lines)-1].Length()
		lines = lines[:len(lines)-1]
		if len(lines) == 0 {
			return Route{}, openlr.NewDecodeError(openlr.OffsetsTooLarge, "negative offset exceeds the route")
		}
	}

	var startLine, endLine maps.Line
	var interior []maps.Line

	startLine = lines[0]
	rest := lines[1:]
	if len(rest) > 0 {
		endLine = rest[len(rest)-1]
		interior = rest[:len(rest)-1]
	} else {
		endLine = startLine
	}

	equalArea := route.Start.EqualArea
	return Route{
		Start:    FromAbsoluteOffset(startLine, remainingPOff, equalArea),
		Interior: interior,
		End:      FromAbsoluteOffset(endLine, endLine.Length()-remainingNOff, equalArea),
	}, nil
}
