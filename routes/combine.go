package routes

import "github.com/openlr-community/openlr-dereferencer-go/maps"

// Combine concatenates the per-anchor-pair partial routes produced by the
// pairwise matcher into the single route describing the whole location
// reference (spec.md §4.6 step 3): when the last line of one part equals
// the first line of the next, that shared boundary line is kept once.
//
// parts must be non-empty. equalArea selects the fraction interpretation
// of the combined route's Start/End points.
func Combine(parts []Route, equalArea bool) Route {
	var lines []maps.Line
	for _, part := range parts {
		for _, line := range part.Lines() {
			if len(lines) > 0 && lines[len(lines)-1].ID() == line.ID() {
				lines = lines[:len(lines)-1]
			}
			lines = append(lines, line)
		}
	}

	startLine := lines[0]
	rest := lines[1:]

	start := PointOnLine{Line: startLine, Fraction: parts[0].Start.Fraction, EqualArea: equalArea}

	var end PointOnLine
	var interior []maps.Line
	if len(rest) > 0 {
		endLine := rest[len(rest)-1]
		interior = rest[:len(rest)-1]
		end = PointOnLine{Line: endLine, Fraction: parts[len(parts)-1].End.Fraction, EqualArea: equalArea}
	} else {
		end = PointOnLine{Line: startLine, Fraction: parts[len(parts)-1].End.Fraction, EqualArea: equalArea}
	}

	return Route{Start: start, Interior: interior, End: end}
}
