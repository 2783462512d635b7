package wgs84

// SubstringByLength returns the portion of polyline between the two
// arc-length distances fromMeters and toMeters (each clamped to
// [0, total length]), inserting interpolated endpoints. This is the
// length-proportional counterpart to SubstringNormalized, used once a
// PointOnLine's fraction is already known to be meters-accurate (the
// default interpretation, spec.md §3).
func SubstringByLength(polyline []Coordinate, fromMeters, toMeters float64) []Coordinate {
	if len(polyline) < 2 || fromMeters > toMeters {
		return nil
	}

	total := LineStringLength(polyline)
	if fromMeters < 0 {
		fromMeters = 0
	}
	if toMeters > total {
		toMeters = total
	}

	var result []Coordinate
	var cumulative float64

	for i := 1; i < len(polyline); i++ {
		p0, p1 := polyline[i-1], polyline[i]
		segLen := Distance(p0, p1)
		segStart := cumulative
		segEnd := cumulative + segLen

		if segEnd >= fromMeters && segStart <= toMeters {
			start := p0
			if fromMeters > segStart && segLen > 0 {
				start = lerp(p0, p1, (fromMeters-segStart)/segLen)
			}
			if len(result) == 0 {
				result = append(result, start)
			}

			end := p1
			if toMeters < segEnd && segLen > 0 {
				end = lerp(p0, p1, (toMeters-segStart)/segLen)
			}
			result = append(result, end)
		}

		cumulative = segEnd
		if segStart > toMeters {
			break
		}
	}

	if len(result) == 0 {
		return []Coordinate{polyline[0]}
	}

	return result
}
