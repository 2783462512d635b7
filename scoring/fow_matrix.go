// Package scoring implements the four independent candidate scores (geo,
// bearing, road class, form-of-way) and their weighted combination.
//
// The 8x8 form-of-way similarity table is modeled as a row-major matrix in
// the style of matrix.Dense: a flat backing slice addressed by
// row*8+col, rather than a slice-of-slices. Unlike matrix.Dense it is fixed
// at 8x8 and never resized, so it skips Dense's general-purpose error
// plumbing (ErrOutOfRange, View, Induced) in favor of a small value type
// that is cheap to copy into a Config.
package scoring

import "github.com/openlr-community/openlr-dereferencer-go/openlr"

// fowDim is the number of FormOfWay values the matrix is indexed by.
const fowDim = 8

// FOWMatrix holds the similarity score between an anchor's form-of-way and
// a candidate's form-of-way. FOWMatrix[anchorFOW][candidateFOW] is the
// score contributed to a candidate whose form of way is candidateFOW when
// the anchor declared anchorFOW.
type FOWMatrix struct {
	data [fowDim * fowDim]float64
}

// At returns the similarity score for (anchorFOW, candidateFOW). Both
// arguments are clamped into [0, fowDim) so an out-of-range FOW (which
// openlr.FOW.Valid would already have rejected on decode of the wire
// format) reads a valid entry rather than panicking: a negative value
// reads the "undefined" row/column, a value of fowDim or more the last
// ("other") one.
func (m FOWMatrix) At(anchorFOW, candidateFOW openlr.FOW) float64 {
	a := clampFOW(anchorFOW)
	c := clampFOW(candidateFOW)
	return m.data[a*fowDim+c]
}

// Set assigns the similarity score for (anchorFOW, candidateFOW). It is
// exposed so callers can build custom matrices without going through a
// literal [8][8]float64.
func (m *FOWMatrix) Set(anchorFOW, candidateFOW openlr.FOW, score float64) {
	a := clampFOW(anchorFOW)
	c := clampFOW(candidateFOW)
	m.data[a*fowDim+c] = score
}

func clampFOW(f openlr.FOW) int {
	if f < 0 {
		return 0
	}
	if int(f) >= fowDim {
		return fowDim - 1
	}
	return int(f)
}

// DefaultFOWMatrix is the similarity table adopted from the OpenLR Java
// reference implementation: the diagonal is 1.0 except undefined-undefined,
// which is 0.5; the whole "undefined" row and column is 0.5. It is used
// verbatim rather than derived or symmetrized.
func DefaultFOWMatrix() FOWMatrix {
	rows := [fowDim][fowDim]float64{
		{0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50}, // Undefined
		{0.50, 1.00, 0.75, 0.00, 0.00, 0.00, 0.00, 0.00}, // Motorway
		{0.50, 0.75, 1.00, 0.75, 0.50, 0.00, 0.00, 0.00}, // MultipleCarriageway
		{0.50, 0.00, 0.75, 1.00, 0.50, 0.50, 0.00, 0.00}, // SingleCarriageway
		{0.50, 0.00, 0.50, 0.50, 1.00, 0.50, 0.00, 0.00}, // Roundabout
		{0.50, 0.00, 0.00, 0.50, 0.50, 1.00, 0.00, 0.00}, // TrafficSquare
		{0.50, 0.00, 0.00, 0.00, 0.00, 0.00, 1.00, 0.00}, // SlipRoad
		{0.50, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 1.00}, // Other
	}

	var m FOWMatrix
	for a := 0; a < fowDim; a++ {
		for c := 0; c < fowDim; c++ {
			m.data[a*fowDim+c] = rows[a][c]
		}
	}
	return m
}
