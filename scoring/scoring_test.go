package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

func TestFRCScoreExtremes(t *testing.T) {
	assert.Equal(t, 0.0, FRC(openlr.FRC0, openlr.FRC7))
	assert.Equal(t, 0.0, FRC(openlr.FRC7, openlr.FRC0))
}

func TestFRCScoreEqual(t *testing.T) {
	assert.Equal(t, 1.0, FRC(openlr.FRC0, openlr.FRC0))
}

func TestAngleDifference(t *testing.T) {
	cases := []struct {
		arc  float64
		want float64
	}{
		{-360, 1.0},
		{-720, 1.0},
		{0, 1.0},
		{180, 0.0},
		{540, 0.0},
		{720, 1.0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, AngleDifference(0, c.arc), 0.001)
	}
}

func TestAngleDifferenceFrom271(t *testing.T) {
	cases := []struct {
		arc  float64
		want float64
	}{
		{-89, 1.0},
		{91, 0.0},
		{181, 0.5},
		{226, 0.75},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, AngleDifference(271, c.arc), 0.001)
	}
}

func TestGeoScoreClampsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, Geo(200, 100))
	assert.Equal(t, 1.0, Geo(0, 100))
	assert.InDelta(t, 0.5, Geo(50, 100), 1e-9)
}

func TestDefaultFOWMatrixDiagonalAndUndefined(t *testing.T) {
	m := DefaultFOWMatrix()

	for fow := openlr.FOWUndefined; fow <= openlr.FOWOther; fow++ {
		if fow == openlr.FOWUndefined {
			assert.Equal(t, 0.5, m.At(fow, fow))
			continue
		}
		assert.Equal(t, 1.0, m.At(fow, fow))
	}

	assert.InDelta(t, 0.5, m.At(openlr.FOWUndefined, openlr.FOWOther), 1e-9)
	assert.InDelta(t, 0.5, m.At(openlr.FOWOther, openlr.FOWUndefined), 1e-9)
}

func TestCombineWeightsEvenSplit(t *testing.T) {
	w := DefaultWeights()
	got := Combine(w, 1, 1, 1, 1)
	assert.InDelta(t, 1.0, got, 1e-9)

	got = Combine(w, 0, 0, 0, 0)
	assert.Equal(t, 0.0, got)
}
