package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/routes"
)

type node struct {
	id   int64
	out  []maps.Line
	in   []maps.Line
}

func (n *node) ID() int64                   { return n.id }
func (n *node) Coordinates() openlr.Coordinate { return openlr.Coordinate{} }
func (n *node) Outgoing() []maps.Line       { return n.out }
func (n *node) Incoming() []maps.Line       { return n.in }

type line struct {
	id         int64
	start, end *node
	length     float64
	frc        openlr.FRC
}

func (l *line) ID() int64                         { return l.id }
func (l *line) StartNode() maps.Node              { return l.start }
func (l *line) EndNode() maps.Node                { return l.end }
func (l *line) FRC() openlr.FRC                   { return l.frc }
func (l *line) FOW() openlr.FOW                   { return openlr.FOWSingleCarriageway }
func (l *line) Geometry() []openlr.Coordinate     { return nil }
func (l *line) Length() float64                   { return l.length }
func (l *line) DistanceTo(openlr.Coordinate) float64 { return 0 }
func (l *line) Project(openlr.Coordinate) float64    { return 0 }

// connect links a->b with a directed line of the given length/frc and
// registers it on both nodes' adjacency lists.
func connect(id int64, a, b *node, length float64, frc openlr.FRC) *line {
	l := &line{id: id, start: a, end: b, length: length, frc: frc}
	a.out = append(a.out, l)
	b.in = append(b.in, l)
	return l
}

func TestMatchSingleSegmentShortcut(t *testing.T) {
	n0, n1 := &node{id: 0}, &node{id: 1}
	l := connect(1, n0, n1, 200, openlr.FRC2)

	aPoint := routes.NewPointOnLine(l, 0.1, false)
	bCandidates := []candidate.Candidate{{Point: routes.NewPointOnLine(l, 0.6, false), Score: 0.9}}

	bounds := NewBounds(100, 0.3, 10)
	result, err := Match(aPoint, bCandidates, openlr.FRC2, bounds, false)
	require.NoError(t, err)
	assert.Empty(t, result.Route.Interior)
	assert.InDelta(t, 100, result.Route.Length(), 1)
}

func TestMatchTraversesInteriorLines(t *testing.T) {
	n0, n1, n2, n3 := &node{id: 0}, &node{id: 1}, &node{id: 2}, &node{id: 3}
	l0 := connect(0, n0, n1, 50, openlr.FRC2)
	connect(1, n1, n2, 50, openlr.FRC2)
	l2 := connect(2, n2, n3, 50, openlr.FRC2)

	aPoint := routes.NewPointOnLine(l0, 0, false)
	bCandidates := []candidate.Candidate{{Point: routes.NewPointOnLine(l2, 1, false), Score: 0.9}}

	bounds := NewBounds(150, 0.3, 10)
	result, err := Match(aPoint, bCandidates, openlr.FRC2, bounds, false)
	require.NoError(t, err)
	assert.Len(t, result.Route.Interior, 1)
	assert.InDelta(t, 150, result.Route.Length(), 1)
}

func TestMatchRejectsFRCTooLow(t *testing.T) {
	n0, n1, n2 := &node{id: 0}, &node{id: 1}, &node{id: 2}
	l0 := connect(0, n0, n1, 50, openlr.FRC2)
	l1 := connect(1, n1, n2, 50, openlr.FRC6) // too unimportant to traverse

	aPoint := routes.NewPointOnLine(l0, 0, false)
	bCandidates := []candidate.Candidate{{Point: routes.NewPointOnLine(l1, 1, false), Score: 0.9}}

	bounds := NewBounds(100, 0.3, 10)
	_, err := Match(aPoint, bCandidates, openlr.FRC2, bounds, false)
	require.Error(t, err)
	var decodeErr *openlr.LRDecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, openlr.NoRouteFound, decodeErr.Kind)
}

func TestMatchDeadEnd(t *testing.T) {
	n0, n1 := &node{id: 0}, &node{id: 1}
	l0 := connect(0, n0, n1, 50, openlr.FRC2)

	aPoint := routes.NewPointOnLine(l0, 0, false)
	other := &node{id: 2}
	otherLine := connect(9, other, other, 50, openlr.FRC2)
	bCandidates := []candidate.Candidate{{Point: routes.NewPointOnLine(otherLine, 1, false), Score: 0.9}}

	bounds := NewBounds(100, 0.3, 10)
	_, err := Match(aPoint, bCandidates, openlr.FRC2, bounds, false)
	require.Error(t, err)
	var decodeErr *openlr.LRDecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, openlr.DeadEnd, decodeErr.Kind)
}

func TestMatchNoUTurn(t *testing.T) {
	n0, n1 := &node{id: 0}, &node{id: 1}
	l0 := connect(0, n0, n1, 50, openlr.FRC2)
	back := connect(1, n1, n0, 50, openlr.FRC2) // reverse of l0

	aPoint := routes.NewPointOnLine(l0, 0, false)
	bCandidates := []candidate.Candidate{{Point: routes.NewPointOnLine(back, 1, false), Score: 0.9}}

	bounds := NewBounds(100, 0.3, 10)
	_, err := Match(aPoint, bCandidates, openlr.FRC2, bounds, false)
	require.Error(t, err)
}
