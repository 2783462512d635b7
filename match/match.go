// Package match implements the pairwise route matcher (spec.md §4.5): given
// a candidate point on the map for one anchor and the nominated candidates
// of the next anchor, find the route between them that best satisfies the
// declared distance-to-next-point and FRC constraints.
//
// The search itself is a lazy-decrease-key Dijkstra over the map's nodes,
// the same shape as dijkstra.Dijkstra's container/heap priority queue and
// "push duplicates, skip stale pops on a visited check" strategy — adapted
// from a string-keyed graph with integer edge weights to an int64-node-keyed
// graph with float64 meters as edge weights, and generalized with the
// FRC filter, length-bound pruning, and no-U-turn pruning spec.md requires.
package match

import (
	"container/heap"

	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/routes"
)

// Bounds is the admissible route-length window, computed by the caller
// from an anchor's declared distance-to-next-point and the config's
// relative/additive tolerances (spec.md §4.5).
type Bounds struct {
	Lower float64
	Upper float64
}

// NewBounds derives [lower, upper] from the expected DNP and the
// configured deviation tolerances. Lower never goes negative.
func NewBounds(expectedDNP, maxDeviation, tolerableDev float64) Bounds {
	lower := expectedDNP*(1-maxDeviation) - tolerableDev
	if lower < 0 {
		lower = 0
	}
	upper := expectedDNP*(1+maxDeviation) + tolerableDev

	return Bounds{Lower: lower, Upper: upper}
}

// contains reports whether length falls within the bounds, inclusive.
func (b Bounds) contains(length float64) bool {
	return length >= b.Lower && length <= b.Upper
}

// Result is a successful pairwise match: the route found and which of the
// candidates of the next anchor it resolved to.
type Result struct {
	Route  routes.Route
	Chosen candidate.Candidate
}

// Match finds a route from aPoint to the highest-scoring reachable
// candidate in bCandidates (which must already be sorted in descending
// score order, as candidate.Nominate returns them), honoring bounds and
// the FRC filter. equalArea selects the fraction interpretation of the
// returned route's endpoints.
//
// It returns an *openlr.LRDecodeError of kind DeadEnd, DnpOutOfRange, or
// NoRouteFound when no candidate yields a valid route.
func Match(aPoint routes.PointOnLine, bCandidates []candidate.Candidate, lowestAcceptableFRC openlr.FRC, bounds Bounds, equalArea bool) (*Result, error) {
	if len(bCandidates) == 0 {
		return nil, openlr.NewDecodeError(openlr.NoRouteFound, "next anchor has no candidates")
	}

	aLine := aPoint.Line
	startNode := aLine.EndNode()

	// Single-segment shortcut (spec.md §4.5): a B-candidate on the same
	// line, ahead of A, needs no graph search at all.
	for _, b := range bCandidates {
		if b.Point.Line.ID() != aLine.ID() {
			continue
		}
		if b.Point.Fraction < aPoint.Fraction {
			continue
		}
		length := (b.Point.Fraction - aPoint.Fraction) * aLine.Length()
		if bounds.contains(length) {
			route := routes.Route{
				Start: routes.NewPointOnLine(aLine, aPoint.Fraction, equalArea),
				End:   routes.NewPointOnLine(aLine, b.Point.Fraction, equalArea),
			}
			return &Result{Route: route, Chosen: b}, nil
		}
	}

	if len(startNode.Outgoing()) == 0 {
		return nil, openlr.NewDecodeError(openlr.DeadEnd, "candidate segment's end node has no outgoing lines")
	}

	search := newSearch(startNode, aLine, (1-aPoint.Fraction)*aLine.Length(), lowestAcceptableFRC, bounds.Upper)
	search.run()

	best, ok := pickBest(search, bCandidates, bounds)
	if !ok {
		unfiltered := newSearch(startNode, aLine, (1-aPoint.Fraction)*aLine.Length(), -1, bounds.Upper)
		unfiltered.run()
		if _, reachable := pickBest(unfiltered, bCandidates, bounds); !reachable {
			return nil, openlr.NewDecodeError(openlr.DnpOutOfRange, "no path exists within the DNP tolerance even without the FRC filter")
		}
		return nil, openlr.NewDecodeError(openlr.NoRouteFound, "no FRC-admissible path found within the DNP tolerance")
	}

	interior := search.pathTo(best.b.Point.Line.StartNode().ID())
	route := routes.Route{
		Start:    routes.NewPointOnLine(aLine, aPoint.Fraction, equalArea),
		Interior: interior,
		End:      routes.NewPointOnLine(best.b.Point.Line, best.b.Point.Fraction, equalArea),
	}

	return &Result{Route: route, Chosen: best.b}, nil
}

type foundCandidate struct {
	b      candidate.Candidate
	length float64
}

// pickBest returns the highest-scoring candidate (bCandidates is already
// sorted descending by score) whose route length lands within bounds,
// using search's settled distances.
func pickBest(search *search, bCandidates []candidate.Candidate, bounds Bounds) (foundCandidate, bool) {
	for _, b := range bCandidates {
		startNode := b.Point.Line.StartNode().ID()
		baseDist, ok := search.dist[startNode]
		if !ok {
			continue
		}
		if !search.frcOK(b.Point.Line) {
			continue
		}
		if isReverseOf(b.Point.Line, search.prevLine[startNode]) {
			continue
		}
		length := baseDist + b.Point.Fraction*b.Point.Line.Length()
		if bounds.contains(length) {
			return foundCandidate{b: b, length: length}, true
		}
	}
	return foundCandidate{}, false
}

// search is one run of the node-keyed Dijkstra described in this
// package's doc comment.
type search struct {
	startNode   maps.Node
	startCost   float64
	lowestFRC   openlr.FRC
	filterFRC   bool
	upperBound  float64
	dist        map[int64]float64
	prevLine    map[int64]maps.Line
	prevNode    map[int64]int64
	visited     map[int64]bool
}

func newSearch(startNode maps.Node, startLine maps.Line, startCost float64, lowestFRC openlr.FRC, upperBound float64) *search {
	return &search{
		startNode:  startNode,
		startCost:  startCost,
		lowestFRC:  lowestFRC,
		filterFRC:  lowestFRC >= openlr.FRC0,
		upperBound: upperBound,
		dist:       map[int64]float64{startNode.ID(): startCost},
		prevLine:   map[int64]maps.Line{startNode.ID(): startLine},
		prevNode:   map[int64]int64{},
		visited:    map[int64]bool{},
	}
}

func (s *search) frcOK(line maps.Line) bool {
	if !s.filterFRC {
		return true
	}
	return line.FRC() <= s.lowestFRC
}

// pqItem is one entry of the search's priority queue: a node reached at a
// given cost via a given line, ordered by (cost, line id) for deterministic
// tie-breaking.
type pqItem struct {
	node int64
	cost float64
	via  maps.Line
}

type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return viaID(pq[i].via) < viaID(pq[j].via)
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

func viaID(l maps.Line) int64 {
	if l == nil {
		return -1
	}
	return l.ID()
}

func (s *search) run() {
	pq := make(nodePQ, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, pqItem{node: s.startNode.ID(), cost: s.startCost, via: nil})

	nodeByID := map[int64]maps.Node{s.startNode.ID(): s.startNode}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		if s.visited[item.node] {
			continue
		}
		s.visited[item.node] = true

		node := nodeByID[item.node]
		if node == nil {
			continue
		}

		lastLine := s.prevLine[item.node]

		for _, line := range node.Outgoing() {
			if line.Length() == 0 {
				continue
			}
			if isReverseOf(line, lastLine) {
				continue
			}
			if !s.frcOK(line) {
				continue
			}

			newCost := item.cost + line.Length()
			if newCost > s.upperBound {
				continue
			}

			end := line.EndNode()
			if existing, ok := s.dist[end.ID()]; ok && existing <= newCost {
				continue
			}

			s.dist[end.ID()] = newCost
			s.prevLine[end.ID()] = line
			s.prevNode[end.ID()] = item.node
			nodeByID[end.ID()] = end

			heap.Push(&pq, pqItem{node: end.ID(), cost: newCost, via: line})
		}
	}
}

// isReverseOf reports whether line runs exactly opposite to last (same
// two nodes, swapped), the no-U-turn check of spec.md §4.5.
func isReverseOf(line, last maps.Line) bool {
	if last == nil {
		return false
	}
	return line.StartNode().ID() == last.EndNode().ID() && line.EndNode().ID() == last.StartNode().ID()
}

// pathTo reconstructs the ordered list of fully-traversed interior lines
// from the search's start node to targetNode.
func (s *search) pathTo(targetNode int64) []maps.Line {
	if targetNode == s.startNode.ID() {
		return nil
	}

	var reversed []maps.Line
	node := targetNode
	for node != s.startNode.ID() {
		line, ok := s.prevLine[node]
		if !ok {
			return nil
		}
		reversed = append(reversed, line)
		node = s.prevNode[node]
	}

	lines := make([]maps.Line, len(reversed))
	for i, l := range reversed {
		lines[len(reversed)-1-i] = l
	}
	return lines
}
