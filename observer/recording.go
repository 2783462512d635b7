package observer

import (
	"github.com/google/uuid"

	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// AttemptedRoute records one pairwise-matcher attempt between two anchors'
// candidates, successful or not.
type AttemptedRoute struct {
	From, To         openlr.LocationReferencePoint
	FromLine, ToLine maps.Line
	Success          bool
	Path             []maps.Line
	Reason           string
}

// AttemptedMatch records an anchor pair the decoder gave up on and
// backtracked past (see Observer.OnMatchingFail for when that happens).
type AttemptedMatch struct {
	From, To                   openlr.LocationReferencePoint
	FromCandidates, ToCandidates []candidate.Candidate
	Reason                     string
}

// RejectedCandidate records one line that was considered for an anchor but
// did not become a candidate.
type RejectedCandidate struct {
	LRP    openlr.LocationReferencePoint
	Line   maps.Line
	Reason string
}

// RecordingObserver collects every event of one decode call so a caller
// can inspect it afterwards, mirroring the reference implementation's
// SimpleObserver. ID correlates every event recorded by one RecordingObserver
// instance to a single decode invocation in logs.
type RecordingObserver struct {
	ID uuid.UUID

	Candidates        map[openlr.LocationReferencePoint][]candidate.Candidate
	RejectedCandidates []RejectedCandidate
	AttemptedRoutes   []AttemptedRoute
	FailedMatches     []AttemptedMatch
}

// NewRecordingObserver returns a RecordingObserver stamped with a fresh
// correlation id.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{
		ID:         uuid.New(),
		Candidates: make(map[openlr.LocationReferencePoint][]candidate.Candidate),
	}
}

func (o *RecordingObserver) OnCandidateFound(lrp openlr.LocationReferencePoint, c candidate.Candidate) {
	o.Candidates[lrp] = append(o.Candidates[lrp], c)
}

func (o *RecordingObserver) OnCandidateRejected(lrp openlr.LocationReferencePoint, line maps.Line, reason string) {
	o.RejectedCandidates = append(o.RejectedCandidates, RejectedCandidate{LRP: lrp, Line: line, Reason: reason})
}

func (o *RecordingObserver) OnRouteSuccess(from, to openlr.LocationReferencePoint, fromLine, toLine maps.Line, path []maps.Line) {
	o.AttemptedRoutes = append(o.AttemptedRoutes, AttemptedRoute{
		From: from, To: to, FromLine: fromLine, ToLine: toLine, Success: true, Path: path,
	})
}

func (o *RecordingObserver) OnRouteFail(from, to openlr.LocationReferencePoint, fromLine, toLine maps.Line, reason string) {
	o.AttemptedRoutes = append(o.AttemptedRoutes, AttemptedRoute{
		From: from, To: to, FromLine: fromLine, ToLine: toLine, Success: false, Reason: reason,
	})
}

func (o *RecordingObserver) OnMatchingFail(from, to openlr.LocationReferencePoint, fromCandidates, toCandidates []candidate.Candidate, reason string) {
	o.FailedMatches = append(o.FailedMatches, AttemptedMatch{
		From: from, To: to, FromCandidates: fromCandidates, ToCandidates: toCandidates, Reason: reason,
	})
}

var _ Observer = (*RecordingObserver)(nil)
