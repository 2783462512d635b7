package observer

import (
	"log/slog"

	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// Safe wraps an Observer so a panic inside any callback is recovered and
// logged instead of aborting the decode (spec.md §9, "Open question —
// observer exceptions": catch-and-discard at the decoder boundary).
type Safe struct {
	inner  Observer
	logger *slog.Logger
}

// NewSafe wraps inner. logger may be nil, in which case recovered panics
// are silently discarded.
func NewSafe(inner Observer, logger *slog.Logger) Safe {
	return Safe{inner: inner, logger: logger}
}

func (s Safe) guard(callback string) {
	if r := recover(); r != nil && s.logger != nil {
		s.logger.Warn("observer callback panicked, discarding", "callback", callback, "recovered", r)
	}
}

func (s Safe) OnCandidateFound(lrp openlr.LocationReferencePoint, c candidate.Candidate) {
	defer s.guard("OnCandidateFound")
	s.inner.OnCandidateFound(lrp, c)
}

func (s Safe) OnCandidateRejected(lrp openlr.LocationReferencePoint, line maps.Line, reason string) {
	defer s.guard("OnCandidateRejected")
	s.inner.OnCandidateRejected(lrp, line, reason)
}

func (s Safe) OnRouteSuccess(from, to openlr.LocationReferencePoint, fromLine, toLine maps.Line, path []maps.Line) {
	defer s.guard("OnRouteSuccess")
	s.inner.OnRouteSuccess(from, to, fromLine, toLine, path)
}

func (s Safe) OnRouteFail(from, to openlr.LocationReferencePoint, fromLine, toLine maps.Line, reason string) {
	defer s.guard("OnRouteFail")
	s.inner.OnRouteFail(from, to, fromLine, toLine, reason)
}

func (s Safe) OnMatchingFail(from, to openlr.LocationReferencePoint, fromCandidates, toCandidates []candidate.Candidate, reason string) {
	defer s.guard("OnMatchingFail")
	s.inner.OnMatchingFail(from, to, fromCandidates, toCandidates, reason)
}

var _ Observer = Safe{}
