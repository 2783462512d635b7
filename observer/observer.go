// Package observer defines the decoder's fire-and-forget event sink
// (spec.md §4.7) and a recording implementation useful for tests and
// diagnostics.
//
// Observer deliberately mirrors package candidate's local Observer
// interface in its first two methods' signatures so any observer.Observer
// also satisfies candidate.Observer; this package imports candidate, but
// candidate never has to import this package.
package observer

import (
	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/maps"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

// Observer receives every notable event of a single decode call. No
// callback may influence the decoder's control flow or return an error;
// a panicking Observer is recovered from at the call site (see Safe).
type Observer interface {
	// OnCandidateFound is called once a candidate for lrp passes scoring
	// and the minimum-score filter.
	OnCandidateFound(lrp openlr.LocationReferencePoint, c candidate.Candidate)
	// OnCandidateRejected is called for every line considered for lrp
	// that did not become a candidate, with a human-readable reason.
	OnCandidateRejected(lrp openlr.LocationReferencePoint, line maps.Line, reason string)
	// OnRouteSuccess is called when the pairwise matcher finds a route
	// between a candidate of from and a candidate of to.
	OnRouteSuccess(from, to openlr.LocationReferencePoint, fromLine, toLine maps.Line, path []maps.Line)
	// OnRouteFail is called when the pairwise matcher cannot route from
	// one candidate of from to any candidate of to; toLine is nil.
	OnRouteFail(from, to openlr.LocationReferencePoint, fromLine, toLine maps.Line, reason string)
	// OnMatchingFail is called just before the decoder backtracks past
	// from: for the first anchor once all of its candidates have failed,
	// for a later anchor as soon as its current candidate finds no route
	// to to (its other candidates are not tried).
	OnMatchingFail(from, to openlr.LocationReferencePoint, fromCandidates, toCandidates []candidate.Candidate, reason string)
}

// compile-time assertions that the two interfaces stay structurally
// compatible as both packages evolve.
var (
	_ candidate.Observer = Observer(nil)
)
