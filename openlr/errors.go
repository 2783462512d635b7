package openlr

import (
	"errors"
	"fmt"
)

// ErrorKind is the small, closed taxonomy of ways a decode can fail. Every
// other failure (a rejected candidate, a pairwise route miss) is recovered
// internally by backtracking and never surfaces as an error — see spec §7.
type ErrorKind int

const (
	// InvalidReference means the reference itself is malformed or of an
	// unsupported kind (e.g. fewer than two anchors).
	InvalidReference ErrorKind = iota
	// NoCandidates means an anchor had zero surviving candidates and no
	// backtracking could route around it (only reachable for the first
	// anchor; later anchors report NoMatch instead, since the predecessor
	// can still be retried).
	NoCandidates
	// NoMatch means backtracking exhausted every candidate combination for
	// some anchor pair.
	NoMatch
	// NoRouteFound means the pairwise matcher could not find any path
	// between two specific candidates honoring the FRC filter.
	NoRouteFound
	// DnpOutOfRange means no path exists within the declared
	// distance-to-next-point tolerance, even ignoring the FRC filter.
	DnpOutOfRange
	// OffsetsTooLarge means the declared offsets exceed the combined route
	// length during final trimming.
	OffsetsTooLarge
	// DeadEnd means the candidate's segment has no outgoing edges to
	// continue the search from.
	DeadEnd
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidReference:
		return "InvalidReference"
	case NoCandidates:
		return "NoCandidates"
	case NoMatch:
		return "NoMatch"
	case NoRouteFound:
		return "NoRouteFound"
	case DnpOutOfRange:
		return "DnpOutOfRange"
	case OffsetsTooLarge:
		return "OffsetsTooLarge"
	case DeadEnd:
		return "DeadEnd"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// LRDecodeError is the error type Decode returns for decoding failures; an
// error reported by the map backend is returned as the backend gave it. It carries a
// Kind from the taxonomy above, a human-readable Reason, and optionally
// wraps an underlying cause for errors.Unwrap/errors.Is/errors.As.
type LRDecodeError struct {
	Kind   ErrorKind
	Reason string
	Cause  error
}

func (e *LRDecodeError) Error() string {
	if e.Reason == "" {
		return "openlr: " + e.Kind.String()
	}
	return fmt.Sprintf("openlr: %s: %s", e.Kind, e.Reason)
}

func (e *LRDecodeError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, SomeKindSentinel) style checks work against a
// bare ErrorKind value wrapped in NewDecodeError, by comparing Kind.
func (e *LRDecodeError) Is(target error) bool {
	var other *LRDecodeError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// NewDecodeError builds an *LRDecodeError for the given kind and reason.
func NewDecodeError(kind ErrorKind, reason string) *LRDecodeError {
	return &LRDecodeError{Kind: kind, Reason: reason}
}

// WrapDecodeError builds an *LRDecodeError that also wraps a lower-level
// cause, so callers can still unwrap to e.g. a maps.Map I/O error.
func WrapDecodeError(kind ErrorKind, reason string, cause error) *LRDecodeError {
	return &LRDecodeError{Kind: kind, Reason: reason, Cause: cause}
}
