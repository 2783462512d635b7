package observer

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlr-community/openlr-dereferencer-go/candidate"
	"github.com/openlr-community/openlr-dereferencer-go/openlr"
)

func TestRecordingObserverCollectsCandidates(t *testing.T) {
	obs := NewRecordingObserver()
	lrp := openlr.LocationReferencePoint{FRC: openlr.FRC2}

	obs.OnCandidateFound(lrp, candidate.Candidate{Score: 0.8})
	obs.OnCandidateFound(lrp, candidate.Candidate{Score: 0.6})
	obs.OnCandidateRejected(lrp, nil, "too far")

	assert.Len(t, obs.Candidates[lrp], 2)
	assert.Len(t, obs.RejectedCandidates, 1)
	assert.NotEqual(t, obs.ID.String(), "")
}

func TestRecordingObserverTracksMatchingFailures(t *testing.T) {
	obs := NewRecordingObserver()
	from := openlr.LocationReferencePoint{FRC: openlr.FRC1}
	to := openlr.LocationReferencePoint{FRC: openlr.FRC2}

	obs.OnRouteFail(from, to, nil, nil, "no route")
	obs.OnMatchingFail(from, to, nil, nil, "exhausted")

	require.Len(t, obs.AttemptedRoutes, 1)
	assert.False(t, obs.AttemptedRoutes[0].Success)
	require.Len(t, obs.FailedMatches, 1)
	assert.Equal(t, "exhausted", obs.FailedMatches[0].Reason)
}

type panickingObserver struct{ RecordingObserver }

func (p *panickingObserver) OnCandidateFound(openlr.LocationReferencePoint, candidate.Candidate) {
	panic("boom")
}

func TestSafeRecoversFromPanickingCallback(t *testing.T) {
	inner := &panickingObserver{RecordingObserver: *NewRecordingObserver()}
	safe := NewSafe(inner, slog.Default())

	assert.NotPanics(t, func() {
		safe.OnCandidateFound(openlr.LocationReferencePoint{}, candidate.Candidate{})
	})
}
