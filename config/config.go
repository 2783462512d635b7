// Package config holds the tunable knobs of a decode call: search radius,
// DNP tolerance, score weights and thresholds, the FRC-downgrade table and
// the form-of-way similarity matrix.
//
// Validation follows the pattern of larsjohnsen-koordinater-til-vegreferanse's
// Config: struct tags read by github.com/go-playground/validator/v10,
// checked once up front by Validate. There is no persistence layer here —
// a Config is built in-process by Default and then overridden by its
// caller; reading one from a file or database is out of scope.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/openlr-community/openlr-dereferencer-go/openlr"
	"github.com/openlr-community/openlr-dereferencer-go/scoring"
)

// Config provides every setting that influences decoder behavior
// (spec.md §6). The zero value is not valid; use Default and override.
type Config struct {
	// SearchRadius bounds how far a candidate may sit from its anchor,
	// in meters.
	SearchRadius float64 `validate:"gt=0"`
	// MaxDNPDeviation is the relative tolerance on route length versus
	// the anchor's declared distance-to-next-point.
	MaxDNPDeviation float64 `validate:"gte=0"`
	// TolerableDNPDev is an additive tolerance, in meters, added on top
	// of MaxDNPDeviation.
	TolerableDNPDev float64 `validate:"gte=0"`
	// MinScore rejects candidates scoring below this threshold.
	MinScore float64 `validate:"gte=0,lte=1"`
	// CandidateThreshold is the meters below which a projection snaps to
	// its segment's start instead of starting the match mid-segment.
	CandidateThreshold float64 `validate:"gte=0"`

	// TolerableLFRC maps each anchor's declared lowest-FRC-to-next value
	// to the least important FRC a route is allowed to traverse. The
	// zero value (nil) is replaced by the identity map in Default.
	TolerableLFRC map[openlr.FRC]openlr.FRC `validate:"required"`

	// Weights controls how the four per-candidate scores combine.
	Weights scoring.Weights
	// FOWStandinScore is the 8x8 form-of-way similarity table.
	FOWStandinScore scoring.FOWMatrix

	// BearDist is how far, in meters, to walk along a candidate segment
	// when measuring its bearing.
	BearDist float64 `validate:"gt=0"`
	// MaxBearDeviation, when non-nil, hard-rejects any candidate whose
	// bearing differs from the anchor's by more than this many degrees,
	// before scoring.
	MaxBearDeviation *float64
}

// Default returns the configuration spec.md §6 lists as defaults.
func Default() Config {
	identity := make(map[openlr.FRC]openlr.FRC, 8)
	for frc := openlr.FRC0; frc <= openlr.FRC7; frc++ {
		identity[frc] = frc
	}

	return Config{
		SearchRadius:       100,
		MaxDNPDeviation:    0.3,
		TolerableDNPDev:    30,
		MinScore:           0.3,
		CandidateThreshold: 20,
		TolerableLFRC:      identity,
		Weights:            scoring.DefaultWeights(),
		FOWStandinScore:    scoring.DefaultFOWMatrix(),
		BearDist:           20,
		MaxBearDeviation:   nil,
	}
}

var validate = validator.New()

// Validate checks every numeric bound and returns a wrapped
// validator.ValidationErrors describing every violated field tag. It does not check
// TolerableLFRC's keys/values individually: any FRC key absent from the
// map is treated by callers as "no override", which is always safe.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.MaxBearDeviation != nil && (*c.MaxBearDeviation < 0 || *c.MaxBearDeviation > 180) {
		return fmt.Errorf("config: MaxBearDeviation must be in [0, 180], got %v", *c.MaxBearDeviation)
	}
	return nil
}

// LowestAcceptableFRC returns the least important FRC a route between two
// anchors may traverse, given the first anchor's declared LowestFRCToNext.
// Unlisted FRCs fall back to themselves (no downgrade allowed).
func (c Config) LowestAcceptableFRC(declared openlr.FRC) openlr.FRC {
	if frc, ok := c.TolerableLFRC[declared]; ok {
		return frc
	}
	return declared
}
