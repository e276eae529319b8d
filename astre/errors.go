package astre

import (
	"errors"

	"github.com/astreproj/astre/trajectory"
)

// ErrInvalidInput, ErrMalformedFrame and ErrInvariantViolation are defined
// once in package trajectory (the common dependency of both solver
// variants and this package) and aliased here so callers can keep using
// errors.Is(err, astre.ErrInvalidInput) without reaching into trajectory
// directly — the same alias pattern the teacher uses in matrix/errors.go
// for its backward-compatibility sentinels.
var (
	ErrInvalidInput       = trajectory.ErrInvalidInput
	ErrMalformedFrame     = trajectory.ErrMalformedFrame
	ErrInvariantViolation = trajectory.ErrInvariantViolation

	// ErrUnsupportedVariant is returned when Options.Variant is not one of
	// the known solver variants.
	ErrUnsupportedVariant = errors.New("astre: unsupported solver variant")
)
