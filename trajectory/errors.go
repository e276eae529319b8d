package trajectory

import "errors"

// Sentinel errors shared by both solver variants and the top-level astre
// package. Compare with errors.Is; wrap with %w only at package boundaries.
var (
	// ErrInvalidInput indicates fewer than 3 frames, or non-positive image
	// dimensions.
	ErrInvalidInput = errors.New("trajectory: invalid input")

	// ErrMalformedFrame names the error kind for a frame whose first column
	// is not integer-valued, or whose column count differs from its peers,
	// in an external points description. No package of this module returns
	// it: package descfile reports those cases with its own sentinels
	// (descfile.ErrMalformedFrame, descfile.ErrColumnMismatch), which do
	// not wrap this one.
	ErrMalformedFrame = errors.New("trajectory: malformed frame")

	// ErrInvariantViolation indicates a defensive check failed: the
	// extractor could not find any predecessor within the tie tolerance
	// of a_max. This should never happen on correct input; it signals
	// either a numerical bug or an input that violates the g-monotonicity
	// invariant. Scores are not checked for NaN: a NaN score never compares
	// below the running minimum, so the minimum-NFA search skips it.
	ErrInvariantViolation = errors.New("trajectory: invariant violation")
)

// TieTolerance (ε_g in spec §3/§4.4/§4.5) bounds how far a predecessor's g
// value may lie from the current cell's minimum and still be considered
// the same optimum during backtracking.
const TieTolerance = 1e-4

// Validate checks the structural invariants a Sequence must hold before
// any solver may run: at least 3 frames, and positive image dimensions.
func (s *Sequence) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrInvalidInput
	}
	if len(s.Frames) < 3 {
		return ErrInvalidInput
	}

	return nil
}
