package areamath

import "errors"

// Sentinel errors returned by areamath constructors. Callers should compare
// with errors.Is; do not wrap these with fmt.Errorf where the sentinel alone
// carries enough context.
var (
	// ErrInvalidRadius indicates a non-positive max radius was requested.
	ErrInvalidRadius = errors.New("areamath: max radius must be > 0")
)
