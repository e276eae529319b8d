// Package astre orchestrates the ASTRE a-contrario single-trajectory
// extraction engine: it builds the shared DiscreteArea and combinatorial
// handles once per solve, dispatches to the noholes or holes solver, and
// drives the outer loop (fill DP, find the global minimum NFA, extract,
// deactivate, repeat) until no candidate remains or the best candidate is
// no longer meaningful.
package astre

import (
	"github.com/astreproj/astre/areamath"
	"github.com/astreproj/astre/trajectory"
)

// TieTolerance (ε_g in spec §3/§4.4/§4.5) bounds how far a predecessor's g
// value may lie from the current cell's minimum and still be considered
// the same optimum during backtracking. Defined once in trajectory (the
// common dependency of both solvers) and aliased here for callers of this
// package.
const TieTolerance = trajectory.TieTolerance

// Variant selects which solver the outer loop runs.
type Variant int

const (
	// VariantNoholes requires trajectories to occupy consecutive frames.
	VariantNoholes Variant = iota
	// VariantHoles allows trajectories to skip frames.
	VariantHoles
)

// String renders the variant the way the CLI's --solver flag spells it.
func (v Variant) String() string {
	switch v {
	case VariantNoholes:
		return "noholes"
	case VariantHoles:
		return "holes"
	default:
		return "unknown"
	}
}

// Logger is the minimal leveled-logging surface astre writes outer-loop
// progress to. A nil Logger is valid: NopLogger{} satisfies the interface
// and discards everything.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards every message. It is the zero-value-safe default
// for Options.Logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// Options configures a solve. The zero value behaves like DefaultOptions():
// Solve replaces a MaxRadius <= 0 with areamath.DefaultMaxRadius and a nil
// Logger with NopLogger{}. DefaultOptions() states those defaults
// explicitly; override fields as needed.
type Options struct {
	// Eps is the threshold ε on log10(NFA): a candidate trajectory is
	// extracted only while its score is <= Eps. Default: 0.0 (expect at
	// most one false alarm).
	Eps float64

	// Variant selects noholes or holes. Default: VariantNoholes.
	Variant Variant

	// MaxRadius bounds the DiscreteArea table (see areamath.DefaultMaxRadius).
	MaxRadius int

	// Logger receives Solve's progress at INFO level: the chosen variant
	// and eps, then one line per extracted trajectory with its span, size
	// and score. Per-iteration progress and the termination reason are not
	// logged. Default: NopLogger{}.
	Logger Logger
}

// DefaultOptions returns safe, production defaults:
//   - Eps: 0.0
//   - Variant: VariantNoholes
//   - MaxRadius: areamath.DefaultMaxRadius
//   - Logger: NopLogger{}
func DefaultOptions() Options {
	return Options{
		Eps:       0.0,
		Variant:   VariantNoholes,
		MaxRadius: areamath.DefaultMaxRadius,
		Logger:    NopLogger{},
	}
}

// logger returns opts.Logger, or NopLogger{} if unset.
func (o Options) logger() Logger {
	if o.Logger == nil {
		return NopLogger{}
	}

	return o.Logger
}
