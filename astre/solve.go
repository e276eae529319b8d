package astre

import (
	"github.com/astreproj/astre/areamath"
	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/holes"
	"github.com/astreproj/astre/noholes"
	"github.com/astreproj/astre/trajectory"
)

// Solve runs the full outer loop against seq: build the shared
// DiscreteArea and combinatorial tables once, dispatch to the noholes or
// holes solver per opts.Variant, and repeatedly fill, search, extract and
// deactivate until no candidate remains or the best candidate's
// log10(NFA) exceeds opts.Eps.
func Solve(seq *trajectory.Sequence, opts Options) ([]trajectory.Trajectory, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	maxRadius := opts.MaxRadius
	if maxRadius <= 0 {
		maxRadius = areamath.DefaultMaxRadius
	}

	area, err := areamath.New(maxRadius)
	if err != nil {
		return nil, err
	}
	tables, err := combinatoric.New(seq.K())
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	mask := trajectory.NewMask(seq)

	var trajs []trajectory.Trajectory
	switch opts.Variant {
	case VariantHoles:
		s, err := holes.New(seq, mask, area, tables)
		if err != nil {
			return nil, err
		}
		log.Infof("astre: solving with holes variant, eps=%.4f", opts.Eps)
		trajs, err = s.Solve(opts.Eps)
		if err != nil {
			return nil, err
		}
	case VariantNoholes:
		s, err := noholes.New(seq, mask, area, tables)
		if err != nil {
			return nil, err
		}
		log.Infof("astre: solving with noholes variant, eps=%.4f", opts.Eps)
		trajs, err = s.Solve(opts.Eps)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedVariant
	}

	for i, t := range trajs {
		log.Infof("astre: extracted trajectory %d: span=%d size=%d logNFA=%.4f", i, t.Span(), t.Size(), t.LogNFA)
	}

	return trajs, nil
}
