package noholes

import (
	"math"

	"github.com/astreproj/astre/trajectory"
)

// extract backtracks from the argmin cell (k0, ix, iy, l0) down to the
// trajectory's first two points, deactivating every point it visits.
func (s *Solver) extract(k0, ix, iy, l0 int) (trajectory.Trajectory, error) {
	aMax := s.g[k0][ix][iy][l0]

	type visited struct{ frame, index int }
	var rev []visited

	for l0 >= 2 {
		rev = append(rev, visited{k0, ix})

		x := s.seq.Frames[k0][ix]
		y := s.seq.Frames[k0-1][iy]
		mx, my := x.X-2*y.X, x.Y-2*y.Y

		izMin := -1
		aMin := math.Inf(1)
		fz := s.seq.Frames[k0-2]
		predGix := s.g[k0-1][iy]
		for iz, z := range fz {
			if !s.mask.Active(k0-2, iz) {
				continue
			}
			predRow := predGix[iz]
			if predRow == nil {
				continue
			}

			a := s.area.AD(mx+z.X, my+z.Y)
			gprev := predRow[l0-1]
			if gprev > a {
				a = gprev
			}
			if a < aMin && a < aMax+trajectory.TieTolerance {
				izMin = iz
				aMin = a
			}
		}

		if izMin < 0 {
			return trajectory.Trajectory{}, trajectory.ErrInvariantViolation
		}

		k0--
		l0--
		ix = iy
		iy = izMin
		aMax = aMin
	}

	rev = append(rev, visited{k0, ix}, visited{k0 - 1, iy})

	steps := make([]trajectory.Step, len(rev))
	for i, v := range rev {
		s.mask.Deactivate(v.frame, v.index)
		steps[len(rev)-1-i] = trajectory.Step{Frame: v.frame, Index: v.index, Kind: trajectory.StepRef}
	}

	return trajectory.Trajectory{Start: steps[0].Frame, Steps: steps}, nil
}

// Solve runs the outer loop of spec §4.4/§4.6: repeatedly fill the DP
// table, take the global minimum log10(NFA), extract it if it is no
// worse than eps, and deactivate its points — until either no candidate
// remains or the best candidate is no longer meaningful.
func (s *Solver) Solve(eps float64) ([]trajectory.Trajectory, error) {
	var results []trajectory.Trajectory

	for {
		if touched := s.fillDP(); !touched {
			break
		}

		k0, ix, iy, l0, m, ok := s.minLogNFA()
		if !ok || m > eps {
			break
		}

		traj, err := s.extract(k0, ix, iy, l0)
		if err != nil {
			return nil, err
		}
		traj.LogNFA = m
		results = append(results, traj)
	}

	return results, nil
}
