package holes

import (
	"math"

	"github.com/astreproj/astre/trajectory"
)

// extract backtracks from the argmin cell down to the trajectory's seed
// edge, inserting StepNone markers for skipped frames and deactivating
// every observed point it visits.
func (s *Solver) extract(start cellKey) (trajectory.Trajectory, error) {
	type visited struct {
		frame, index int
		hole         bool
	}
	var rev []visited

	k0, ix, h1, iy := start.k0, start.ix, start.h1, start.iy
	l0, s0, p0 := start.l0, start.s0, start.p0
	aMax := s.g[start]

	for {
		k1 := k0 - h1 - 1

		rev = append(rev, visited{k0, ix, false})
		for f := k0 - 1; f > k1; f-- {
			rev = append(rev, visited{f, 0, true})
		}

		if s0 < 2 {
			rev = append(rev, visited{k1, iy, false})
			break
		}

		l0Prev := l0 - h1 - 1
		s0Prev := s0 - 1
		p0Prev := p0
		if h1 > 0 {
			p0Prev = p0 - 1
		}

		x := s.seq.Frames[k0][ix]
		y := s.seq.Frames[k1][iy]
		mx := (x.X - y.X) / float64(h1+1)
		my := (x.Y - y.Y) / float64(h1+1)

		maxH2 := k1
		if l0Prev < maxH2 {
			maxH2 = l0Prev
		}

		bestH2, bestIz := -1, -1
		bestVal := math.Inf(1)
		for h2 := 0; h2 < maxH2; h2++ {
			k2 := k1 - h2 - 1
			fz := s.seq.Frames[k2]
			for iz, z := range fz {
				if !s.mask.Active(k2, iz) {
					continue
				}
				predVal, ok := s.g[cellKey{k1, iy, h2, iz, l0Prev, s0Prev, p0Prev}]
				if !ok {
					continue
				}

				ax := mx + (z.X-y.X)/float64(h2+1)
				ay := my + (z.Y-y.Y)/float64(h2+1)
				a := s.area.AD(ax, ay)
				if predVal > a {
					a = predVal
				}

				if a < bestVal && a < aMax+trajectory.TieTolerance {
					bestVal, bestH2, bestIz = a, h2, iz
				}
			}
		}

		if bestIz < 0 {
			return trajectory.Trajectory{}, trajectory.ErrInvariantViolation
		}

		k0, ix, h1, iy = k1, iy, bestH2, bestIz
		l0, s0, p0 = l0Prev, s0Prev, p0Prev
		aMax = bestVal
	}

	steps := make([]trajectory.Step, len(rev))
	for i, v := range rev {
		if !v.hole {
			s.mask.Deactivate(v.frame, v.index)
		}
		kind := trajectory.StepRef
		if v.hole {
			kind = trajectory.StepNone
		}
		steps[len(rev)-1-i] = trajectory.Step{Frame: v.frame, Index: v.index, Kind: kind}
	}

	return trajectory.Trajectory{Start: steps[0].Frame, Steps: steps}, nil
}

// Solve runs the outer loop: repeatedly fill the DP table, take the
// global minimum log10(NFA), extract it if it is no worse than eps, and
// deactivate its observed points, until either no candidate remains or the
// best candidate's log10(NFA) exceeds eps.
func (s *Solver) Solve(eps float64) ([]trajectory.Trajectory, error) {
	var results []trajectory.Trajectory

	for {
		if touched := s.fillDP(); !touched {
			break
		}

		key, m, ok := s.minLogNFA()
		if !ok || m > eps {
			break
		}

		traj, err := s.extract(key)
		if err != nil {
			return nil, err
		}
		traj.LogNFA = m
		results = append(results, traj)
	}

	return results, nil
}
