package noholes

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/astreproj/astre/areamath"
	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/nfa"
	"github.com/astreproj/astre/trajectory"
)

// Solver holds the per-solve state for the noholes DP: the input sequence,
// the shared activation mask, the DiscreteArea handle, the NFA scorer, and
// the scratch DP table g. A Solver is built once per solve and its Solve
// method runs the full outer loop.
type Solver struct {
	seq    *trajectory.Sequence
	mask   *trajectory.Mask
	area   *areamath.DiscreteArea
	scorer *nfa.Noholes
	k      int

	// g[k0][ix][iy][l0], reallocated at the start of every fillDP pass.
	// g[k0] is nil for k0 == 0 (no predecessor frame exists).
	g [][][][]float64
}

// New builds a Solver. mask is owned by the caller and shared across
// solves of an outer loop; area and tables are immutable handles built
// once per solve.
func New(seq *trajectory.Sequence, mask *trajectory.Mask, area *areamath.DiscreteArea, tables *combinatoric.Tables) (*Solver, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	scorer, err := nfa.NewNoholes(seq, tables)
	if err != nil {
		return nil, err
	}

	return &Solver{
		seq:    seq,
		mask:   mask,
		area:   area,
		scorer: scorer,
		k:      seq.K(),
	}, nil
}

// fillDP resets g to +Inf and fills every reachable cell. It reports
// whether any cell was computed at all (i.e. whether a frame triple with
// three active points exists); an outer loop stops once this is false.
//
// k0 rows are filled in increasing order since row k0 reads row k0-1, but
// within one k0 the per-ix columns are independent (fillColumn only ever
// reads s.g[k0-1], never s.g[k0]), so they run on a bounded worker pool
// sized runtime.GOMAXPROCS(0) rather than one goroutine per point.
func (s *Solver) fillDP() bool {
	k := s.k
	s.g = make([][][][]float64, k)

	var touched int32
	workers := runtime.GOMAXPROCS(0)

	for k0 := 1; k0 < k; k0++ {
		fx := s.seq.Frames[k0]
		fy := s.seq.Frames[k0-1]
		var fz trajectory.Frame
		if k0 >= 2 {
			fz = s.seq.Frames[k0-2]
		}

		gk0 := make([][][]float64, len(fx))
		s.g[k0] = gk0
		prev := s.g[k0-1]

		jobs := make(chan int, len(fx))
		for ix := range fx {
			jobs <- ix
		}
		close(jobs)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for ix := range jobs {
					if s.fillColumn(k0, ix, fx[ix], fy, fz, prev, gk0) {
						atomic.StoreInt32(&touched, 1)
					}
				}
			}()
		}
		wg.Wait()
	}

	return touched != 0
}

// fillColumn computes gk0[ix], the column for point ix of frame k0, and
// writes it in place. It only reads prev (= s.g[k0-1]), never s.g[k0], so
// concurrent calls for distinct ix never race.
func (s *Solver) fillColumn(k0, ix int, x trajectory.Point, fy, fz trajectory.Frame, prev [][][]float64, gk0 [][][]float64) bool {
	if !s.mask.Active(k0, ix) {
		return false
	}

	touched := false
	gix := make([][]float64, len(fy))
	gk0[ix] = gix

	for iy, y := range fy {
		if !s.mask.Active(k0-1, iy) {
			continue
		}
		row := make([]float64, k0+1)
		for l0 := range row {
			row[l0] = math.Inf(1)
		}
		gix[iy] = row

		row[1] = 1.0 // l0=1 means l=2, worst area is 1 pixel by convention

		mx, my := x.X-2*y.X, x.Y-2*y.Y

		for l0 := 2; l0 <= k0; l0++ {
			gmin := math.Inf(1)
			for iz, z := range fz {
				if !s.mask.Active(k0-2, iz) {
					continue
				}
				predGix := prev[iy]
				if predGix == nil {
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
				if a < gmin {
					gmin = a
				}
				touched = true
			}
			row[l0] = gmin
		}
	}

	return touched
}

// minLogNFA scans every cell with both endpoints active and a finite g,
// and returns the indices and score of the global minimum. ok is false
// when no such cell exists.
func (s *Solver) minLogNFA() (k0, ix, iy, l0 int, m float64, ok bool) {
	best := math.Inf(1)
	bestK0, bestIx, bestIy, bestL0 := -1, -1, -1, -1

	for k := 2; k < s.k; k++ {
		gk := s.g[k]
		for i, gi := range gk {
			if gi == nil {
				continue
			}
			if !s.mask.Active(k, i) {
				continue
			}
			for j, row := range gi {
				if row == nil {
					continue
				}
				if !s.mask.Active(k-1, j) {
					continue
				}
				for l := 2; l <= k; l++ {
					a := row[l]
					if math.IsInf(a, 1) {
						continue
					}
					cur := s.scorer.LogNFA(k, l+1, a)
					if cur < best {
						best, bestK0, bestIx, bestIy, bestL0 = cur, k, i, j, l
					}
				}
			}
		}
	}

	if bestK0 < 0 {
		return 0, 0, 0, 0, 0, false
	}

	return bestK0, bestIx, bestIy, bestL0, best, true
}
