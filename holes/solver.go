package holes

import (
	"math"
	"runtime"
	"sync"

	"github.com/astreproj/astre/areamath"
	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/nfa"
	"github.com/astreproj/astre/trajectory"
)

// cellKey addresses one cell of the sparse DP: (k0, ix) is the current
// point, h1 the gap to its predecessor at frame k1 = k0-h1-1, point iy;
// l0, s0, p0 are span-1, size-1, runs-1 of the partial trajectory ending
// at (k0, ix). Seed cells (s0 == 1) always carry l0 == 1, also when h1 > 0;
// such a gapped seed is never extended further, because fillCell only
// looks up predecessors with h2 < l0Prev.
type cellKey struct {
	k0, ix, h1, iy, l0, s0, p0 int
}

// Solver holds the per-solve state for the holes DP.
type Solver struct {
	seq    *trajectory.Sequence
	mask   *trajectory.Mask
	area   *areamath.DiscreteArea
	scorer *nfa.Holes
	k      int

	// g is reset and refilled at the start of every Solve iteration. A
	// missing key is treated as +Inf, matching a dense table's
	// +Inf-initialized, monotonically-narrowed semantics.
	g map[cellKey]float64
}

// New builds a Solver. mask is owned by the caller and shared across
// solves of an outer loop.
func New(seq *trajectory.Sequence, mask *trajectory.Mask, area *areamath.DiscreteArea, tables *combinatoric.Tables) (*Solver, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	scorer, err := nfa.NewHoles(seq, tables)
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

// fillDP rebuilds g from scratch and reports whether any cell was
// computed.
//
// k0 rows are processed in increasing order since fillCell only ever
// reads keys with a strictly smaller k0 (k1 = k0-h1-1 < k0, and the
// recursion inside fillCell only goes further back), never a key from
// the row being filled. Within one k0 the per-ix columns are therefore
// independent and run on a bounded worker pool; each worker accumulates
// into its own local map and the results are merged into s.g once the
// pool for that k0 has drained, so the shared map only ever sees
// single-goroutine writes.
func (s *Solver) fillDP() bool {
	s.g = make(map[cellKey]float64)
	touched := false
	workers := runtime.GOMAXPROCS(0)

	for k0 := 1; k0 < s.k; k0++ {
		fx := s.seq.Frames[k0]

		jobs := make(chan int, len(fx))
		for ix := range fx {
			jobs <- ix
		}
		close(jobs)

		results := make(chan map[cellKey]float64, workers)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				local := make(map[cellKey]float64)
				for ix := range jobs {
					s.fillColumn(k0, ix, fx[ix], local)
				}
				results <- local
			}()
		}
		wg.Wait()
		close(results)

		for local := range results {
			for key, val := range local {
				s.g[key] = val
				touched = true
			}
		}
	}

	return touched
}

// fillColumn fills every cell rooted at point ix of frame k0 into local,
// reading only from s.g (never writing to it): all of its reads target
// rows strictly before k0, which are already merged from prior
// iterations of fillDP's outer loop.
func (s *Solver) fillColumn(k0, ix int, x trajectory.Point, local map[cellKey]float64) {
	if !s.mask.Active(k0, ix) {
		return
	}

	for h1 := 0; h1 < k0; h1++ {
		k1 := k0 - h1 - 1
		fy := s.seq.Frames[k1]

		for iy, y := range fy {
			if !s.mask.Active(k1, iy) {
				continue
			}

			if h1 == 0 {
				local[cellKey{k0, ix, 0, iy, 1, 1, 0}] = 1.0
			} else {
				local[cellKey{k0, ix, h1, iy, 1, 1, 1}] = 1.0
			}

			mx := (x.X - y.X) / float64(h1+1)
			my := (x.Y - y.Y) / float64(h1+1)

			for l0 := 2; l0 <= k0; l0++ {
				l0Prev := l0 - h1 - 1
				if l0Prev < 1 {
					continue
				}

				for s0 := 2; s0 <= l0; s0++ {
					s0Prev := s0 - 1
					if s0Prev < 1 {
						continue
					}

					for p0 := 0; p0 <= s0; p0++ {
						p0Prev := p0
						if h1 > 0 {
							p0Prev = p0 - 1
						}
						if p0Prev < 0 {
							continue
						}

						s.fillCell(k0, ix, h1, iy, l0, s0, p0, k1, l0Prev, s0Prev, p0Prev, mx, my, y, local)
					}
				}
			}
		}
	}
}

// fillCell minimizes the recurrence over (h2, iz) and, if a finite
// candidate exists, stores it into local. It only reads s.g, never
// writes it: every key it looks up has k1 < k0, a row already merged
// from a prior fillDP iteration, so this is safe to call concurrently
// for distinct ix.
func (s *Solver) fillCell(k0, ix, h1, iy, l0, s0, p0, k1, l0Prev, s0Prev, p0Prev int, mx, my float64, y trajectory.Point, local map[cellKey]float64) bool {
	maxH2 := k1
	if l0Prev < maxH2 {
		maxH2 = l0Prev
	}

	gmin := math.Inf(1)
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
			if a < gmin {
				gmin = a
			}
		}
	}

	if math.IsInf(gmin, 1) {
		return false
	}

	local[cellKey{k0, ix, h1, iy, l0, s0, p0}] = gmin
	return true
}

// minLogNFA scans every cell eligible for emission (k0 >= 2, l0 >= 2,
// s0 >= 2) and returns the global minimum log10(NFA) cell. Cells with an
// equal score are ordered by their key fields (k0, ix, h1, iy, l0, s0, p0)
// and the smallest key wins, so the choice does not depend on map order.
func (s *Solver) minLogNFA() (key cellKey, m float64, ok bool) {
	best := math.Inf(1)
	var bestKey cellKey
	found := false

	keyLess := func(a, b cellKey) bool {
		x := [7]int{a.k0, a.ix, a.h1, a.iy, a.l0, a.s0, a.p0}
		y := [7]int{b.k0, b.ix, b.h1, b.iy, b.l0, b.s0, b.p0}
		for i := range x {
			if x[i] != y[i] {
				return x[i] < y[i]
			}
		}
		return false
	}

	for key, a := range s.g {
		if key.k0 < 2 || key.l0 < 2 || key.s0 < 2 {
			continue
		}

		l := key.l0 + 1
		sz := key.s0 + 1
		p := key.p0 + 1
		cur := s.scorer.LogNFA(key.k0, l, sz, p, a)
		if cur < best || (found && cur == best && keyLess(key, bestKey)) {
			best, bestKey, found = cur, key, true
		}
	}

	return bestKey, best, found
}
