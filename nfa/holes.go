package nfa

import (
	"math"
	"sort"

	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/trajectory"
)

// Holes scores holes trajectory candidates (spec §4.3.2).
type Holes struct {
	tables       *combinatoric.Tables
	k            int
	logImageArea float64
	logNprod     [][][]float64 // logNprod[k0][l0][s0]
}

// NewHoles precomputes the log_nprod table for seq. tables must have been
// built for K == seq.K().
func NewHoles(seq *trajectory.Sequence, tables *combinatoric.Tables) (*Holes, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	k := seq.K()
	logN := make([]float64, k)
	for i := 0; i < k; i++ {
		logN[i] = math.Log10(float64(seq.N(i)))
	}

	logNprod := make([][][]float64, k)
	for k0 := 0; k0 < k; k0++ {
		logNprod[k0] = make([][]float64, k0+1)
		for l0 := 0; l0 <= k0; l0++ {
			lo := k0 - l0 + 1 // first interior index (exclusive of k0-l0 and k0)
			var interior []float64
			if lo < k0 {
				interior = append(interior, logN[lo:k0]...)
			}
			sort.Sort(sort.Reverse(sort.Float64Slice(interior)))

			row := make([]float64, l0+1)
			base := logN[k0] + logN[k0-l0]
			for s0 := 0; s0 <= l0; s0++ {
				if s0 == 0 {
					row[s0] = math.Inf(-1)
					continue
				}
				top := s0 - 1
				if top > len(interior) {
					top = len(interior)
				}
				sum := 0.0
				for i := 0; i < top; i++ {
					sum += interior[i]
				}
				row[s0] = base + sum
			}
			logNprod[k0][l0] = row
		}
	}

	return &Holes{
		tables:       tables,
		k:            k,
		logImageArea: math.Log10(float64(seq.ImageArea())),
		logNprod:     logNprod,
	}, nil
}

// LogNFA computes log10(NFA) for a trajectory ending at frame k0, of span
// l, size s (2 <= s <= l) and p runs, whose worst discrete acceleration
// area is a.
func (h *Holes) LogNFA(k0, l, s, p int, a float64) float64 {
	l0, s0 := l-1, s-1

	var holeFactor float64
	if p > 1 {
		holeFactor = float64(2*p-2) * math.Log10(float64(l-s)/float64(p-1)+1.0)
	}

	return h.tables.LogK(h.k) + h.tables.LogK(h.k-l+1) + h.tables.LogK(l) + h.tables.LogCnk(l, s) +
		h.logNprod[k0][l0][s0] + float64(s-2)*(math.Log10(a)-h.logImageArea) + holeFactor
}
