package nfa

import (
	"math"

	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/trajectory"
)

// Noholes scores noholes trajectory candidates (spec §4.3.1).
type Noholes struct {
	tables       *combinatoric.Tables
	k            int
	logImageArea float64
	logNprod     [][]float64 // logNprod[k0][l0] = sum_{j=k0-l0..k0} log10(N_j)
}

// NewNoholes precomputes the log_nprod table for seq. tables must have been
// built for K == seq.K().
func NewNoholes(seq *trajectory.Sequence, tables *combinatoric.Tables) (*Noholes, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}

	k := seq.K()
	logNprod := make([][]float64, k)
	for k0 := 0; k0 < k; k0++ {
		row := make([]float64, k0+1)
		logN := math.Log10(float64(seq.N(k0)))
		row[0] = logN
		for l0 := 1; l0 <= k0; l0++ {
			row[l0] = logNprod[k0-1][l0-1] + logN
		}
		logNprod[k0] = row
	}

	return &Noholes{
		tables:       tables,
		k:            k,
		logImageArea: math.Log10(float64(seq.ImageArea())),
		logNprod:     logNprod,
	}, nil
}

// LogNFA computes log10(NFA) for a trajectory ending at frame k0, of
// length l (l >= 3), whose worst discrete acceleration area is a.
func (n *Noholes) LogNFA(k0, l int, a float64) float64 {
	l0 := l - 1

	return n.tables.LogK(n.k) + n.tables.LogK(n.k-l+1) + n.logNprod[k0][l0] +
		float64(l-2)*(math.Log10(a)-n.logImageArea)
}
