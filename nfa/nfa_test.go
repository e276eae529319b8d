package nfa_test

import (
	"math"
	"testing"

	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/nfa"
	"github.com/astreproj/astre/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightLineSequence() *trajectory.Sequence {
	return &trajectory.Sequence{
		Width:  100,
		Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{{X: 20, Y: 20}},
			{{X: 30, Y: 30}},
		},
	}
}

// TestNoholes_LogNFA_MatchesFormula recomputes spec §4.3.1's formula
// directly and checks LogNFA agrees, for scenario S2's three
// one-point frames (span l=3, last frame k0=2, a=1).
func TestNoholes_LogNFA_MatchesFormula(t *testing.T) {
	seq := straightLineSequence()
	tables, err := combinatoric.New(seq.K())
	require.NoError(t, err)
	n, err := nfa.NewNoholes(seq, tables)
	require.NoError(t, err)

	k0, l, a := 2, 3, 1.0
	got := n.LogNFA(k0, l, a)

	logImageArea := math.Log10(float64(seq.ImageArea()))
	// log_nprod[2,2] = log10(N0) + log10(N1) + log10(N2) = 0 since N_j == 1.
	want := tables.LogK(3) + tables.LogK(3-l+1) + 0 + float64(l-2)*(math.Log10(a)-logImageArea)
	assert.InDelta(t, want, got, 1e-9)
}

// TestHoles_LogNFA_NoHoleFactorWhenSingleRun checks that p==1 drops the
// hole-factor term entirely (holeFactor == 0).
func TestHoles_LogNFA_NoHoleFactorWhenSingleRun(t *testing.T) {
	seq := straightLineSequence()
	tables, err := combinatoric.New(seq.K())
	require.NoError(t, err)
	h, err := nfa.NewHoles(seq, tables)
	require.NoError(t, err)

	k0, l, s, p, a := 2, 3, 3, 1, 1.0
	got := h.LogNFA(k0, l, s, p, a)

	logImageArea := math.Log10(float64(seq.ImageArea()))
	want := tables.LogK(3) + tables.LogK(3-l+1) + tables.LogK(l) + tables.LogCnk(l, s) +
		0 /* logNprod: s0=2 means top-1 of interior {logN(1)} = 0, base = logN(2)+logN(0) = 0 */ +
		float64(s-2)*(math.Log10(a)-logImageArea)
	assert.InDelta(t, want, got, 1e-9)
}

// TestHoles_LogNFA_HoleFactorGrowsWithRuns sanity-checks that adding runs
// (holes) strictly increases log_NFA for otherwise identical parameters,
// matching the intuition that more fragmented evidence is less surprising.
func TestHoles_LogNFA_HoleFactorGrowsWithRuns(t *testing.T) {
	seq := &trajectory.Sequence{
		Width:  100,
		Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{},
			{{X: 30, Y: 30}},
			{},
			{{X: 50, Y: 50}},
		},
	}
	tables, err := combinatoric.New(seq.K())
	require.NoError(t, err)
	h, err := nfa.NewHoles(seq, tables)
	require.NoError(t, err)

	k0, l, s, a := 4, 5, 3, 1.0
	onerun := h.LogNFA(k0, l, s, 1, a)
	threeRuns := h.LogNFA(k0, l, s, 3, a)
	assert.Greater(t, threeRuns, onerun)
}
