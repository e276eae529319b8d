package noholes_test

import (
	"testing"

	"github.com/astreproj/astre/areamath"
	"github.com/astreproj/astre/combinatoric"
	"github.com/astreproj/astre/noholes"
	"github.com/astreproj/astre/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver(t *testing.T, seq *trajectory.Sequence) (*noholes.Solver, *trajectory.Mask) {
	t.Helper()

	area, err := areamath.New(areamath.DefaultMaxRadius)
	require.NoError(t, err)
	tables, err := combinatoric.New(seq.K())
	require.NoError(t, err)
	mask := trajectory.NewMask(seq)

	s, err := noholes.New(seq, mask, area, tables)
	require.NoError(t, err)

	return s, mask
}

// TestSolve_S1_EmptyBelowThreshold: three empty frames yield no trajectory.
func TestSolve_S1_EmptyBelowThreshold(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{{}, {}, {}},
	}
	s, _ := newSolver(t, seq)

	trajs, err := s.Solve(0.0)
	require.NoError(t, err)
	assert.Empty(t, trajs)
}

// TestSolve_S2_SinglePerfectLine: one straight-line trajectory is found.
func TestSolve_S2_SinglePerfectLine(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{{X: 20, Y: 20}},
			{{X: 30, Y: 30}},
		},
	}
	s, _ := newSolver(t, seq)

	trajs, err := s.Solve(0.0)
	require.NoError(t, err)
	require.Len(t, trajs, 1)

	tr := trajs[0]
	require.Len(t, tr.Steps, 3)
	assert.Equal(t, []trajectory.Step{
		{Frame: 0, Index: 0, Kind: trajectory.StepRef},
		{Frame: 1, Index: 0, Kind: trajectory.StepRef},
		{Frame: 2, Index: 0, Kind: trajectory.StepRef},
	}, tr.Steps)
	assert.LessOrEqual(t, tr.LogNFA, 0.0)
}

// TestSolve_S3_DisjointnessUnderCompetition: two independent diagonal lines
// are each extracted exactly once, with disjoint (frame,index) sets.
func TestSolve_S3_DisjointnessUnderCompetition(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}, {X: 50, Y: 50}},
			{{X: 20, Y: 20}, {X: 60, Y: 60}},
			{{X: 30, Y: 30}, {X: 70, Y: 70}},
		},
	}
	s, _ := newSolver(t, seq)

	trajs, err := s.Solve(0.0)
	require.NoError(t, err)
	require.Len(t, trajs, 2)

	seen := map[[2]int]bool{}
	for _, tr := range trajs {
		for _, st := range tr.Steps {
			key := [2]int{st.Frame, st.Index}
			assert.False(t, seen[key], "point %v reused across trajectories", key)
			seen[key] = true
		}
	}
}

// TestSolve_S4_NoiseRejected: frames with points too scattered to form a
// constant-acceleration line within one pixel yield no trajectory.
func TestSolve_S4_NoiseRejected(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 1000, Height: 1000,
		Frames: []trajectory.Frame{
			{{X: 5, Y: 900}},
			{{X: 800, Y: 50}},
			{{X: 200, Y: 700}},
			{{X: 650, Y: 300}},
		},
	}
	s, _ := newSolver(t, seq)

	trajs, err := s.Solve(0.0)
	require.NoError(t, err)
	assert.Empty(t, trajs)
}

// TestSolve_S6_DeactivationForbidsReuse: re-solving against the same mask
// after extraction yields nothing further.
func TestSolve_S6_DeactivationForbidsReuse(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}, {X: 50, Y: 50}},
			{{X: 20, Y: 20}, {X: 60, Y: 60}},
			{{X: 30, Y: 30}, {X: 70, Y: 70}},
		},
	}
	area, err := areamath.New(areamath.DefaultMaxRadius)
	require.NoError(t, err)
	tables, err := combinatoric.New(seq.K())
	require.NoError(t, err)
	mask := trajectory.NewMask(seq)

	s1, err := noholes.New(seq, mask, area, tables)
	require.NoError(t, err)
	trajs, err := s1.Solve(0.0)
	require.NoError(t, err)
	require.Len(t, trajs, 2)

	s2, err := noholes.New(seq, mask, area, tables)
	require.NoError(t, err)
	trajs2, err := s2.Solve(0.0)
	require.NoError(t, err)
	assert.Empty(t, trajs2)
}

// TestSolve_MonotoneEmission checks that emitted scores are non-decreasing.
func TestSolve_MonotoneEmission(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 200, Height: 200,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}, {X: 100, Y: 20}},
			{{X: 20, Y: 20}, {X: 101, Y: 40}},
			{{X: 30, Y: 30}, {X: 102, Y: 61}},
			{{X: 40, Y: 40}, {X: 103, Y: 81}},
		},
	}
	s, _ := newSolver(t, seq)

	trajs, err := s.Solve(0.0)
	require.NoError(t, err)
	for i := 1; i < len(trajs); i++ {
		assert.GreaterOrEqual(t, trajs[i].LogNFA, trajs[i-1].LogNFA)
	}
}

// TestSolve_NoholesLengthAndConsecutiveFrames is property 4 of spec §8.
func TestSolve_NoholesLengthAndConsecutiveFrames(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{{X: 20, Y: 20}},
			{{X: 30, Y: 30}},
			{{X: 40, Y: 40}},
		},
	}
	s, _ := newSolver(t, seq)

	trajs, err := s.Solve(0.0)
	require.NoError(t, err)
	for _, tr := range trajs {
		assert.GreaterOrEqual(t, len(tr.Steps), 3)
		for i := 1; i < len(tr.Steps); i++ {
			assert.Equal(t, tr.Steps[i-1].Frame+1, tr.Steps[i].Frame)
		}
	}
}
