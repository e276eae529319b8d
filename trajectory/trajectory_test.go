package trajectory_test

import (
	"testing"

	"github.com/astreproj/astre/trajectory"
	"github.com/stretchr/testify/assert"
)

func sampleSequence() *trajectory.Sequence {
	return &trajectory.Sequence{
		Width:  100,
		Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{{X: 20, Y: 20}, {X: 60, Y: 60}},
			{{X: 30, Y: 30}},
		},
	}
}

func TestSequence_Basics(t *testing.T) {
	seq := sampleSequence()
	assert.Equal(t, 3, seq.K())
	assert.Equal(t, 10000, seq.ImageArea())
	assert.Equal(t, 1, seq.N(0))
	assert.Equal(t, 2, seq.N(1))
	assert.Equal(t, 2, seq.MaxN())
}

func TestMask_StartsAllActiveAndDeactivates(t *testing.T) {
	seq := sampleSequence()
	m := trajectory.NewMask(seq)

	assert.True(t, m.Active(1, 0))
	assert.True(t, m.Active(1, 1))

	m.Deactivate(1, 0)
	assert.False(t, m.Active(1, 0))
	assert.True(t, m.Active(1, 1))
}

func TestTrajectory_SpanSizeRuns_Noholes(t *testing.T) {
	tr := trajectory.Trajectory{
		Start: 0,
		Steps: []trajectory.Step{
			{Frame: 0, Index: 0, Kind: trajectory.StepRef},
			{Frame: 1, Index: 0, Kind: trajectory.StepRef},
			{Frame: 2, Index: 0, Kind: trajectory.StepRef},
		},
	}
	assert.Equal(t, 3, tr.Span())
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, 1, tr.Runs())
}

// TestTrajectory_SpanSizeRuns_Holes mirrors scenario S5 of spec §8:
// REF, NONE, REF, NONE, REF => span=5, size=3, runs=3.
func TestTrajectory_SpanSizeRuns_Holes(t *testing.T) {
	tr := trajectory.Trajectory{
		Start: 0,
		Steps: []trajectory.Step{
			{Frame: 0, Index: 0, Kind: trajectory.StepRef},
			{Frame: 1, Kind: trajectory.StepNone},
			{Frame: 2, Index: 0, Kind: trajectory.StepRef},
			{Frame: 3, Kind: trajectory.StepNone},
			{Frame: 4, Index: 0, Kind: trajectory.StepRef},
		},
	}
	assert.Equal(t, 5, tr.Span())
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, 3, tr.Runs())
}
