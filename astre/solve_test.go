package astre_test

import (
	"testing"

	"github.com/astreproj/astre/astre"
	"github.com/astreproj/astre/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_NoholesVariant(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{{X: 20, Y: 20}},
			{{X: 30, Y: 30}},
		},
	}

	opts := astre.DefaultOptions()
	trajs, err := astre.Solve(seq, opts)
	require.NoError(t, err)
	require.Len(t, trajs, 1)
	assert.Equal(t, 3, trajs[0].Span())
}

func TestSolve_HolesVariant(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{
			{{X: 10, Y: 10}},
			{{X: 20, Y: 20}},
			{},
			{{X: 40, Y: 40}},
		},
	}

	opts := astre.DefaultOptions()
	opts.Variant = astre.VariantHoles
	trajs, err := astre.Solve(seq, opts)
	require.NoError(t, err)
	require.Len(t, trajs, 1)
	assert.Equal(t, 4, trajs[0].Span())
	assert.Equal(t, 3, trajs[0].Size())
}

func TestSolve_InvalidInput(t *testing.T) {
	seq := &trajectory.Sequence{Width: 0, Height: 100, Frames: []trajectory.Frame{{}, {}, {}}}
	_, err := astre.Solve(seq, astre.DefaultOptions())
	assert.ErrorIs(t, err, astre.ErrInvalidInput)
}

func TestSolve_UnsupportedVariant(t *testing.T) {
	seq := &trajectory.Sequence{
		Width: 100, Height: 100,
		Frames: []trajectory.Frame{{}, {}, {}},
	}
	opts := astre.DefaultOptions()
	opts.Variant = astre.Variant(99)
	_, err := astre.Solve(seq, opts)
	assert.ErrorIs(t, err, astre.ErrUnsupportedVariant)
}
