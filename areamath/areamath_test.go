package areamath_test

import (
	"math"
	"testing"

	"github.com/astreproj/astre/areamath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidRadius ensures non-positive radii are rejected.
func TestNew_InvalidRadius(t *testing.T) {
	_, err := areamath.New(0)
	assert.ErrorIs(t, err, areamath.ErrInvalidRadius)

	_, err = areamath.New(-3)
	assert.ErrorIs(t, err, areamath.ErrInvalidRadius)
}

// TestArea_OriginIsOnePixel checks the degenerate disk at the origin.
func TestArea_OriginIsOnePixel(t *testing.T) {
	da, err := areamath.New(5)
	require.NoError(t, err)

	assert.Equal(t, 1.0, da.Area(0, 0))
}

// TestArea_Symmetry verifies A[x,y] == A[y,x] across the whole table.
func TestArea_Symmetry(t *testing.T) {
	da, err := areamath.New(10)
	require.NoError(t, err)

	for x := 0; x <= 10; x++ {
		for y := 0; y <= 10; y++ {
			assert.Equal(t, da.Area(float64(x), float64(y)), da.Area(float64(y), float64(x)),
				"A[%d,%d] should equal A[%d,%d]", x, y, y, x)
		}
	}
}

// TestArea_MonotoneByRadius verifies the table is non-decreasing when pixels
// are visited in increasing radius order.
func TestArea_MonotoneByRadius(t *testing.T) {
	da, err := areamath.New(20)
	require.NoError(t, err)

	type sample struct {
		rad  float64
		area float64
	}
	var samples []sample
	for x := 0; x <= 20; x++ {
		for y := 0; y <= x; y++ {
			samples = append(samples, sample{rad: math.Hypot(float64(x), float64(y)), area: da.Area(float64(x), float64(y))})
		}
	}

	// Sort by radius and check monotonicity.
	for i := 0; i < len(samples); i++ {
		for j := i + 1; j < len(samples); j++ {
			if samples[i].rad > samples[j].rad {
				samples[i], samples[j] = samples[j], samples[i]
			}
		}
	}
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i].area, samples[i-1].area)
	}
}

// TestArea_ContinuousFallback verifies the π·r² approximation beyond MaxRadius.
func TestArea_ContinuousFallback(t *testing.T) {
	da, err := areamath.New(5)
	require.NoError(t, err)

	x, y := 100.0, 100.0
	want := math.Pi * (x*x + y*y)
	assert.InDelta(t, want, da.Area(x, y), 1e-9)
}

// TestAD_RoundsToNearestInteger checks that AD rounds sub-pixel offsets
// before consulting the table.
func TestAD_RoundsToNearestInteger(t *testing.T) {
	da, err := areamath.New(5)
	require.NoError(t, err)

	assert.Equal(t, da.Area(2, 1), da.AD(1.6, 0.9))
	assert.Equal(t, da.Area(0, 0), da.AD(0.4, -0.4))
}

// TestMaxRadius reports the configured radius back.
func TestMaxRadius(t *testing.T) {
	da, err := areamath.New(50)
	require.NoError(t, err)
	assert.Equal(t, 50, da.MaxRadius())
}
