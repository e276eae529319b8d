package areamath

import (
	"math"
	"sort"
)

// DefaultMaxRadius is the radius used by the ASTRE solvers in production:
// acceleration offsets beyond 50 pixels fall back to the continuous π·r²
// approximation, which is accurate enough at that scale.
const DefaultMaxRadius = 50

// layerEps is the tolerance (in pixels) within which two octant pixels are
// considered to lie on the same concentric "layer" during construction.
const layerEps = 1e-3

// pixel is one octant sample (0 <= y <= x <= maxR) carrying its euclidean
// radius, used only during table construction.
type pixel struct {
	x, y int
	rad  float64
}

// DiscreteArea is an immutable lookup table mapping an integer pixel offset
// (x, y) to the integer count of unit pixels covered by a disk of radius
// √(x²+y²), for offsets within MaxRadius. Beyond that radius, Area falls
// back to the continuous approximation π·(x²+y²).
//
// A DiscreteArea is built once per solve (see astre.Solve) and is safe for
// concurrent read access — construction is the only mutating phase.
type DiscreteArea struct {
	maxR   int
	maxRSq float64
	width  int     // maxR + 1
	table  []int   // flat (width x width), table[x*width+y] = A[x,y]
}

// New builds a DiscreteArea table for offsets up to maxR pixels.
//
// Construction (see spec §4.1):
//  1. Enumerate one octant 0 <= y <= x <= maxR.
//  2. Sort by euclidean radius ascending.
//  3. Truncate to radii <= maxR.
//  4. Sweep in concentric layers (radii within layerEps are one layer);
//     accumulate each pixel's octant multiplicity (1 at origin, 4 on an
//     axis/diagonal, 8 otherwise) before assigning the layer's area, so
//     the table is non-decreasing in r with ties broken at layer bounds.
func New(maxR int) (*DiscreteArea, error) {
	if maxR <= 0 {
		return nil, ErrInvalidRadius
	}

	width := maxR + 1
	pixels := make([]pixel, 0, width*(width+1)/2)
	for x := 0; x <= maxR; x++ {
		for y := 0; y <= x; y++ {
			pixels = append(pixels, pixel{x: x, y: y, rad: math.Hypot(float64(x), float64(y))})
		}
	}
	sort.Slice(pixels, func(i, j int) bool { return pixels[i].rad < pixels[j].rad })

	// Truncate to pixels within the requested radius.
	numPix := len(pixels)
	for i, p := range pixels {
		if p.rad > float64(maxR) {
			numPix = i
			break
		}
	}

	table := make([]int, width*width)
	curArea := 0
	for i := 0; i < numPix; {
		curRadius := pixels[i].rad
		j := i
		for j < numPix-1 && pixels[j+1].rad-curRadius < layerEps {
			j++
		}

		// Accumulate this layer's contribution by octant multiplicity.
		for q := i; q <= j; q++ {
			px, py := pixels[q].x, pixels[q].y
			switch {
			case px == 0 && py == 0:
				curArea++
			case py == 0 || py == px:
				curArea += 4
			default:
				curArea += 8
			}
		}

		// Assign the layer's area to every pixel in it, mirrored.
		for q := i; q <= j; q++ {
			px, py := pixels[q].x, pixels[q].y
			table[px*width+py] = curArea
			table[py*width+px] = curArea
		}

		i = j + 1
	}

	return &DiscreteArea{maxR: maxR, maxRSq: float64(maxR) * float64(maxR), width: width, table: table}, nil
}

// MaxRadius returns the radius this table was built for.
func (da *DiscreteArea) MaxRadius() int {
	return da.maxR
}

// Area returns the discrete pixel area of a disk whose radius equals the
// magnitude of (x, y). Within MaxRadius, this is an exact table lookup;
// beyond it, it falls back to the continuous π·(x²+y²) approximation.
func (da *DiscreteArea) Area(x, y float64) float64 {
	d2 := x*x + y*y
	if d2 > da.maxRSq {
		return math.Pi * d2
	}

	return float64(da.at(int(math.Abs(x)), int(math.Abs(y))))
}

// AD ("area of the discretized vector") rounds (x, y) to the nearest
// integer offset before querying Area, matching the acceleration-vector
// scoring convention used throughout the solvers.
func (da *DiscreteArea) AD(x, y float64) float64 {
	ix := math.Floor(math.Abs(x) + 0.5)
	iy := math.Floor(math.Abs(y) + 0.5)

	return da.Area(ix, iy)
}

// at returns the raw table entry for octant-folded integer offsets.
func (da *DiscreteArea) at(ix, iy int) int {
	return da.table[ix*da.width+iy]
}
