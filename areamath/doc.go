// Package areamath precomputes discrete pixel areas of euclidean disks.
//
// 🚀 What is DiscreteArea?
//
//	The a-contrario noise model scores trajectories by the number of
//	pixels an acceleration vector's disk would cover, not by its
//	continuous area. At small radii the two disagree enough to matter,
//	so DiscreteArea replaces π·r² with an exact integer pixel count for
//	every offset up to a configurable radius, falling back to the
//	continuous formula beyond it.
//
// ✨ Key properties:
//   - A[x,y] == A[y,x] (octant symmetry)
//   - A is non-decreasing along increasing radius (concentric layers)
//   - built once per solve, immutable afterwards, safe for concurrent reads
//
// ⚙️ Usage:
//
//	import "github.com/astreproj/astre/areamath"
//
//	da, err := areamath.New(areamath.DefaultMaxRadius)
//	if err != nil {
//		// handle err
//	}
//	area := da.Area(dx, dy) // disk area covering offset (dx,dy)
package areamath
