// Package holes implements the a-contrario DP solver that extends noholes
// by permitting gaps: a trajectory may skip frames between two consecutive
// observations, at the cost of a hole_factor penalty on its NFA score. The
// DP cell space is seven-dimensional — (k0, ix, h1, iy, l0, s0, p0) — and is
// kept as a sparse map rather than a dense cube, since the dense shape is
// intractable even for modest frame counts.
package holes
