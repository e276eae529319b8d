// Package noholes implements the ASTRE noholes solver: trajectories must
// occupy consecutive frames. It fills a 4-D dynamic-programming table
// g[k0][ix][iy][l0] — the minimum, over any active extension backwards,
// of the worst discrete acceleration area along a trajectory ending at
// point ix in frame k0 via predecessor iy in frame k0-1 — scores every
// cell with nfa.Noholes, and backtracks the global minimum into an
// extracted trajectory.
package noholes
