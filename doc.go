// Package astre is the module root for github.com/astreproj/astre, an
// a-contrario single-trajectory extraction engine for 2-D point
// detections across a sequence of frames.
//
// Given a Sequence of per-frame point detections, the engine repeatedly
// finds the single trajectory with the lowest log10(number of false
// alarms) — the most statistically surprising run of nearly collinear,
// nearly evenly paced points — extracts it, deactivates its points, and
// repeats until no trajectory scores below a caller-supplied threshold.
//
// Two solver variants are provided:
//
//	noholes/ — trajectories must occupy consecutive frames
//	holes/   — trajectories may skip frames, at a penalty to their score
//
// Supporting packages:
//
//	areamath/     — the DiscreteArea pixel-count table both solvers query
//	combinatoric/ — precomputed log-factorial / log-binomial tables
//	nfa/          — the number-of-false-alarms scoring formulas
//	trajectory/   — shared Point/Frame/Sequence/Mask/Trajectory types
//	astre/        — Solve, the top-level dispatcher and outer loop
//	descfile/     — the points-description text file format
//	cmd/astre/    — a CLI front end wiring descfile to astre.Solve
//
// See github.com/astreproj/astre/astre for the primary entry point,
// astre.Solve.
package astre
