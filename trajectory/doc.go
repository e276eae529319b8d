// Package trajectory defines the core, solver-independent data types the
// ASTRE engine operates on: input frames of 2-D detections, the mutable
// activation mask tracking which detections remain available, and the
// Trajectory/Step output types.
//
// None of these types know about DP tables, NFA scoring, or a particular
// solver variant — they are the shared vocabulary noholes and holes both
// read and write.
package trajectory
