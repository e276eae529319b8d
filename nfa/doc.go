// Package nfa scores a-contrario trajectory candidates: it turns a DP cell
// (last frame, span, optionally size and runs, and a worst-case discrete
// acceleration area) into a log10(NFA) value, the expected number of
// equally-or-more-coincident random trajectories under the uniform
// independent-noise null model.
//
// Noholes and Holes each precompute a log_nprod table once per solve —
// the log-count of candidate point combinations for a given span (and,
// for Holes, size) — so that LogNFA itself is O(1).
package nfa
