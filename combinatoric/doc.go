// Package combinatoric precomputes the log-scale factorial and binomial
// tables the NFA scorers need, up to the number of frames K in a solve.
//
// All tables are built once per solve and are immutable afterwards:
//
//   - LogK(k)    = log10(k),  with the sentinel LogK(0) == -1.0 (never
//     meant to be consumed — see spec §9).
//   - LogKFact(k) = log10(k!)
//   - LnKFact(k)  = ln(k!)
//   - LogCnk(n,k) = log10(C(n,k)), mirrored via C(n,k) == C(n,n-k)
package combinatoric
