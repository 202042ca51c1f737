// Package matrix offers dense row-major matrices and the small set of
// linear-algebra kernels needed by iterative dynamic-programming solvers.
//
// The matrix package provides:
//
//   - Dense: a bounds-checked, row-major float64 matrix with an explicit
//     numeric policy (reject NaN/Inf, optionally admit -Inf as "infeasible").
//   - Kernels: Sub, Scale, MatVec, Doolittle LU and an LU-based Solve.
//   - Validators shared by every kernel, including ValidateDistribution for
//     rows of stochastic matrices.
//
// All kernels are deterministic (fixed loop orders, no pivoting) and return
// sentinel errors (errors.Is) instead of panicking on bad input.
//
// See the examples in this package for usage patterns.
package matrix
