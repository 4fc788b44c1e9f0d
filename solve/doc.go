// SPDX-License-Identifier: MIT

// Package solve adapts the external nonlinear-least-squares collaborator
// (github.com/maorshutman/lm, a Levenberg–Marquardt implementation) to the
// interface the fit orchestrator needs:
//
//   - an unconstrained mode returning best-fit parameters, residuals, a
//     Jacobian, a covariance estimate and the mean squared error;
//   - a bounded mode accepting per-parameter lower/upper bounds and returning
//     best-fit parameters, residuals and a Jacobian evaluated in the original
//     (untransformed) parameter space.
//
// Bounds are realized with the classic MINPACK-style change of variables —
// p = l + z² for a lower bound, p = u − z² for an upper bound, a sine map for
// two-sided intervals — so the collaborator itself always solves an
// unconstrained problem. The optimizer implementation is deliberately NOT
// part of this package.
//
// Diagnostics are a first-class Status value (Converged,
// MaxIterationsReached, IllConditioned) classified from the solution itself:
// NaN/Inf in the iterate, the collaborator's returned error, and the gradient
// norm at the solution. Nothing is polled from ambient warning state.
// A non-converged solve is NOT an error: the last parameter estimate is
// returned with a warning-worthy Status, and the caller decides.
//
// Errors (sentinel, all precondition violations): ErrNilResidual,
// ErrBadProblemSize, ErrInitLength, ErrBoundsLength, ErrBoundsInverted.
package solve
