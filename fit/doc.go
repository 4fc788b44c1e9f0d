// Package fit orchestrates the morphogen-gradient fitting pipeline:
// initial-guess estimation, sequenced nonlinear least-squares fits of the
// three model families, and per-model statistics.
//
// 🔬 Pipeline
//
//	1. Zero landmarks   — subtract ZeroLocation from x and from the interface
//	                      boundary (idempotent).
//	2. Exponential      — always fit, unconstrained; seeded by InitialGuess
//	                      (background subtraction + log-linear regression).
//	3. TwoDomain        — optional, unconstrained; seeded from the exponential
//	                      best fit (its decay length reused for both domains,
//	                      its offset verbatim).
//	4. GradualSink      — optional, independent of 3; seeded from the
//	                      exponential best fit with a constant slope seed of
//	                      100, all parameters bounded to [0, +∞); confidence
//	                      intervals derived from residuals + Jacobian instead
//	                      of the covariance estimate.
//
// Statistics per model: 95% (configurable) confidence intervals via the
// Student-t quantile over the parameter standard errors, MSE as produced by
// the solver, and R² = 1 − SSres/SStot against the measured y.
//
// ⚙️ Usage:
//
//	sum, err := fit.Fit(x, y,
//	    model.FixedOffset(0),
//	    model.NewLandmarks(1.0),
//	    fit.WithTwoDomain(),
//	    fit.WithGradualSink(),
//	)
//	if err != nil {
//	    // precondition violation: nothing was fit
//	}
//	exp := sum[model.Exponential]
//	fmt.Println(exp.Params, exp.R2, exp.Warning)
//
// Failure taxonomy:
//
//   - Precondition violations (length mismatch, too few points, missing
//     boundary, degenerate log-transform input) are fatal: Fit returns an
//     error and NO partial Summary.
//   - Numerical instability (non-convergence within the iteration cap,
//     ill-conditioning) is non-fatal: the affected model's Result carries
//     Warning=true with the solver's last estimate; sibling models are
//     unaffected.
//   - Degenerate statistics: constant y makes R² undefined (0/0). Not
//     guarded here — callers must ensure the data carries variance.
//
// Determinism: no randomness anywhere in the pipeline; identical inputs
// yield identical Summaries.
package fit
