// Package fit: the fit orchestrator.
//
// Fit sequences the three model fits, propagating best-fit parameters from
// simpler to more complex models as initial guesses, and assembles per-model
// statistics. See doc.go for the full pipeline contract.
package fit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/morphofit/model"
	"github.com/katalvlaran/morphofit/solve"
)

// Fit runs one fitting session over the measurements (x, y).
//
// Stages (single initial state, three sequential stages):
//  1. Zero landmarks: ZeroLocation is subtracted from a working copy of x
//     and from the interface boundary, then reset to 0. The caller's slices
//     and landmarks are never mutated; given already-zeroed input the stage
//     is a no-op.
//  2. Exponential (always): seeded by InitialGuess, unconstrained solve,
//     CI from the solver's covariance estimate.
//  3. TwoDomain (iff WithTwoDomain): seeded with the exponential amplitude,
//     its decay length for BOTH domains, and its offset verbatim when Free;
//     unconstrained solve.
//  4. TwoDomainGradualSink (iff WithGradualSink, independent of stage 3):
//     seeded with the exponential amplitude and decay length, a constant
//     slope seed of 100, and the exponential offset when Free; bounded solve
//     with every parameter constrained to [0, +∞); CI from residuals +
//     Jacobian.
//
// Each stage starts from a fresh solver status — warnings never leak across
// models. Fatal precondition violations abort the whole call with no partial
// Summary; solver non-convergence only marks the affected model's Warning.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints, ErrNoPositiveSignal (via 4.2).
//   - model.ErrMissingBoundary (wrapped) when a two-domain model is requested
//     without a boundary landmark.
func Fit(x, y []float64, off model.OffsetPolicy, lms model.Landmarks, opts ...Option) (Summary, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Preconditions.
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	needed := off.ParamCount(model.Exponential)
	if cfg.TwoDomain || cfg.GradualSink {
		needed = off.ParamCount(model.TwoDomain)
	}
	if len(y) < needed+1 {
		return nil, ErrTooFewPoints
	}
	if (cfg.TwoDomain || cfg.GradualSink) && !lms.HasBoundary {
		return nil, fmt.Errorf("fit: two-domain model requested: %w", model.ErrMissingBoundary)
	}

	// 3) Zero landmarks on working copies.
	xs := make([]float64, len(x))
	copy(xs, x)
	if lms.ZeroLocation != 0 {
		floats.AddConst(-lms.ZeroLocation, xs)
	}
	lms = lms.Shifted()

	// 4) Exponential stage.
	guess, err := InitialGuess(xs, y, off)
	if err != nil {
		return nil, err
	}
	expRes, err := fitOne(model.Exponential, xs, y, lms, off, guess, nil, cfg)
	if err != nil {
		return nil, err
	}
	sum := Summary{model.Exponential: expRes}

	amp, lambda := expRes.Params[0], expRes.Params[1]
	withOffset := func(g []float64) []float64 {
		if off.Free() {
			return append(g, expRes.Params[len(expRes.Params)-1])
		}

		return g
	}

	// 5) TwoDomain stage: exponential decay length reused for both domains.
	if cfg.TwoDomain {
		g := withOffset([]float64{amp, lambda, lambda})
		res, fitErr := fitOne(model.TwoDomain, xs, y, lms, off, g, nil, cfg)
		if fitErr != nil {
			return nil, fitErr
		}
		sum[model.TwoDomain] = res
	}

	// 6) Gradual-sink stage: constant slope seed, all parameters in [0, +∞).
	if cfg.GradualSink {
		g := withOffset([]float64{amp, lambda, sinkSlopeSeed})
		lower := make([]float64, len(g))
		res, fitErr := fitOne(model.TwoDomainGradualSink, xs, y, lms, off, g, lower, cfg)
		if fitErr != nil {
			return nil, fitErr
		}
		sum[model.TwoDomainGradualSink] = res
	}

	return sum, nil
}

// fitOne solves a single model stage and assembles its Result. A nil lower
// selects the unconstrained solver mode (CI from covariance); a non-nil
// lower selects the bounded mode (CI from residuals + Jacobian).
func fitOne(k model.Kind, x, y []float64, lms model.Landmarks, off model.OffsetPolicy, guess, lower []float64, cfg Options) (Result, error) {
	predict, err := model.Predictor(k, lms, off)
	if err != nil {
		return Result{}, fmt.Errorf("fit: %s: %w", k, err)
	}

	// Residual = model(p) − y.
	residual := func(dst, p []float64) {
		predict(dst, p, x)
		floats.Sub(dst, y)
	}

	sol, err := solve.LeastSquares(solve.Problem{
		Residual:      residual,
		NumParams:     len(guess),
		NumResiduals:  len(y),
		InitParams:    guess,
		Lower:         lower,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return Result{}, fmt.Errorf("fit: %s: %w", k, err)
	}

	// Statistics: the unconstrained path reads the solver covariance, the
	// bounded path re-derives it from residuals + Jacobian.
	dof := len(y) - len(guess)
	if dof < 1 {
		dof = 1
	}
	status := sol.Status
	var ci [][2]float64
	if sol.Covariance != nil {
		ci = ciFromCovariance(sol.Params, sol.Covariance, dof, cfg.ConfidenceLevel)
	} else {
		var wellConditioned bool
		ci, wellConditioned = ciFromResidualJacobian(sol.Params, sol.Residuals, sol.Jacobian, cfg.ConfidenceLevel)
		if !wellConditioned && status == solve.Converged {
			status = solve.IllConditioned
		}
	}

	yFit := make([]float64, len(y))
	predict(yFit, sol.Params, x)

	record, err := model.ParamsFromVector(k, sol.Params, off)
	if err != nil {
		return Result{}, fmt.Errorf("fit: %s: %w", k, err)
	}

	return Result{
		Kind:    k,
		Params:  sol.Params,
		Record:  record,
		CI:      ci,
		MSE:     sol.MSE,
		R2:      rSquared(y, yFit),
		Status:  status,
		Warning: status.Warned(),
	}, nil
}
